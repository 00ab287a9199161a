// Package check runs the AirportGap smoke checks against a live or sandbox
// API and reports each outcome.
package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/airportgap-client/internal/app/airportgap"
)

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Settings are the account and expectations the checks run with.
type Settings struct {
	Email    string
	Password string
	Token    string
	// ExpectedDistance is the MAG to CYG distance in kilometers, zero skips
	// the comparison.
	ExpectedDistance float64
	// AllPages enables the slow walk over the whole catalog.
	AllPages bool
}

type Result struct {
	Name     string
	Status   Status
	Err      error
	Reason   string
	Duration time.Duration
}

type Report struct {
	Results  []Result
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
}

// OK reports whether no check failed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Check is one named scenario. Skip returns a reason when the scenario
// cannot run with the given settings. Run takes the runner first so checks
// can be written as Runner methods.
type Check struct {
	Name string
	Skip func(s Settings) string
	Run  func(r *Runner, ctx context.Context) error
}

// Runner executes checks sequentially against one client.
type Runner struct {
	client   *airportgap.Client
	settings Settings
	logger   *slog.Logger
	checks   []Check
}

func NewRunner(client *airportgap.Client, settings Settings, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		client:   client,
		settings: settings,
		logger:   logger,
		checks:   All(),
	}
}

// All lists every check in execution order.
func All() []Check {
	checks := make([]Check, 0, 13)
	checks = append(checks, airportChecks()...)
	checks = append(checks, tokenChecks()...)
	checks = append(checks, favoriteChecks()...)

	return checks
}

// Names lists the names of every check.
func Names() []string {
	checks := All()

	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name)
	}

	return names
}

// Run executes the named checks, or all of them when names is empty.
func (r *Runner) Run(ctx context.Context, names ...string) (Report, error) {
	selected, err := r.selectChecks(names)
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	report := Report{Results: make([]Result, 0, len(selected))}

	for _, c := range selected {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("checks interrupted: %w", err)
		}

		res := r.runOne(ctx, c)
		report.Results = append(report.Results, res)

		switch res.Status {
		case StatusPassed:
			report.Passed++
		case StatusFailed:
			report.Failed++
		case StatusSkipped:
			report.Skipped++
		}
	}

	report.Duration = time.Since(start)

	return report, nil
}

func (r *Runner) selectChecks(names []string) ([]Check, error) {
	if len(names) == 0 {
		return r.checks, nil
	}

	byName := make(map[string]Check, len(r.checks))
	for _, c := range r.checks {
		byName[c.Name] = c
	}

	selected := make([]Check, 0, len(names))
	for _, name := range names {
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown check %q", name)
		}
		selected = append(selected, c)
	}

	return selected, nil
}

func (r *Runner) runOne(ctx context.Context, c Check) Result {
	res := Result{Name: c.Name}

	if c.Skip != nil {
		if reason := c.Skip(r.settings); reason != "" {
			res.Status = StatusSkipped
			res.Reason = reason
			r.logger.InfoContext(ctx, "check skipped", slog.String("check", c.Name), slog.String("reason", reason))
			return res
		}
	}

	start := time.Now()
	err := c.Run(r, ctx)
	res.Duration = time.Since(start)

	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		r.logger.ErrorContext(ctx, "check failed",
			slog.String("check", c.Name),
			slog.Duration("duration", res.Duration),
			slog.String("error", err.Error()))

		return res
	}

	res.Status = StatusPassed
	r.logger.InfoContext(ctx, "check passed", slog.String("check", c.Name), slog.Duration("duration", res.Duration))

	return res
}

func needsToken(s Settings) string {
	if s.Token == "" {
		return "no token configured"
	}

	return ""
}

func needsCredentials(s Settings) string {
	if s.Email == "" || s.Password == "" || s.Token == "" {
		return "email, password and token are required"
	}

	return ""
}
