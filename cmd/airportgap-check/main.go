package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/ijalalfrz/airportgap-client/internal/app/airportgap"
	"github.com/ijalalfrz/airportgap-client/internal/app/check"
	"github.com/ijalalfrz/airportgap-client/internal/app/config"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/logger"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/restclient"
	"github.com/spf13/pflag"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"base-url":          "AIRGAP_BASE_URL",
	"email":             "AIRGAP_EMAIL",
	"password":          "AIRGAP_PASSWORD",
	"token":             "AIRGAP_TOKEN",
	"max-attempts":      "AIRGAP_MAX_ATTEMPTS",
	"expected-distance": "AIRGAP_EXPECTED_DISTANCE_KM",
	"all-pages":         "AIRGAP_CHECK_ALL_PAGES",
	"log-level":         "LOG_LEVEL",
	"log-format":        "LOG_FORMAT",
}

func main() {
	envFile := pflag.String("env-file", ".env", "optional env file")
	checks := pflag.StringSlice("check", nil, "checks to run, all when empty")
	list := pflag.Bool("list", false, "list the available checks and exit")

	pflag.String("base-url", "", "AirportGap API base URL")
	pflag.String("email", "", "account email")
	pflag.String("password", "", "account password")
	pflag.String("token", "", "account API token")
	pflag.Int("max-attempts", 0, "attempts per request when rate limited")
	pflag.Float64("expected-distance", 0, "expected MAG to CYG distance in km")
	pflag.Bool("all-pages", false, "validate every page of the airport catalog")
	pflag.String("log-level", "", "log level")
	pflag.String("log-format", "", "log format, json or text")
	pflag.Parse()

	if *list {
		for _, name := range check.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg := config.MustInitConfig(*envFile, config.WithFlags(pflag.CommandLine, flagKeys))
	logger.InitStructuredLogger(cfg.LogLevel, cfg.LogFormat)

	os.Exit(run(cfg, *checks, os.Stdout))
}

func run(cfg config.Config, names []string, out io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc, err := restclient.New(restclient.Config{
		BaseURL:    cfg.AirportGap.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.AirportGap.RequestTimeout},
		Retry:      cfg.AirportGap.RetryPolicy(slog.Default()),
	})
	if err != nil {
		slog.ErrorContext(ctx, "invalid client configuration", slog.String("error", err.Error()))
		return 2
	}

	runner := check.NewRunner(airportgap.New(rc), check.Settings{
		Email:            cfg.AirportGap.Email,
		Password:         cfg.AirportGap.Password,
		Token:            cfg.AirportGap.Token,
		ExpectedDistance: cfg.AirportGap.ExpectedDistance,
		AllPages:         cfg.AirportGap.CheckAllPages,
	}, slog.Default())

	slog.InfoContext(ctx, "running checks", slog.String("base_url", rc.BaseURL()))

	report, err := runner.Run(ctx, names...)
	if err != nil {
		slog.ErrorContext(ctx, "checks did not complete", slog.String("error", err.Error()))
	}

	printReport(out, report)

	if err != nil || !report.OK() {
		return 1
	}

	return 0
}

func printReport(out io.Writer, report check.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "CHECK\tSTATUS\tDURATION\tDETAIL")
	for _, res := range report.Results {
		detail := res.Reason
		if res.Err != nil {
			detail = res.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Name, res.Status, res.Duration.Round(time.Millisecond), detail)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\n%d passed, %d failed, %d skipped in %s\n",
		report.Passed, report.Failed, report.Skipped, report.Duration.Round(time.Millisecond))
}
