package check

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
)

const (
	// MaxItemsPerPage is the AirportGap collection page size.
	MaxItemsPerPage = 30
	exceededPage    = 2000
	// relative, the API reports more decimals than the sandbox
	distanceTolerance = 1e-6
)

func airportChecks() []Check {
	return []Check{
		{Name: "airports_initial_page", Run: func(r *Runner, ctx context.Context) error {
			return r.checkAirportPage(ctx, 0, MaxItemsPerPage)
		}},
		{Name: "airports_single_page", Run: func(r *Runner, ctx context.Context) error {
			return r.checkAirportPage(ctx, 2, MaxItemsPerPage)
		}},
		{Name: "airports_exceed_max_page", Run: func(r *Runner, ctx context.Context) error {
			return r.checkAirportPage(ctx, exceededPage, 0)
		}},
		{Name: "airports_valid_id", Run: (*Runner).checkValidAirport},
		{Name: "airports_invalid_id", Run: (*Runner).checkInvalidAirport},
		{Name: "airports_distance", Run: (*Runner).checkDistance},
		{Name: "airports_all_pages", Skip: func(s Settings) string {
			if !s.AllPages {
				return "walking every page is opt-in"
			}
			return ""
		}, Run: (*Runner).checkAllPages},
	}
}

func (r *Runner) checkAirportPage(ctx context.Context, page, wantItems int) error {
	resp, err := r.client.Airports().List(ctx, page)
	if err != nil {
		return fmt.Errorf("list airports page %d: %w", page, err)
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	airports, err := dto.DecodeDataList[dto.Airport](resp.Body)
	if err != nil {
		return fmt.Errorf("airports page %d: %w", page, err)
	}

	if len(airports) != wantItems {
		return fmt.Errorf("airports page %d has %d items, want %d", page, len(airports), wantItems)
	}

	return nil
}

func (r *Runner) checkValidAirport(ctx context.Context) error {
	want := dto.KnownAirports.MAG

	resp, err := r.client.Airports().Get(ctx, want.ID)
	if err != nil {
		return fmt.Errorf("get airport %s: %w", want.ID, err)
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	got, err := dto.DecodeData[dto.Airport](resp.Body)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("airport %s mismatch (-want +got):\n%s", want.ID, diff)
	}

	return nil
}

func (r *Runner) checkInvalidAirport(ctx context.Context) error {
	resp, err := r.client.Airports().Get(ctx, "INVALID")
	if err != nil {
		return fmt.Errorf("get airport INVALID: %w", err)
	}

	return expectNotFound(resp)
}

func (r *Runner) checkDistance(ctx context.Context) error {
	from, to := dto.KnownAirports.MAG, dto.KnownAirports.CYG

	resp, err := r.client.Airports().Distance(ctx, from.ID, to.ID)
	if err != nil {
		return fmt.Errorf("distance %s-%s: %w", from.ID, to.ID, err)
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	distance, err := dto.DecodeData[dto.AirportDistance](resp.Body)
	if err != nil {
		return err
	}

	if want := r.settings.ExpectedDistance; want > 0 {
		got := distance.Attributes.Kilometers
		if math.Abs(got-want) > want*distanceTolerance {
			return fmt.Errorf("distance %s-%s is %f km, want %f km", from.ID, to.ID, got, want)
		}
	}

	return nil
}

func (r *Runner) checkAllPages(ctx context.Context) error {
	var page, total int

	for items, err := range r.client.Airports().ListAll(ctx) {
		page++
		if err != nil {
			return fmt.Errorf("airports page %d: %w", page, err)
		}

		if _, err := dto.DecodeItems[dto.Airport](items); err != nil {
			return fmt.Errorf("airports page %d: %w", page, err)
		}

		total += len(items)
	}

	if total == 0 {
		return fmt.Errorf("no airports returned")
	}

	r.logger.DebugContext(ctx, "walked airport catalog")

	return nil
}
