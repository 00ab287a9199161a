package check

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
)

const bestNote = "One of the best"

func favoriteChecks() []Check {
	return []Check{
		{Name: "favorites_initial_page", Skip: needsToken, Run: (*Runner).checkFavoritesPage},
		{Name: "favorites_update_note", Skip: needsToken, Run: (*Runner).checkUpdateNote},
		{Name: "favorites_remove_single", Skip: needsToken, Run: (*Runner).checkRemoveFavorite},
		{Name: "favorites_remove_all", Skip: needsToken, Run: (*Runner).checkRemoveAllFavorites},
	}
}

func (r *Runner) checkFavoritesPage(ctx context.Context) error {
	resp, err := r.client.Favorites().List(ctx, r.settings.Token)
	if err != nil {
		return fmt.Errorf("list favorites: %w", err)
	}

	return expectStatus(resp, http.StatusOK)
}

// ensureFavorite returns the first favorite, adding MAG when the list is
// empty, and confirms it can be fetched by id.
func (r *Runner) ensureFavorite(ctx context.Context) (dto.Favorite, error) {
	favorites := r.client.Favorites()

	resp, err := favorites.List(ctx, r.settings.Token)
	if err != nil {
		return dto.Favorite{}, fmt.Errorf("list favorites: %w", err)
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return dto.Favorite{}, err
	}

	current, err := dto.DecodeDataList[dto.Favorite](resp.Body)
	if err != nil {
		return dto.Favorite{}, err
	}

	var fav dto.Favorite
	if len(current) > 0 {
		fav = current[0]
	} else {
		resp, err = favorites.Add(ctx, r.settings.Token, dto.KnownAirports.MAG.ID, "")
		if err != nil {
			return dto.Favorite{}, fmt.Errorf("add favorite: %w", err)
		}

		if err := expectStatus(resp, http.StatusCreated); err != nil {
			return dto.Favorite{}, err
		}

		if fav, err = dto.DecodeData[dto.Favorite](resp.Body); err != nil {
			return dto.Favorite{}, err
		}
	}

	r.logger.DebugContext(ctx, "working with favorite", slog.String("favorite_id", fav.ID))

	if _, err := r.fetchFavorite(ctx, fav.ID); err != nil {
		return dto.Favorite{}, err
	}

	return fav, nil
}

func (r *Runner) fetchFavorite(ctx context.Context, id string) (dto.Favorite, error) {
	resp, err := r.client.Favorites().Get(ctx, r.settings.Token, id)
	if err != nil {
		return dto.Favorite{}, fmt.Errorf("get favorite %s: %w", id, err)
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return dto.Favorite{}, err
	}

	return dto.DecodeData[dto.Favorite](resp.Body)
}

func (r *Runner) checkUpdateNote(ctx context.Context) error {
	fav, err := r.ensureFavorite(ctx)
	if err != nil {
		return err
	}

	note := bestNote
	if fav.Attributes.Note == note {
		note = "Still " + bestNote
	}

	resp, err := r.client.Favorites().UpdateNote(ctx, r.settings.Token, fav.ID, note)
	if err != nil {
		return fmt.Errorf("update favorite %s: %w", fav.ID, err)
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	updated, err := r.fetchFavorite(ctx, fav.ID)
	if err != nil {
		return err
	}

	if updated.Attributes.Note != note {
		return fmt.Errorf("favorite %s note is %q, want %q", fav.ID, updated.Attributes.Note, note)
	}

	return nil
}

func (r *Runner) checkRemoveFavorite(ctx context.Context) error {
	fav, err := r.ensureFavorite(ctx)
	if err != nil {
		return err
	}

	resp, err := r.client.Favorites().Remove(ctx, r.settings.Token, fav.ID)
	if err != nil {
		return fmt.Errorf("remove favorite %s: %w", fav.ID, err)
	}

	if err := expectStatus(resp, http.StatusNoContent); err != nil {
		return err
	}

	return r.expectFavoriteGone(ctx, fav.ID)
}

func (r *Runner) checkRemoveAllFavorites(ctx context.Context) error {
	fav, err := r.ensureFavorite(ctx)
	if err != nil {
		return err
	}

	resp, err := r.client.Favorites().RemoveAll(ctx, r.settings.Token)
	if err != nil {
		return fmt.Errorf("remove all favorites: %w", err)
	}

	if err := expectStatus(resp, http.StatusNoContent); err != nil {
		return err
	}

	return r.expectFavoriteGone(ctx, fav.ID)
}

func (r *Runner) expectFavoriteGone(ctx context.Context, id string) error {
	resp, err := r.client.Favorites().Get(ctx, r.settings.Token, id)
	if err != nil {
		return fmt.Errorf("get favorite %s: %w", id, err)
	}

	return expectNotFound(resp)
}
