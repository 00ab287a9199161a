package check

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
)

func tokenChecks() []Check {
	return []Check{
		{Name: "tokens_valid_credentials", Skip: needsCredentials, Run: (*Runner).checkValidCredentials},
		{Name: "tokens_invalid_credentials", Run: (*Runner).checkInvalidCredentials},
	}
}

func (r *Runner) checkValidCredentials(ctx context.Context) error {
	resp, err := r.client.Tokens().Issue(ctx, r.settings.Email, r.settings.Password)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	token, err := dto.Decode[dto.Token](resp.Body)
	if err != nil {
		return err
	}

	if token.Token != r.settings.Token {
		return fmt.Errorf("issued token does not match the configured token")
	}

	return nil
}

func (r *Runner) checkInvalidCredentials(ctx context.Context) error {
	resp, err := r.client.Tokens().Issue(ctx, "Invalid", "Invalid")
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	if err := expectStatus(resp, http.StatusUnauthorized); err != nil {
		return err
	}

	return expectError(resp, strconv.Itoa(http.StatusUnauthorized), "Unauthorised", unauthorisedDetail)
}
