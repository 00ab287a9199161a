//go:build unit

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	decode := func(body string, want *dto.DistanceRequest, wantErrs int) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/airports/distance", strings.NewReader(body))

			got, err := DecodeRequest[dto.DistanceRequest](context.Background(), req)
			if wantErrs == 0 {
				require.NoError(t, err)
				assert.Equal(t, want, got)
				return
			}

			require.Error(t, err)

			var list exception.ErrorList
			if errors.As(err, &list) {
				assert.Len(t, list, wantErrs)
				for _, e := range list {
					assert.Equal(t, http.StatusBadRequest, e.StatusCode)
				}
				return
			}

			var appErr exception.ApplicationError
			require.True(t, errors.As(err, &appErr), "expected application error, got %T", err)
			assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
			assert.Equal(t, 1, wantErrs)
		}
	}

	t.Run("valid", decode(`{"from":"MAG","to":"CYG","extra":true}`, &dto.DistanceRequest{From: "MAG", To: "CYG"}, 0))
	t.Run("trimmed_by_bind", decode(`{"from":" MAG ","to":"CYG"}`, &dto.DistanceRequest{From: "MAG", To: "CYG"}, 0))
	t.Run("missing_both", decode(`{}`, nil, 2))
	t.Run("wrong_types", decode(`{"from":1,"to":false}`, nil, 2))
	t.Run("not_json", decode(`from=MAG`, nil, 1))
	t.Run("empty_values_fail_bind", decode(`{"from":"","to":"CYG"}`, nil, 1))
}

func TestValidateSchema(t *testing.T) {
	schema := dto.AddFavoriteRequest{}.JSONSchema()

	assert.NoError(t, ValidateSchema(schema, []byte(`{"airport_id":"MAG"}`)))
	assert.NoError(t, ValidateSchema(schema, []byte(`{"airport_id":"MAG","note":"n"}`)))

	err := ValidateSchema(schema, []byte(`{"note":5}`))
	var list exception.ErrorList
	require.ErrorAs(t, err, &list)
	assert.Len(t, list, 2)
	assert.Len(t, list.Envelope().Errors, 2)

	assert.Error(t, ValidateSchema(`{"type": 12}`, []byte(`{}`)))
}
