package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
)

type TokenService interface {
	IssueToken(ctx context.Context, req dto.TokenRequest) (dto.Token, error)
}

type TokenEndpoint struct {
	IssueToken endpoint.Endpoint
}

func MakeTokenEndpoint(service TokenService) TokenEndpoint {
	return TokenEndpoint{
		IssueToken: makeIssueTokenEndpoint(service),
	}
}

func makeIssueTokenEndpoint(service TokenService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TokenRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		token, err := service.IssueToken(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("token service: %w", err)
		}

		return token, nil
	}
}
