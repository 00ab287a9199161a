package service

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
)

// Credentials is the single account the sandbox knows.
type Credentials struct {
	Email    string
	Password string
	Token    string
}

type TokenService struct {
	Credentials Credentials
}

func NewTokenService(credentials Credentials) *TokenService {
	return &TokenService{
		Credentials: credentials,
	}
}

// IssueToken godoc
// @Summary      Issue an API token
// @Tags         Tokens
// @Param        request  body      dto.TokenRequest  true  "Credentials"
// @Success      200      {object}  dto.Token
// @Failure      401      {object}  exception.ErrorEnvelope
// @Router       /api/tokens [post]
func (s *TokenService) IssueToken(ctx context.Context, req dto.TokenRequest) (dto.Token, error) {
	if !equal(req.Email, s.Credentials.Email) || !equal(req.Password, s.Credentials.Password) {
		slog.InfoContext(ctx, "rejected token request", slog.String("email", req.Email))
		return dto.Token{}, ErrUnauthorized
	}

	return dto.Token{Token: s.Credentials.Token}, nil
}

// Authenticate reports whether token is the issued token.
func (s *TokenService) Authenticate(token string) bool {
	return s.Credentials.Token != "" && equal(token, s.Credentials.Token)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
