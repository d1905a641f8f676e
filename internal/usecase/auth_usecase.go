package usecase

import (
	"context"

	"referidos/internal/domain/entity"
)

// AdminLoginInput authenticates the studio administrator.
type AdminLoginInput struct {
	Email    string
	Password string
}

// SocioLoginInput authenticates a partner against its codigo/PIN pair.
type SocioLoginInput struct {
	Codigo string
	PIN    string
}

// LoginOutput returns the signed tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Socio        *entity.Socio // nil for admin logins
}

// AuthUsecase defines the authentication operations for both route groups.
type AuthUsecase interface {
	LoginAdmin(ctx context.Context, input AdminLoginInput) (*LoginOutput, error)

	// LoginSocio succeeds only for the exact codigo/PIN pair of a partner
	// that is both active and approved; every other outcome is the same
	// generic credentials error.
	LoginSocio(ctx context.Context, input SocioLoginInput) (*LoginOutput, error)
}
