package contracts

import (
	"context"
	"healthlinker-service/internal/app/models"
)

type CreateTokenInput struct {
	UserID string
	Role   models.UserRole
}

type CreateTokenOutput struct {
	Token string
}

type TokenClaims struct {
	UserID string
	Role   models.UserRole
}

type TokenManager interface {
	CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error)
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
}

// GoogleIdentity is what a verified Google ID token tells us about the caller.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

type GoogleTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error)
}
