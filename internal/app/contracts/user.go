package contracts

import (
	"context"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthToken, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthToken, error)
	GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*responses.AuthToken, error)
	GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
}
