package middlewares

import (
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	TokenManager   contracts.TokenManager
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, tokenManager contracts.TokenManager, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		TokenManager:   tokenManager,
		InternalConfig: internalConfig,
	}
}
