package controllers

import (
	"context"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/responses"
	"healthlinker-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log    *zap.Logger
	Checks map[string]HealthCheck
}

func NewHealthController(logger *zap.Logger, checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		Log:    logger,
		Checks: checks,
	}
}

// Healthz answers 200 when every dependency answers, 503 with the failing ones otherwise.
func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	statuses := make(map[string]string, len(ctrl.Checks))
	healthy := true
	for name, check := range ctrl.Checks {
		if err := check(ctx); err != nil {
			healthy = false
			statuses[name] = err.Error()
			ctrl.Log.Warn("HealthController.Healthz dependency unhealthy",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String("dependency", name),
				zap.Error(err),
			)
			continue
		}
		statuses[name] = constvars.ResponseSuccess
	}

	if !healthy {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(constvars.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(responses.ResponseDTO{
			Success: false,
			Message: constvars.ErrClientServiceUnhealthy,
			Data:    statuses,
		})
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, statuses)
}
