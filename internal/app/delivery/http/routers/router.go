package routers

import (
	"fmt"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/delivery/http/controllers"
	"healthlinker-service/internal/app/delivery/http/middlewares"
	"healthlinker-service/internal/pkg/constvars"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Controllers struct {
	User        *controllers.UserController
	Doctor      *controllers.DoctorController
	Appointment *controllers.AppointmentController
	Health      *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   parseAllowedOrigins(internalConfig.App.CorsAllowedOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(logger))
	router.Use(mw.ErrorHandler)
	router.Use(mw.LimitBody)

	router.Get("/healthz", ctrls.Health.Healthz)
	router.Handle("/metrics", promhttp.Handler())

	authLimiter := middlewares.NewRateLimiter(internalConfig.App.AuthMaxRequestsPerMinute, time.Minute, time.Minute, logger)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, mw, authLimiter, ctrls.User)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, mw, ctrls.Doctor)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, mw, ctrls.Appointment)
		})
	})
}

func parseAllowedOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
