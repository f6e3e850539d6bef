package routers

import (
	"healthlinker-service/internal/app/delivery/http/controllers"
	"healthlinker-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, limiter *middlewares.RateLimiter, userController *controllers.UserController) {
	router.With(limiter.Limit).Post("/register", userController.Register)
	router.With(limiter.Limit).Post("/login", userController.Login)
	router.With(limiter.Limit).Post("/google-login", userController.GoogleLogin)
	router.With(middlewares.Authenticate).Get("/profile", userController.GetProfile)
}
