package routers

import (
	"healthlinker-service/internal/app/delivery/http/controllers"
	"healthlinker-service/internal/app/delivery/http/middlewares"
	"healthlinker-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindDoctors)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireRoles(models.RoleDoctor))
		r.Get("/profile", doctorController.GetMyProfile)
		r.Post("/profile", doctorController.CreateProfile)
		r.Put("/profile", doctorController.UpdateProfile)
		r.Post("/generate-slots", doctorController.GenerateSlots)
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireRoles(models.RoleAdmin))
		r.Get("/pending", doctorController.ListPendingDoctors)
		r.Patch("/{id}/status", doctorController.ReviewDoctor)
	})

	router.Get("/{id}", doctorController.GetDoctorByID)
}
