package routers

import (
	"healthlinker-service/internal/app/delivery/http/controllers"
	"healthlinker-service/internal/app/delivery/http/middlewares"
	"healthlinker-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Get("/available-slots", appointmentController.SearchAvailableSlots)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireRoles(models.RolePatient))
		r.Post("/book", appointmentController.BookAppointment)
		r.Get("/patient", appointmentController.ListPatientAppointments)
		r.Delete("/{id}", appointmentController.CancelAppointment)
	})

	router.With(middlewares.Authenticate, middlewares.RequireRoles(models.RoleDoctor)).
		Get("/doctor", appointmentController.ListDoctorAppointments)
}
