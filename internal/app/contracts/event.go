package contracts

import (
	"context"
	"healthlinker-service/internal/app/models"
)

type AppointmentEventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error
}
