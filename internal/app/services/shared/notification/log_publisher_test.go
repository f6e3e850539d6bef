package notification

import (
	"context"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogPublisher_PublishAppointmentEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	publisher := NewLogPublisher(zap.New(core))
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	err := publisher.PublishAppointmentEvent(ctx, &models.AppointmentEvent{
		Event:         constvars.EventAppointmentBooked,
		AppointmentID: "a1",
		SlotID:        "s1",
	})

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields[constvars.LoggingRequestIDKey])
	assert.Equal(t, constvars.EventAppointmentBooked, fields[constvars.LoggingEventKey])
	assert.Equal(t, "s1", fields[constvars.LoggingSlotIDKey])
}
