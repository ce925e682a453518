package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

func TestPublishPlanReminder(t *testing.T) {
	ctx := context.Background()
	rmqContainer, cleanup := SetupRabbitMQContainer(ctx, t)
	defer cleanup()

	amqpURI, err := GetAmqpURI(ctx, rmqContainer)
	require.NoError(t, err)

	conn, err := Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close connection: %v", err)
		}
	}()

	// SetupChannel объявляет обменник notifications и очередь напоминаний.
	ch, err := SetupChannel(conn, GetNotificationQueues())
	require.NoError(t, err)
	defer func() {
		if err := ch.Close(); err != nil {
			t.Errorf("failed to close channel: %v", err)
		}
	}()

	reminder := models.PlanReminder{
		Email:      "ravi@example.com",
		Name:       "Ravi Kumar",
		Mobile:     "9876543210",
		PlanExpiry: 1_700_000_000_000,
	}

	// Публикуем напоминание через обменник
	err = PublishPlanReminder(ch, reminder)
	require.NoError(t, err)

	// Читаем из очереди напоминаний
	deliveries, err := ch.Consume(ExpiringPlanQueue, "test-consumer", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		var got models.PlanReminder
		err := json.Unmarshal(d.Body, &got)
		require.NoError(t, err)
		assert.Equal(t, reminder, got)
		assert.Equal(t, "application/json", d.ContentType)
		assert.Equal(t, amqp.Persistent, d.DeliveryMode)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for reminder")
	}
}
