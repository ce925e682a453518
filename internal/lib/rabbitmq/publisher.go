package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// PublishPlanReminder публикует напоминание об истекающем плане в обменник
// notifications с ключом маршрутизации expiring. Сообщение помечается
// персистентным, чтобы пережить перезапуск брокера.
func PublishPlanReminder(ch *amqp.Channel, reminder models.PlanReminder) error {
	const op = "rabbitmq.PublishPlanReminder"
	body, err := json.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		NotificationsExchange,
		ExpiringRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
