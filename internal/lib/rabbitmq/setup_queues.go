package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации для обменника notifications.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

const (
	// NotificationsExchange — direct-обменник всех почтовых уведомлений.
	NotificationsExchange = "notifications"
	// ExpiringPlanQueue — очередь напоминаний об истекающих планах доступа.
	ExpiringPlanQueue = "notification.expiring"
	// ExpiringRoutingKey — ключ маршрутизации напоминаний об истечении.
	ExpiringRoutingKey = "expiring"
)

// GetNotificationQueues возвращает очереди уведомлений, которые объявляет
// каждый процесс, работающий с обменником notifications.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: ExpiringPlanQueue, RoutingKey: ExpiringRoutingKey},
	}
}
