package models

// PlanReminder — сообщение очереди уведомлений об истекающем плане.
type PlanReminder struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	PlanExpiry int64  `json:"plan_expiry"`
}
