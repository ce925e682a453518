// Package models содержит доменные структуры, описывающие пользователя
// с оплаченным планом доступа, а также вспомогательные типы для работы
// с данными из внешних источников (например, JSON-запросы).
package models

// User представляет пользователя, заведённого администратором.
// Все временные поля хранятся в миллисекундах эпохи Unix — срок действия
// плана никогда не хранится отдельно, а всегда вычисляется из PlanStart
// и PlanMonths.
type User struct {
	ID         string // Уникальный идентификатор пользователя
	Mobile     string // Номер мобильного телефона (уникальный, логин)
	Email      string // Электронная почта (второй фактор входа, хранится в нижнем регистре)
	Name       string // Отображаемое имя
	PlanStart  int64  // Начало действия плана, мс эпохи
	PlanMonths int    // Количество 30-дневных периодов плана
	Notes      string // Заметки администратора, на логику не влияют
	CreatedAt  int64  // Момент создания записи, мс эпохи
}

// DummyUser используется для приёма данных из JSON-запроса администратора,
// прежде чем конвертировать их в User. Номер телефона дополнительно
// проверяется на шаблон индийской мобильной нумерации на границе HTTP.
type DummyUser struct {
	Mobile     string `json:"mobile" validate:"required,numeric,len=10"`      // Номер телефона (10 цифр)
	Email      string `json:"email" validate:"required,email"`                // Электронная почта
	Name       string `json:"name" validate:"required"`                       // Имя пользователя
	PlanMonths int    `json:"plan_months" validate:"required,oneof=1 3 6 12"` // Длительность плана
	Notes      string `json:"notes"`                                          // Заметки (опционально)
}
