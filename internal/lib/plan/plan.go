// Package plan содержит чистую арифметику планов доступа: вычисление срока
// действия, признака оплаченного доступа, оставшихся дней и точки отсчёта
// при продлении. Все функции детерминированы и не имеют побочных эффектов.
//
// Месяц плана — это ровно 30 суток (86 400 000 мс × 30), календарные месяцы
// не используются. Так считает и админка, и клиентская часть, поэтому
// менять арифметику нельзя.
package plan

import "github.com/magabrotheeeer/examprep-backend/internal/models"

const (
	// DayMillis — длительность суток в миллисекундах.
	DayMillis = 24 * 60 * 60 * 1000
	// MonthMillis — длительность одного месяца плана: фиксированные 30 суток.
	MonthMillis = 30 * DayMillis
)

// Entitlement — производные факты о доступе пользователя на момент времени.
// Никогда не хранится, всегда вычисляется заново из PlanStart и PlanMonths.
type Entitlement struct {
	IsPaid     bool  `json:"is_paid"`
	PlanExpiry int64 `json:"plan_expiry"`
	DaysLeft   int   `json:"days_left"`
}

// Expiry возвращает момент окончания плана: planStart + planMonths × 30 суток.
func Expiry(planStart int64, planMonths int) int64 {
	return planStart + int64(planMonths)*MonthMillis
}

// IsActive сообщает, действует ли план в момент now.
// Граница строгая: в момент expiry план уже не действует.
func IsActive(planStart int64, planMonths int, now int64) bool {
	return Expiry(planStart, planMonths) > now
}

// DaysRemaining возвращает количество оставшихся дней, округлённое вверх.
// После окончания плана значение ноль или отрицательное — обрезка и
// группировка по статусам остаётся на вызывающей стороне.
func DaysRemaining(planStart int64, planMonths int, now int64) int {
	diff := Expiry(planStart, planMonths) - now
	days := diff / DayMillis
	if diff > 0 && diff%DayMillis != 0 {
		days++
	}
	return int(days)
}

// Resolve вычисляет новую пару (planStart, planMonths) при продлении на
// additionalMonths. Если план ещё действует, новое окно начинается с текущего
// окончания — неиспользованные дни сохраняются. Если план истёк, окно
// начинается с now: задним числом время не возвращается.
// Количество месяцев заменяется, а не суммируется: длина продления целиком
// закодирована сдвигом точки отсчёта.
func Resolve(planStart int64, planMonths, additionalMonths int, now int64) (int64, int) {
	expiry := Expiry(planStart, planMonths)
	start := now
	if expiry > now {
		start = expiry
	}
	return start, additionalMonths
}

// Evaluate возвращает снимок прав доступа пользователя на момент now.
func Evaluate(u *models.User, now int64) Entitlement {
	return Entitlement{
		IsPaid:     IsActive(u.PlanStart, u.PlanMonths, now),
		PlanExpiry: Expiry(u.PlanStart, u.PlanMonths),
		DaysLeft:   DaysRemaining(u.PlanStart, u.PlanMonths, now),
	}
}
