// Package services содержит логику бизнес-уровня для планировщика
// напоминаний об истекающих планах.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// Интервал между проходами планировщика. Окно поиска покрывает сутки,
// поэтому два прохода за окно допустимы: повторное напоминание о том же
// плане лучше пропущенного.
const scanInterval = 12 * time.Hour

// PlanRepository описывает контракт для поиска истекающих планов.
type PlanRepository interface {
	FindPlansExpiringTomorrow(ctx context.Context, now int64) ([]*models.User, error)
}

// SchedulerService периодически ищет планы, истекающие в ближайшие
// сутки, и публикует напоминания в очередь уведомлений.
type SchedulerService struct {
	repo PlanRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo PlanRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// Run запускает цикл планировщика до отмены контекста. Первый проход
// выполняется сразу, дальше по тикеру.
func (s *SchedulerService) Run(ctx context.Context, ch *amqp.Channel) error {
	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()

	if err := s.scanOnce(ctx, ch); err != nil {
		s.log.Error("scheduler pass failed", sl.Err(err))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.scanOnce(ctx, ch); err != nil {
				s.log.Error("scheduler pass failed", sl.Err(err))
			}
		}
	}
}

func (s *SchedulerService) scanOnce(ctx context.Context, ch *amqp.Channel) error {
	const op = "services.scheduler.scanOnce"

	now := time.Now().UnixMilli()
	users, err := s.repo.FindPlansExpiringTomorrow(ctx, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("scheduler pass", slog.Int("expiring_plans", len(users)))

	for _, user := range users {
		reminder := models.PlanReminder{
			Email:      user.Email,
			Name:       user.Name,
			Mobile:     user.Mobile,
			PlanExpiry: plan.Expiry(user.PlanStart, user.PlanMonths),
		}
		if err := rabbitmq.PublishPlanReminder(ch, reminder); err != nil {
			s.log.Error("failed to publish reminder",
				slog.String("mobile", user.Mobile), sl.Err(err))
			continue
		}
	}
	return nil
}
