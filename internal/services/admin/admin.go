// Package services содержит логику бизнес-уровня для управления
// пользователями через админ-консоль.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/examprep-backend/internal/cache"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// ErrInvalidMonths возвращается при неположительном числе месяцев продления.
var ErrInvalidMonths = errors.New("plan months must be positive")

// UserRepository описывает контракт для работы с таблицей пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdatePlan(ctx context.Context, userID string, planStart int64, planMonths int) error
	DeleteUser(ctx context.Context, userID string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// AdminService реализует операции админ-консоли над пользователями.
type AdminService struct {
	users UserRepository
	cache Cache
	log   *slog.Logger
}

// NewAdminService создает новый экземпляр AdminService.
func NewAdminService(users UserRepository, cache Cache, log *slog.Logger) *AdminService {
	return &AdminService{
		users: users,
		cache: cache,
		log:   log,
	}
}

// Create регистрирует нового пользователя. План стартует с текущего
// момента, номер месяца берется из запроса. Почта приводится к нижнему
// регистру при сохранении.
func (s *AdminService) Create(ctx context.Context, req *models.DummyUser) (*models.User, error) {
	const op = "services.admin.Create"

	if req.PlanMonths < 1 {
		return nil, ErrInvalidMonths
	}

	now := time.Now().UnixMilli()
	user := &models.User{
		ID:         uuid.New().String(),
		Mobile:     strings.TrimSpace(req.Mobile),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Name:       strings.TrimSpace(req.Name),
		PlanStart:  now,
		PlanMonths: req.PlanMonths,
		Notes:      strings.TrimSpace(req.Notes),
		CreatedAt:  now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.refreshRoster(ctx)
	return user, nil
}

// Renew продлевает план пользователя. Новый срок отсчитывается от
// максимума из текущего момента и действующей даты окончания, число
// месяцев заменяется на переданное, а не суммируется.
func (s *AdminService) Renew(ctx context.Context, userID string, additionalMonths int) (*models.User, error) {
	const op = "services.admin.Renew"

	if additionalMonths < 1 {
		return nil, ErrInvalidMonths
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UnixMilli()
	newStart, newMonths := plan.Resolve(user.PlanStart, user.PlanMonths, additionalMonths, now)

	if err := s.users.UpdatePlan(ctx, userID, newStart, newMonths); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user.PlanStart = newStart
	user.PlanMonths = newMonths

	s.refreshRoster(ctx)
	return user, nil
}

// Delete удаляет пользователя по его ID.
func (s *AdminService) Delete(ctx context.Context, userID string) error {
	const op = "services.admin.Delete"

	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.refreshRoster(ctx)
	return nil
}

// List возвращает всех пользователей. При недоступном хранилище список
// читается из резервного кеша и помечается как устаревший.
func (s *AdminService) List(ctx context.Context) ([]*models.User, bool, error) {
	const op = "services.admin.List"

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.log.Warn("storage unavailable, falling back to cached roster", sl.Err(err))
		var roster []*models.User
		found, cacheErr := s.cache.Get(cache.RosterKey, &roster)
		if cacheErr != nil || !found {
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}
		return roster, true, nil
	}

	if cacheErr := s.cache.Set(cache.RosterKey, users, 0); cacheErr != nil {
		s.log.Warn("failed to refresh roster cache", sl.Err(cacheErr))
	}
	return users, false, nil
}

// refreshRoster перечитывает список пользователей в резервный кеш после
// изменения данных. Ошибки только логируются: запись в базу уже прошла.
func (s *AdminService) refreshRoster(ctx context.Context) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.log.Warn("failed to reload users for roster cache", sl.Err(err))
		return
	}
	if err := s.cache.Set(cache.RosterKey, users, 0); err != nil {
		s.log.Warn("failed to refresh roster cache", sl.Err(err))
	}
}
