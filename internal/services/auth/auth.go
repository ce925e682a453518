// Package services содержит логику бизнес-уровня для входа пользователей
// и вычисления прав доступа.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/examprep-backend/internal/cache"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/identity"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
	"github.com/magabrotheeeer/examprep-backend/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при несовпадении пары (номер, почта).
// На границе входа не различается, какое поле оказалось неверным.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для чтения пользователей из базы данных.
type UserRepository interface {
	// GetUserByCredentials возвращает пользователя по номеру телефона и почте.
	GetUserByCredentials(ctx context.Context, mobile, email string) (*models.User, error)
	// GetUser возвращает пользователя по его ID.
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// LoginResult — итог успешного входа: токен сессии, запись пользователя
// и снимок прав доступа. Stale выставляется, когда данные пришли из
// резервного кеша при недоступном хранилище.
type LoginResult struct {
	Token       string
	User        *models.User
	Entitlement plan.Entitlement
	Stale       bool
}

// AuthService отвечает за вход по паре (номер, почта) и выдачу JWT.
type AuthService struct {
	users    UserRepository
	cache    Cache
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, cache Cache, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		cache:    cache,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Login находит пользователя по учётным данным, вычисляет права доступа
// и выдает JWT. При недоступном хранилище вход выполняется по резервному
// списку из кеша, а результат помечается как устаревший.
func (s *AuthService) Login(ctx context.Context, mobile, email string) (*LoginResult, error) {
	mobile = strings.TrimSpace(mobile)
	email = strings.ToLower(strings.TrimSpace(email))

	stale := false
	user, err := s.users.GetUserByCredentials(ctx, mobile, email)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrUserNotFound):
		return nil, ErrInvalidCredentials
	default:
		// Хранилище недоступно: пробуем резервный список пользователей.
		s.log.Warn("storage unavailable, falling back to cached roster", sl.Err(err))
		var roster []*models.User
		found, cacheErr := s.cache.Get(cache.RosterKey, &roster)
		if cacheErr != nil || !found {
			return nil, fmt.Errorf("storage unavailable: %w", err)
		}
		user, cacheErr = identity.Resolve(mobile, email, roster)
		if cacheErr != nil {
			return nil, ErrInvalidCredentials
		}
		stale = true
	}

	ent := plan.Evaluate(user, time.Now().UnixMilli())

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Mobile, "user")
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{
		Token:       token,
		User:        user,
		Entitlement: ent,
		Stale:       stale,
	}, nil
}

// Entitlement возвращает свежий снимок прав доступа пользователя по его ID.
// Статус никогда не читается из токена или кеша решений: он каждый раз
// вычисляется заново из plan_start и plan_months.
func (s *AuthService) Entitlement(ctx context.Context, userID string) (plan.Entitlement, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return plan.Entitlement{}, repository.ErrUserNotFound
		}
		// Хранилище недоступно: ищем пользователя в резервном списке.
		var roster []*models.User
		found, cacheErr := s.cache.Get(cache.RosterKey, &roster)
		if cacheErr != nil || !found {
			return plan.Entitlement{}, fmt.Errorf("storage unavailable: %w", err)
		}
		for _, u := range roster {
			if u.ID == userID {
				return plan.Evaluate(u, time.Now().UnixMilli()), nil
			}
		}
		return plan.Entitlement{}, repository.ErrUserNotFound
	}
	return plan.Evaluate(user, time.Now().UnixMilli()), nil
}
