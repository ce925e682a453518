package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/examprep-backend/internal/cache"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
	"github.com/magabrotheeeer/examprep-backend/internal/storage/repository"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetUserByCredentials(ctx context.Context, mobile, email string) (*models.User, error) {
	args := m.Called(ctx, mobile, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	if users, ok := args.Get(2).([]*models.User); ok {
		*(result.(*[]*models.User)) = users
	}
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(planStart int64, months int) *models.User {
	return &models.User{
		ID:         "b2f1c0de-1111-2222-3333-444455556666",
		Mobile:     "9876543210",
		Email:      "ravi@example.com",
		Name:       "Ravi Kumar",
		PlanStart:  planStart,
		PlanMonths: months,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	svc := NewAuthService(repo, cch, maker, discardLogger())

	now := time.Now().UnixMilli()
	user := newTestUser(now, 3)
	repo.On("GetUserByCredentials", mock.Anything, "9876543210", "ravi@example.com").
		Return(user, nil)

	res, err := svc.Login(context.Background(), " 9876543210 ", "Ravi@Example.COM")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.Entitlement.IsPaid)
	assert.False(t, res.Stale)
	assert.Equal(t, user, res.User)

	claims, err := maker.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user", claims.Role)

	repo.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAuthService(repo, cch, jwt.NewJWTMaker("test-secret", time.Hour), discardLogger())

	repo.On("GetUserByCredentials", mock.Anything, "9876543210", "wrong@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "9876543210", "wrong@example.com")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_FallsBackToCachedRoster(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAuthService(repo, cch, jwt.NewJWTMaker("test-secret", time.Hour), discardLogger())

	now := time.Now().UnixMilli()
	roster := []*models.User{newTestUser(now, 1)}
	repo.On("GetUserByCredentials", mock.Anything, "9876543210", "ravi@example.com").
		Return(nil, errors.New("connection refused"))
	cch.On("Get", cache.RosterKey, mock.Anything).Return(true, nil, roster)

	res, err := svc.Login(context.Background(), "9876543210", "ravi@example.com")
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Equal(t, roster[0].ID, res.User.ID)
}

func TestLogin_StorageDownAndCacheEmpty(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAuthService(repo, cch, jwt.NewJWTMaker("test-secret", time.Hour), discardLogger())

	repo.On("GetUserByCredentials", mock.Anything, "9876543210", "ravi@example.com").
		Return(nil, errors.New("connection refused"))
	cch.On("Get", cache.RosterKey, mock.Anything).Return(false, nil, nil)

	_, err := svc.Login(context.Background(), "9876543210", "ravi@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RosterHasNoMatch(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAuthService(repo, cch, jwt.NewJWTMaker("test-secret", time.Hour), discardLogger())

	now := time.Now().UnixMilli()
	roster := []*models.User{newTestUser(now, 1)}
	repo.On("GetUserByCredentials", mock.Anything, "1234500000", "other@example.com").
		Return(nil, errors.New("connection refused"))
	cch.On("Get", cache.RosterKey, mock.Anything).Return(true, nil, roster)

	_, err := svc.Login(context.Background(), "1234500000", "other@example.com")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEntitlement_ExpiredPlan(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAuthService(repo, cch, jwt.NewJWTMaker("test-secret", time.Hour), discardLogger())

	now := time.Now().UnixMilli()
	user := newTestUser(now-2*plan.MonthMillis, 1)
	repo.On("GetUser", mock.Anything, user.ID).Return(user, nil)

	ent, err := svc.Entitlement(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, ent.IsPaid)
	assert.LessOrEqual(t, ent.DaysLeft, 0)
}

func TestEntitlement_FallsBackToRoster(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAuthService(repo, cch, jwt.NewJWTMaker("test-secret", time.Hour), discardLogger())

	now := time.Now().UnixMilli()
	user := newTestUser(now, 6)
	repo.On("GetUser", mock.Anything, user.ID).Return(nil, errors.New("connection refused"))
	cch.On("Get", cache.RosterKey, mock.Anything).Return(true, nil, []*models.User{user})

	ent, err := svc.Entitlement(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, ent.IsPaid)
}
