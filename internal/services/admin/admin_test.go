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
	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
	"github.com/magabrotheeeer/examprep-backend/internal/storage/repository"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockUserRepository) UpdatePlan(ctx context.Context, userID string, planStart int64, planMonths int) error {
	args := m.Called(ctx, userID, planStart, planMonths)
	return args.Error(0)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
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

func TestCreate_Success(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAdminService(repo, cch, discardLogger())

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Mobile == "9876543210" &&
			u.Email == "ravi@example.com" &&
			u.PlanMonths == 3 &&
			u.ID != "" &&
			u.PlanStart > 0
	})).Return(nil)
	repo.On("ListUsers", mock.Anything).Return([]*models.User{}, nil)
	cch.On("Set", cache.RosterKey, mock.Anything, time.Duration(0)).Return(nil)

	user, err := svc.Create(context.Background(), &models.DummyUser{
		Mobile:     " 9876543210 ",
		Email:      "Ravi@Example.COM",
		Name:       "Ravi Kumar",
		PlanMonths: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.Equal(t, user.PlanStart, user.CreatedAt)
	repo.AssertExpectations(t)
}

func TestCreate_MobileTaken(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAdminService(repo, cch, discardLogger())

	repo.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrMobileTaken)

	_, err := svc.Create(context.Background(), &models.DummyUser{
		Mobile:     "9876543210",
		Email:      "ravi@example.com",
		Name:       "Ravi Kumar",
		PlanMonths: 1,
	})
	assert.ErrorIs(t, err, repository.ErrMobileTaken)
}

func TestCreate_InvalidMonths(t *testing.T) {
	svc := NewAdminService(new(mockUserRepository), new(mockCache), discardLogger())

	_, err := svc.Create(context.Background(), &models.DummyUser{
		Mobile:     "9876543210",
		Email:      "ravi@example.com",
		Name:       "Ravi Kumar",
		PlanMonths: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidMonths)
}

func TestRenew_ActivePlanStacks(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAdminService(repo, cch, discardLogger())

	now := time.Now().UnixMilli()
	user := &models.User{
		ID:         "u-1",
		PlanStart:  now - 10*plan.DayMillis,
		PlanMonths: 1,
	}
	oldExpiry := plan.Expiry(user.PlanStart, user.PlanMonths)

	repo.On("GetUser", mock.Anything, "u-1").Return(user, nil)
	repo.On("UpdatePlan", mock.Anything, "u-1", oldExpiry, 6).Return(nil)
	repo.On("ListUsers", mock.Anything).Return([]*models.User{user}, nil)
	cch.On("Set", cache.RosterKey, mock.Anything, time.Duration(0)).Return(nil)

	renewed, err := svc.Renew(context.Background(), "u-1", 6)
	require.NoError(t, err)
	assert.Equal(t, oldExpiry, renewed.PlanStart)
	assert.Equal(t, 6, renewed.PlanMonths)
	repo.AssertExpectations(t)
}

func TestRenew_ExpiredPlanAnchorsAtNow(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAdminService(repo, cch, discardLogger())

	now := time.Now().UnixMilli()
	user := &models.User{
		ID:         "u-2",
		PlanStart:  now - 3*plan.MonthMillis,
		PlanMonths: 1,
	}

	repo.On("GetUser", mock.Anything, "u-2").Return(user, nil)
	repo.On("UpdatePlan", mock.Anything, "u-2",
		mock.MatchedBy(func(start int64) bool { return start >= now }), 1).Return(nil)
	repo.On("ListUsers", mock.Anything).Return([]*models.User{user}, nil)
	cch.On("Set", cache.RosterKey, mock.Anything, time.Duration(0)).Return(nil)

	renewed, err := svc.Renew(context.Background(), "u-2", 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, renewed.PlanStart, now)
	assert.Equal(t, 1, renewed.PlanMonths)
}

func TestRenew_UserNotFound(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAdminService(repo, new(mockCache), discardLogger())

	repo.On("GetUser", mock.Anything, "missing").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Renew(context.Background(), "missing", 3)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAdminService(repo, cch, discardLogger())

	repo.On("DeleteUser", mock.Anything, "u-1").Return(nil)
	repo.On("ListUsers", mock.Anything).Return([]*models.User{}, nil)
	cch.On("Set", cache.RosterKey, mock.Anything, time.Duration(0)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "u-1"))
	repo.AssertExpectations(t)
}

func TestList_RefreshesRosterCache(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAdminService(repo, cch, discardLogger())

	users := []*models.User{{ID: "u-1"}, {ID: "u-2"}}
	repo.On("ListUsers", mock.Anything).Return(users, nil)
	cch.On("Set", cache.RosterKey, users, time.Duration(0)).Return(nil)

	got, stale, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Len(t, got, 2)
	cch.AssertExpectations(t)
}

func TestList_FallsBackToCachedRoster(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAdminService(repo, cch, discardLogger())

	roster := []*models.User{{ID: "u-1"}}
	repo.On("ListUsers", mock.Anything).Return(nil, errors.New("connection refused"))
	cch.On("Get", cache.RosterKey, mock.Anything).Return(true, nil, roster)

	got, stale, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Len(t, got, 1)
}

func TestList_StorageDownAndCacheEmpty(t *testing.T) {
	repo := new(mockUserRepository)
	cch := new(mockCache)
	svc := NewAdminService(repo, cch, discardLogger())

	repo.On("ListUsers", mock.Anything).Return(nil, errors.New("connection refused"))
	cch.On("Get", cache.RosterKey, mock.Anything).Return(false, nil, nil)

	_, _, err := svc.List(context.Background())
	require.Error(t, err)
}
