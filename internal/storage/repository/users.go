package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// uniqueViolation — SQLSTATE нарушения уникального ограничения.
const uniqueViolation = "23505"

// CreateUser сохраняет нового пользователя в базу данных.
// При занятом номере телефона возвращает ErrMobileTaken.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (id, mobile, email, name, plan_start, plan_months, notes, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	if _, err := s.DB.ExecContext(ctx, query,
		user.ID, user.Mobile, user.Email, user.Name, user.PlanStart,
		user.PlanMonths, user.Notes, user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%s: %w", op, ErrMobileTaken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, userID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, mobile, email, name, plan_start, plan_months, notes, created_at
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&u.ID, &u.Mobile, &u.Email, &u.Name,
		&u.PlanStart, &u.PlanMonths, &u.Notes, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByCredentials возвращает пользователя по номеру телефона и почте.
// Номер сравнивается точно, почта — без учёта регистра.
func (s *Storage) GetUserByCredentials(ctx context.Context, mobile, email string) (*models.User, error) {
	const op = "storage.GetUserByCredentials"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, mobile, email, name, plan_start, plan_months, notes, created_at
			  FROM users
			  WHERE mobile = $1 AND LOWER(email) = LOWER($2)
			  LIMIT 1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, mobile, email)
	if err := row.Scan(&u.ID, &u.Mobile, &u.Email, &u.Name,
		&u.PlanStart, &u.PlanMonths, &u.Notes, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ListUsers возвращает всех пользователей, новые записи первыми.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, mobile, email, name, plan_start, plan_months, notes, created_at
			  FROM users
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Mobile, &u.Email, &u.Name,
			&u.PlanStart, &u.PlanMonths, &u.Notes, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdatePlan записывает новую пару (plan_start, plan_months) одной атомарной
// командой по ключу пользователя. Возвращает ErrUserNotFound, если записи нет.
func (s *Storage) UpdatePlan(ctx context.Context, userID string, planStart int64, planMonths int) error {
	const op = "storage.UpdatePlan"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET plan_start = $1, plan_months = $2
			  WHERE id = $3`
	res, err := s.DB.ExecContext(ctx, query, planStart, planMonths, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// DeleteUser удаляет пользователя без возможности восстановления.
func (s *Storage) DeleteUser(ctx context.Context, userID string) error {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// FindPlansExpiringTomorrow находит пользователей, чей план заканчивается
// в ближайшие сутки. Срок действия вычисляется прямо в запросе той же
// формулой 30-дневных месяцев, что и в lib/plan.
func (s *Storage) FindPlansExpiringTomorrow(ctx context.Context, now int64) ([]*models.User, error) {
	const op = "storage.FindPlansExpiringTomorrow"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, mobile, email, name, plan_start, plan_months, notes, created_at
			  FROM users
			  WHERE plan_start + plan_months::BIGINT * $1 > $2
			    AND plan_start + plan_months::BIGINT * $1 <= $3`
	rows, err := s.DB.QueryContext(ctx, query, int64(plan.MonthMillis), now, now+plan.DayMillis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Mobile, &u.Email, &u.Name,
			&u.PlanStart, &u.PlanMonths, &u.Notes, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
