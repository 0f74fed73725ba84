package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/user-plans/internal/models"
)

// mapConstraintViolation переводит нарушение уникального ограничения
// (SQLSTATE 23505) в доменную ошибку по имени ограничения. Для прочих
// ошибок возвращает nil — вызывающий оборачивает их как есть.
func mapConstraintViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_email_key":
		return models.ErrEmailTaken
	case "users_username_key":
		return models.ErrUsernameTaken
	}
	return nil
}

// CreateUser сохраняет нового пользователя и возвращает его UID.
// Базовые уникальные ограничения — финальный арбитр: гонка двух
// одновременных регистраций разрешается здесь, а не в предварительных
// проверках сервиса.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (username, email, full_name, password_hash, plan_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.FullName, user.PasswordHash,
		user.PlanID).Scan(&newUID); err != nil {
		if domainErr := mapConstraintViolation(err); domainErr != nil {
			return "", fmt.Errorf("%s: %w", op, domainErr)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, email, full_name, password_hash, plan_id,
			      created_at, updated_at
			  FROM users
			  WHERE uid = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, uid)

	var fullName sql.NullString
	if err := row.Scan(&u.UID, &u.Username, &u.Email, &fullName,
		&u.PasswordHash, &u.PlanID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if fullName.Valid {
		u.FullName = &fullName.String
	}
	return u, nil
}

// GetUserInfo возвращает внешнее представление пользователя вместе
// с названием его тарифа. Хэш пароля не выбирается.
func (s *Storage) GetUserInfo(ctx context.Context, uid string) (*models.UserInfo, error) {
	const op = "storage.GetUserInfo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.uid, u.username, u.email, u.full_name, p.name, u.created_at
			  FROM users u
			  JOIN plans p ON p.id = u.plan_id
			  WHERE u.uid = $1`
	info := &models.UserInfo{}
	row := s.DB.QueryRowContext(ctx, query, uid)

	var fullName sql.NullString
	if err := row.Scan(&info.UID, &info.Username, &info.Email, &fullName,
		&info.PlanName, &info.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if fullName.Valid {
		info.FullName = fullName.String
	}
	return info, nil
}

// ExistsUserByEmail проверяет, зарегистрирована ли электронная почта.
func (s *Storage) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	const op = "storage.ExistsUserByEmail"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ExistsUserByUsername проверяет, занято ли имя пользователя.
func (s *Storage) ExistsUserByUsername(ctx context.Context, username string) (bool, error) {
	const op = "storage.ExistsUserByUsername"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	if err := s.DB.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// UpdateUserProfile сохраняет изменённые username и full_name и обновляет
// updated_at. Email, хэш пароля, тариф и created_at здесь не трогаются.
// Возвращает количество обновлённых строк.
func (s *Storage) UpdateUserProfile(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.UpdateUserProfile"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET username = $1, full_name = $2, updated_at = now()
			  WHERE uid = $3`
	result, err := s.DB.ExecContext(ctx, query, user.Username, user.FullName, user.UID)
	if err != nil {
		if domainErr := mapConstraintViolation(err); domainErr != nil {
			return 0, fmt.Errorf("%s: %w", op, domainErr)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// UpdateUserPlan переводит пользователя на другой тариф и обновляет
// updated_at. Возвращает количество обновлённых строк.
func (s *Storage) UpdateUserPlan(ctx context.Context, uid string, planID int) (int64, error) {
	const op = "storage.UpdateUserPlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET plan_id = $1, updated_at = now()
			  WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, planID, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// DeleteUser удаляет пользователя по UID и возвращает количество
// удалённых строк. Повторное удаление вернёт 0.
func (s *Storage) DeleteUser(ctx context.Context, uid string) (int64, error) {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}
