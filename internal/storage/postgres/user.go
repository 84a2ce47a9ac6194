package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

const userColumns = `
	id, email, name, password_hash, role,
	password_changed_at, password_reset_token_hash, password_reset_expires_at,
	form_validated, access_validated, created_at, updated_at
`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.PasswordChangedAt,
		&user.PasswordResetTokenHash,
		&user.PasswordResetExpiresAt,
		&user.FormValidated,
		&user.AccessValidated,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SaveUser создает нового пользователя в БД.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(
			id, email, name, password_hash, role,
			password_changed_at, password_reset_token_hash, password_reset_expires_at,
			form_validated, access_validated, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.Role,
		user.PasswordChangedAt,
		user.PasswordResetTokenHash,
		user.PasswordResetExpiresAt,
		user.FormValidated,
		user.AccessValidated,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateUser сохраняет изменённого пользователя целиком.
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.UpdateUser"

	query := `
		UPDATE users
		SET email = $2,
			name = $3,
			password_hash = $4,
			role = $5,
			password_changed_at = $6,
			password_reset_token_hash = $7,
			password_reset_expires_at = $8,
			form_validated = $9,
			access_validated = $10,
			updated_at = $11
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.Role,
		user.PasswordChangedAt,
		user.PasswordResetTokenHash,
		user.PasswordResetExpiresAt,
		user.FormValidated,
		user.AccessValidated,
		user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// UserByEmail находит пользователя по email.
func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(s.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByID находит пользователя по ID.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UsersByRole возвращает пользователей с указанной ролью.
func (s *Storage) UsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	const op = "storage.postgres.UsersByRole"

	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at`

	rows, err := s.db.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectUsers(op, rows)
}

// StudentsByAccess возвращает студентов по признаку подтверждённого доступа.
func (s *Storage) StudentsByAccess(ctx context.Context, validated bool) ([]models.User, error) {
	const op = "storage.postgres.StudentsByAccess"

	query := `SELECT ` + userColumns + ` FROM users
		WHERE role = $1 AND access_validated = $2
		ORDER BY created_at`

	rows, err := s.db.Query(ctx, query, models.RoleStudent, validated)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectUsers(op, rows)
}

// ClearExpiredResetTokens сбрасывает просроченные reset-челленджи.
func (s *Storage) ClearExpiredResetTokens(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.ClearExpiredResetTokens"

	query := `
		UPDATE users
		SET password_reset_token_hash = '',
			password_reset_expires_at = 'epoch'
		WHERE password_reset_token_hash <> '' AND password_reset_expires_at <= $1
	`

	if _, err := s.db.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func collectUsers(op string, rows pgx.Rows) ([]models.User, error) {
	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}
