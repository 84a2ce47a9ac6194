package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

// SaveCandidate создает заявку кандидата в БД.
func (s *Storage) SaveCandidate(ctx context.Context, candidate *models.Candidate) error {
	const op = "storage.postgres.SaveCandidate"

	query := `
		INSERT INTO candidates(
			id, first_name, last_name, email, phone,
			specialty, interest, status, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		candidate.ID,
		candidate.FirstName,
		candidate.LastName,
		candidate.Email,
		candidate.Phone,
		candidate.Specialty,
		candidate.Interest,
		candidate.Status,
		candidate.SubmittedAt,
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

// CandidateByEmail находит заявку по email кандидата.
func (s *Storage) CandidateByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	const op = "storage.postgres.CandidateByEmail"

	query := `
		SELECT id, first_name, last_name, email, phone,
			specialty, interest, status, submitted_at
		FROM candidates
		WHERE email = $1
	`

	var candidate models.Candidate
	err := s.db.QueryRow(ctx, query, email).Scan(
		&candidate.ID,
		&candidate.FirstName,
		&candidate.LastName,
		&candidate.Email,
		&candidate.Phone,
		&candidate.Specialty,
		&candidate.Interest,
		&candidate.Status,
		&candidate.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &candidate, nil
}
