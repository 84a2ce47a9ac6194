package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

// Интеграционные тесты репозитория candidate.go.
// Контейнерная обвязка (startPostgres) — в user_test.go.

func newDBCandidate(email string) *models.Candidate {
	return &models.Candidate{
		ID:          uuid.New(),
		FirstName:   "Ivan",
		LastName:    "Petrov",
		Email:       email,
		Phone:       "+70000000000",
		Specialty:   "backend",
		Interest:    "go course",
		Status:      models.CandidatePending,
		SubmittedAt: time.Now().UTC(),
	}
}

// TestIntegration_SaveCandidate_And_GetByEmail_OK — happy-path плюс CITEXT-поиск.
func TestIntegration_SaveCandidate_And_GetByEmail_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	c := newDBCandidate("candidate@example.com")
	require.NoError(t, st.SaveCandidate(context.Background(), c))

	got, err := st.CandidateByEmail(context.Background(), "CANDIDATE@EXAMPLE.COM")
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)
	require.Equal(t, c.FullName(), got.FullName())
	require.Equal(t, models.CandidatePending, got.Status)
	require.WithinDuration(t, c.SubmittedAt, got.SubmittedAt, time.Second)
}

// TestIntegration_SaveCandidate_DuplicateEmail_Violation — повторная заявка
// с тем же email (в другом регистре) даёт storage.ErrAlreadyExists.
func TestIntegration_SaveCandidate_DuplicateEmail_Violation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	require.NoError(t, st.SaveCandidate(context.Background(), newDBCandidate("dup@example.com")))

	err := st.SaveCandidate(context.Background(), newDBCandidate("DUP@example.com"))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_CandidateByEmail_NotFound — отсутствующая заявка, storage.ErrNotFound.
func TestIntegration_CandidateByEmail_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.CandidateByEmail(context.Background(), "absent@example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
