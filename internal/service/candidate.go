package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	mailpkg "github.com/pribylovaa/go-edu-platform/internal/mail"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

// CandidateInput — поля заявки кандидата.
type CandidateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Specialty string
	Interest  string
}

// RegisterCandidate принимает заявку кандидата.
// Заявка коммитится до писем; уведомления администратору и кандидату —
// best-effort и на исход запроса не влияют.
func (s *Service) RegisterCandidate(ctx context.Context, in CandidateInput) (*models.Candidate, error) {
	const op = "service.candidate.RegisterCandidate"

	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		in.Email == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Specialty) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	normEmail, err := validateEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	_, err = s.storage.CandidateByEmail(ctx, normEmail)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	candidate := &models.Candidate{
		ID:          uuid.New(),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       normEmail,
		Phone:       strings.TrimSpace(in.Phone),
		Specialty:   strings.TrimSpace(in.Specialty),
		Interest:    strings.TrimSpace(in.Interest),
		Status:      models.CandidatePending,
		SubmittedAt: s.now().UTC(),
	}

	if err := s.storage.SaveCandidate(ctx, candidate); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.sendAsync(ctx, mailpkg.CandidateAdminNotice(s.cfg.SMTP.AdminEmail, candidate))
	s.sendAsync(ctx, mailpkg.CandidateConfirmation(candidate))

	return candidate, nil
}
