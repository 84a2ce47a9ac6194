package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	mailpkg "github.com/pribylovaa/go-edu-platform/internal/mail"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

// InviteUser — административный вариант регистрации: пароль генерируется
// случайно и уходит пользователю письмом; привилегированные роли проходят
// онбординг автоматически. Учётная запись коммитится до письма.
func (s *Service) InviteUser(ctx context.Context, name, email, role string) (*models.User, error) {
	const op = "service.users.InviteUser"

	if strings.TrimSpace(name) == "" || email == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	parsedRole, ok := models.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRole)
	}

	password, err := randomPassword()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	user := &models.User{
		ID:              uuid.New(),
		Email:           normEmail,
		Name:            strings.TrimSpace(name),
		PasswordHash:    hashedPassword,
		Role:            parsedRole,
		FormValidated:   parsedRole.Privileged(),
		AccessValidated: parsedRole.Privileged(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.sendAsync(ctx, mailpkg.Invite(user.Email, user.Name, password, s.cfg.Auth.FrontendURL))

	return user, nil
}

// ValidateUserAccess подтверждает доступ пользователя (онбординг).
func (s *Service) ValidateUserAccess(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "service.users.ValidateUserAccess"

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user.AccessValidated = true
	user.UpdatedAt = s.now().UTC()

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// StudentsByAccess возвращает студентов по признаку подтверждённого доступа.
func (s *Service) StudentsByAccess(ctx context.Context, validated bool) ([]models.User, error) {
	const op = "service.users.StudentsByAccess"

	users, err := s.storage.StudentsByAccess(ctx, validated)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// Teachers возвращает всех преподавателей.
func (s *Service) Teachers(ctx context.Context) ([]models.User, error) {
	const op = "service.users.Teachers"

	users, err := s.storage.UsersByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// randomPassword генерирует временный пароль для invite-флоу
// (12 байт энтропии, base64url — 16 символов).
func randomPassword() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
