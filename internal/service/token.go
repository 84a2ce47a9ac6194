package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	logctx "github.com/pribylovaa/go-edu-platform/internal/pkg/log"
)

// Оба вида токенов — stateless JWT (HS256) с разными секретами.
// Подпись и срок проверяются без обращения к БД; авторизация
// дополнительно сверяет PasswordChangedAt по живой записи пользователя.

// generateAccessToken генерирует access-токен.
func (s *Service) generateAccessToken(userID uuid.UUID, now time.Time) (string, error) {
	const op = "service.token.generateAccessToken"

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.AccessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    s.cfg.Auth.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.AccessSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// generateRefreshToken генерирует refresh-токен; jti нужен
// hardened-реестру для адресного изъятия.
func (s *Service) generateRefreshToken(userID uuid.UUID, now time.Time) (token string, jti string, err error) {
	const op = "service.token.generateRefreshToken"

	jti = uuid.NewString()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        jti,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.RefreshTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    s.cfg.Auth.Issuer,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.cfg.Auth.RefreshSecret))
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, jti, nil
}

// parseAccessToken валидирует access-токен и возвращает ID пользователя
// и момент выпуска (для проверки смены пароля).
func (s *Service) parseAccessToken(tokenStr string) (uuid.UUID, time.Time, error) {
	const op = "service.token.parseAccessToken"

	claims, err := parseHS256(tokenStr, s.cfg.Auth.AccessSecret, s.cfg.Auth.Issuer)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.IssuedAt == nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, claims.IssuedAt.Time, nil
}

// parseRefreshToken валидирует refresh-токен и возвращает ID пользователя и jti.
func (s *Service) parseRefreshToken(tokenStr string) (uuid.UUID, string, error) {
	const op = "service.token.parseRefreshToken"

	claims, err := parseHS256(tokenStr, s.cfg.Auth.RefreshSecret, s.cfg.Auth.Issuer)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, err)
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, claims.ID, nil
}

// parseHS256 — общая проверка подписи/срока для обоих видов токенов.
// Наружу различаются только "просрочен" и "невалиден".
func parseHS256(tokenStr, secret, issuer string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidToken
			}

			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// issueTokenPair выпускает новую пару access+refresh токенов.
// В hardened-режиме jti свежего refresh-токена регистрируется в Redis.
func (s *Service) issueTokenPair(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	const op = "service.token.issueTokenPair"

	now := s.now().UTC()

	accessToken, err := s.generateAccessToken(user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, jti, err := s.generateRefreshToken(user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.register != nil {
		if err := s.register.Put(ctx, jti, user.ID, s.cfg.Auth.RefreshTokenTTL); err != nil {
			logctx.From(ctx).Error("refresh_register_put_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: now.Add(s.cfg.Auth.AccessTokenTTL),
	}, nil
}
