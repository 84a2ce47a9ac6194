package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	mailpkg "github.com/pribylovaa/go-edu-platform/internal/mail"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	logctx "github.com/pribylovaa/go-edu-platform/internal/pkg/log"
	"github.com/pribylovaa/go-edu-platform/internal/pkg/redact"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

// bcryptCost — фиксированная стоимость хэширования паролей.
const bcryptCost = 12

// passwordEpsilon — сдвиг PasswordChangedAt в прошлое при смене пароля.
// Компенсирует секундную гранулярность iat в JWT: свежая пара, выпущенная
// сразу после смены, из-за усечения iat может получить момент выпуска
// «раньше» смены и без сдвига считалась бы протухшей. Обратная сторона:
// токен, выпущенный в пределах этой секунды до смены, остаётся валиден.
const passwordEpsilon = time.Second

// RegisterUser регистрирует нового пользователя и выдаёт пару токенов.
func (s *Service) RegisterUser(ctx context.Context, name, email, password, role string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.RegisterUser"

	if strings.TrimSpace(name) == "" || email == "" || password == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	parsedRole, ok := models.ParseRole(role)
	if !ok {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidRole)
	}

	if err := validatePassword(password); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.storage.UserByEmail(ctx, normEmail)
	if err == nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Email:        normEmail,
		Name:         strings.TrimSpace(name),
		PasswordHash: hashedPassword,
		Role:         parsedRole,
		// Привилегированные роли проходят онбординг автоматически.
		FormValidated:   parsedRole.Privileged(),
		AccessValidated: parsedRole.Privileged(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Гонку двух регистраций арбитрирует хранилище: проигравшая
	// сторона получает ErrAlreadyExists.
	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, pair, nil
}

// LoginUser выполняет вход по email+пароль.
// Ошибка намеренно одна и та же для "нет пользователя" и "неверный пароль".
func (s *Service) LoginUser(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.LoginUser"

	if email == "" || password == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, pair, nil
}

// RefreshTokens ротирует пару по refresh-токену из cookie.
// По умолчанию старый токен остаётся криптографически валиден до своего
// истечения; hardened-реестр (если включён) изымает его атомарно.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.RefreshTokens"

	uid, jti, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.register != nil {
		consumed, err := s.register.Consume(ctx, jti)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !consumed {
			logctx.From(ctx).Warn("refresh_reuse_detected",
				slog.String("op", op),
				slog.String("user_id", uid.String()),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}
	}

	user, err := s.storage.UserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserGone)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// Logout отзывает refresh-токен в hardened-реестре, если тот включён.
// Всегда успешен и идемпотентен: невалидный или отсутствующий токен — не ошибка.
func (s *Service) Logout(ctx context.Context, refreshToken string) {
	const op = "service.auth.Logout"

	if s.register == nil || refreshToken == "" {
		return
	}

	_, jti, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return
	}

	if err := s.register.Revoke(ctx, jti); err != nil {
		logctx.From(ctx).Error("refresh_revoke_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}
}

// AuthenticateAccess проверяет access-токен и возвращает живую запись
// пользователя. Проверка подписи stateless, но протухание по смене пароля
// требует обращения к хранилищу: украденный токен, выпущенный до ротации
// пароля, должен быть отвергнут.
func (s *Service) AuthenticateAccess(ctx context.Context, accessToken string) (*models.User, error) {
	const op = "service.auth.AuthenticateAccess"

	uid, issuedAt, err := s.parseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserGone)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.ChangedPasswordAfter(issuedAt) {
		return nil, fmt.Errorf("%s: %w", op, ErrStalePassword)
	}

	return user, nil
}

// UpdatePassword меняет пароль аутентифицированного пользователя
// и выпускает свежую пару токенов. Смена пароля немедленно протухает
// все ранее выданные access-токены (через AuthenticateAccess).
func (s *Service) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.UpdatePassword"

	if currentPassword == "" || newPassword == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, currentPassword) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := validatePassword(newPassword); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.setPassword(ctx, user, newPassword); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, pair, nil
}

// ForgotPassword создаёт reset-челлендж и отправляет письмо со ссылкой.
// Ответ одинаков для существующего и несуществующего email — наружу
// наличие учётной записи не раскрывается.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	const op = "service.auth.ForgotPassword"

	if email == "" {
		return fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		// Невалидный формат неотличим от отсутствующего адреса.
		return nil
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	// Сырой токен уходит в письмо; хранится только SHA-256.
	// Новый челлендж замещает предыдущий (не более одного активного).
	token, err := randomToken()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	user.PasswordResetTokenHash = hashResetToken(token)
	user.PasswordResetExpiresAt = now.Add(s.cfg.Auth.ResetTokenTTL)
	user.UpdatedAt = now

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// Челлендж уже закоммичен; письмо — best-effort.
	s.sendAsync(ctx, mailpkg.PasswordReset(user.Email, s.cfg.Auth.FrontendURL, token))

	return nil
}

// ResetPassword завершает reset-флоу: проверяет токен, меняет пароль,
// гасит челлендж (single-use) и выпускает свежую пару токенов.
func (s *Service) ResetPassword(ctx context.Context, token, email, newPassword string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.ResetPassword"

	if token == "" || email == "" || newPassword == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrResetTokenInvalid)
	}

	if err := validatePassword(newPassword); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrResetTokenInvalid)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	if !user.HasActiveResetToken(now) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrResetTokenInvalid)
	}

	if subtle.ConstantTimeCompare(
		[]byte(hashResetToken(token)),
		[]byte(user.PasswordResetTokenHash),
	) != 1 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrResetTokenInvalid)
	}

	// setPassword гасит челлендж; повторный вызов с тем же токеном
	// упадёт на HasActiveResetToken.
	if err := s.setPassword(ctx, user, newPassword); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, pair, nil
}

// setPassword хэширует и сохраняет новый пароль, сбрасывает reset-челлендж
// и отодвигает PasswordChangedAt на epsilon в прошлое.
func (s *Service) setPassword(ctx context.Context, user *models.User, password string) error {
	const op = "service.auth.setPassword"

	hashed, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	user.PasswordHash = hashed
	user.PasswordChangedAt = now.Add(-passwordEpsilon)
	user.PasswordResetTokenHash = ""
	user.PasswordResetExpiresAt = time.Time{}
	user.UpdatedAt = now

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// sendAsync отправляет письмо в отдельной горутине: доставка не должна
// ни задерживать ответ, ни ронять уже закоммиченное состояние.
func (s *Service) sendAsync(ctx context.Context, msg mailpkg.Message) {
	lg := logctx.From(ctx)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.mailer.Send(logctx.Into(sendCtx, lg), msg); err != nil {
			lg.Error("mail_send_failed",
				slog.String("to", redact.Email(msg.To)),
				slog.String("subject", msg.Subject),
				slog.String("err", err.Error()),
			)
		}
	}()
}

// hashPassword хэширует пароль с помощью bcrypt.
// Хэширование выполняется в горутине запроса и не блокирует обработку
// других запросов.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateEmail проверяет базовый формат email и нормализует регистр.
func validateEmail(raw string) (string, error) {
	const op = "service.auth.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю: длина >= 8.
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}

// randomToken возвращает криптослучайный токен (32 байта, base64url).
func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// hashResetToken — SHA-256 от сырого reset-токена, base64url.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
