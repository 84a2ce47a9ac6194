// service содержит бизнес-логику платформы: регистрацию/аутентификацию
// пользователей, жизненный цикл токенов, reset-флоу, CRUD курсов и
// приём заявок кандидатов. Работа с хранилищем идёт через интерфейсы
// из пакета storage, почта — через внедряемый mail.Mailer.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются и далее маппятся HTTP-слоем (см. пакет httperr).
package service

import (
	"errors"
	"time"

	"github.com/pribylovaa/go-edu-platform/internal/cache"
	"github.com/pribylovaa/go-edu-platform/internal/config"
	"github.com/pribylovaa/go-edu-platform/internal/mail"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

var (
	// ErrMissingFields — обязательное поле отсутствует. HTTP 400.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidEmail — e-mail имеет некорректный формат. HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidRole — роль вне закрытого набора student/teacher/admin. HTTP 400.
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmptyPassword — пароль пустой. HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrWeakPassword — пароль короче минимальной длины. HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmailTaken — e-mail уже занят. HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь
	// не найден; формулировка намеренно не различает эти случаи. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated — Bearer-токен отсутствует или заголовок
	// не соответствует схеме. HTTP 401.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidToken — токен некорректен по формату/подписи. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — refresh-токен изъят реестром (hardened-режим):
	// уже использован после ротации либо отозван на logout. HTTP 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrResetTokenInvalid — reset-токен не найден, не совпал или просрочен;
	// наружу случаи не различаются. HTTP 400.
	ErrResetTokenInvalid = errors.New("reset token invalid or expired")

	// ErrStalePassword — access-токен выпущен до последней смены пароля. HTTP 401.
	ErrStalePassword = errors.New("password changed after token was issued")

	// ErrUserGone — пользователь из валидного токена больше не существует. HTTP 401.
	ErrUserGone = errors.New("user no longer exists")

	// ErrForbidden — роль пользователя не входит в разрешённый набор. HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound — сущность не найдена. HTTP 404.
	ErrNotFound = errors.New("not found")
)

// Service описывает бизнес-логику платформы.
type Service struct {
	storage  storage.Storage
	cfg      config.Config
	mailer   mail.Mailer
	register cache.RefreshRegister // может быть nil: refresh-токены чисто stateless

	// now — источник времени для выпуска токенов и таймстемпов;
	// тесты подменяют его, чтобы не зависеть от настенных часов.
	now func() time.Time
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config, mailer mail.Mailer) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
		mailer:  mailer,
		now:     time.Now,
	}
}

// SetRefreshRegister устанавливает реестр активных refresh-токенов
// (опционально; см. пакет cache).
func (s *Service) SetRefreshRegister(r cache.RefreshRegister) {
	s.register = r
}
