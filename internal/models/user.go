package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — закрытый набор ролей пользователя.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole валидирует строковое значение роли.
// Пустая строка трактуется как роль по умолчанию (student).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case "":
		return RoleStudent, true
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Privileged сообщает, является ли роль привилегированной
// (такие учётные записи проходят онбординг автоматически).
func (r Role) Privileged() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// User — модель пользователя в системе.
//
// PasswordHash и поля reset-челленджа никогда не сериализуются наружу;
// за форму ответа клиенту отвечает транспортный слой.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role

	// PasswordChangedAt — момент последней смены пароля.
	// Токены, выпущенные раньше этого момента, считаются протухшими.
	PasswordChangedAt time.Time

	// PasswordResetTokenHash/PasswordResetExpiresAt — единственный активный
	// reset-челлендж; сырой токен в БД не попадает, хранится только SHA-256.
	PasswordResetTokenHash string
	PasswordResetExpiresAt time.Time

	// Флаги онбординга; к аутентификации отношения не имеют.
	FormValidated   bool
	AccessValidated bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChangedPasswordAfter сообщает, менялся ли пароль после момента t.
// Используется middleware для отсечения access-токенов, выпущенных
// до ротации пароля.
func (u *User) ChangedPasswordAfter(t time.Time) bool {
	if u.PasswordChangedAt.IsZero() {
		return false
	}

	return u.PasswordChangedAt.After(t)
}

// HasActiveResetToken сообщает, есть ли у пользователя непросроченный
// reset-челлендж на момент now.
func (u *User) HasActiveResetToken(now time.Time) bool {
	return u.PasswordResetTokenHash != "" && now.Before(u.PasswordResetExpiresAt)
}
