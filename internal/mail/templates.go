package mail

import (
	"fmt"
	"net/url"

	"github.com/pribylovaa/go-edu-platform/internal/models"
)

// PasswordReset — письмо со ссылкой на сброс пароля.
// resetURL содержит сырой токен; в хранилище попадает только его хэш.
func PasswordReset(to, frontendURL, token string) Message {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		frontendURL, token, url.QueryEscape(to))

	return Message{
		To:      to,
		Subject: "Password Reset Instructions",
		Text:    fmt.Sprintf("Reset your password using this link (valid for a short time): %s", resetURL),
		HTML: fmt.Sprintf(
			`<p>Reset your password using this link (valid for a short time):</p><p><a href="%s">%s</a></p>`,
			resetURL, resetURL),
	}
}

// Invite — письмо приглашённому пользователю со сгенерированным паролем.
func Invite(to, name, password, frontendURL string) Message {
	return Message{
		To:      to,
		Subject: "Your account is ready",
		Text: fmt.Sprintf(
			"Hello %s,\n\nAn account has been created for you.\nTemporary password: %s\n\nSign in at %s and change it right away.",
			name, password, frontendURL),
		HTML: fmt.Sprintf(
			`<p>Hello %s,</p><p>An account has been created for you.</p><p>Temporary password: <b>%s</b></p><p>Sign in at <a href="%s">%s</a> and change it right away.</p>`,
			name, password, frontendURL, frontendURL),
	}
}

// CandidateAdminNotice — уведомление администратору о новой заявке.
func CandidateAdminNotice(adminEmail string, c *models.Candidate) Message {
	text := fmt.Sprintf(
		"New application received.\n\nName: %s\nEmail: %s\nPhone: %s\nSpecialty: %s\n\n%s",
		c.FullName(), c.Email, c.Phone, c.Specialty, c.Interest)

	return Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("New application - %s", c.FullName()),
		Text:    text,
		HTML: fmt.Sprintf(
			`<h2>New application</h2><p><b>Name:</b> %s</p><p><b>Email:</b> %s</p><p><b>Phone:</b> %s</p><p><b>Specialty:</b> %s</p><p>%s</p>`,
			c.FullName(), c.Email, c.Phone, c.Specialty, c.Interest),
	}
}

// CandidateConfirmation — подтверждение кандидату о приёме заявки.
func CandidateConfirmation(c *models.Candidate) Message {
	text := fmt.Sprintf(
		"Hello %s,\n\nWe have received your application. Our team will review it and respond within 3-5 business days.\n\nThank you for your interest!",
		c.FirstName)

	return Message{
		To:      c.Email,
		Subject: "Application received",
		Text:    text,
		HTML: fmt.Sprintf(
			`<p>Hello %s,</p><p>We have received your application. Our team will review it and respond within 3-5 business days.</p><p>Thank you for your interest!</p>`,
			c.FirstName),
	}
}
