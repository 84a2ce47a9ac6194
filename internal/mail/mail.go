// mail — исходящая почта сервиса.
//
// Отправитель — внедряемая зависимость (интерфейс Mailer), а не
// процесс-глобальный транспорт: в тестах подменяется фейком.
// Отправка для auth-флоу best-effort: состояние учётной записи
// коммитится до письма, ошибка доставки логируется и не роняет запрос.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"github.com/pribylovaa/go-edu-platform/internal/config"
)

// Message — письмо в адрес одного получателя.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer отправляет письма.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type smtpMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTP создает SMTP-отправителя поверх wneessen/go-mail.
func NewSMTP(cfg config.SMTPConfig) (Mailer, error) {
	const op = "mail.NewSMTP"

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Pass),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &smtpMailer{client: client, from: cfg.From}, nil
}

// Send отправляет письмо через SMTP.
func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	const op = "mail.smtp.Send"

	mm := gomail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		mm.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
