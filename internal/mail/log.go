package mail

import (
	"context"
	"log/slog"

	logctx "github.com/pribylovaa/go-edu-platform/internal/pkg/log"
	"github.com/pribylovaa/go-edu-platform/internal/pkg/redact"
)

type logMailer struct{}

// NewLog создает отправителя-заглушку для локального режима:
// вместо доставки пишет факт письма в лог (тело не логируется —
// reset-ссылки содержат сырой токен).
func NewLog() Mailer {
	return logMailer{}
}

func (logMailer) Send(ctx context.Context, msg Message) error {
	logctx.From(ctx).Info("mail_skipped",
		slog.String("to", redact.Email(msg.To)),
		slog.String("subject", msg.Subject),
	)

	return nil
}
