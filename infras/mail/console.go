package mail

import (
	"context"
	"proccms/infras/otel"
	"proccms/shared/constant"

	"github.com/rs/zerolog/log"
)

// consoleMailer logs messages instead of sending them.
type consoleMailer struct {
	otel otel.Otel
}

func newConsole(otl otel.Otel) Mailer {
	return &consoleMailer{otel: otl}
}

func (c *consoleMailer) Send(ctx context.Context, msg Message) error {
	_, scope := c.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".console.Send")
	defer scope.End()

	if !msg.HasRecipients() {
		scope.TraceError(ErrNoRecipients)

		return ErrNoRecipients
	}

	log.Info().
		Strs("to", msg.To).
		Strs("cc", msg.Cc).
		Str("subject", msg.Subject).
		Msg(msg.Text)

	return nil
}
