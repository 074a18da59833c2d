package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"errors"
	"proccms/config"
	"proccms/infras/otel"

	"github.com/rs/zerolog/log"
)

const (
	DriverSMTP     = "smtp"
	DriverSendGrid = "sendgrid"
	DriverConsole  = "console"
)

var ErrNoRecipients = errors.New("message has no recipients")

// Message is a rendered email ready for delivery.
type Message struct {
	To      []string `json:"to"`
	Cc      []string `json:"cc,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

func (m Message) HasRecipients() bool {
	return len(m.To) > 0 || len(m.Cc) > 0
}

// Mailer delivers a single message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the mailer selected by MAIL_DRIVER, falling back to console.
func New(cfg *config.Config, otl otel.Otel) Mailer {
	switch cfg.Mail.Driver {
	case DriverSMTP:
		return newSMTP(cfg, otl)
	case DriverSendGrid:
		return newSendGrid(cfg, otl)
	case DriverConsole:
	default:
		log.Warn().Str("driver", cfg.Mail.Driver).Msg("Unknown mail driver, using console")
	}

	return newConsole(otl)
}
