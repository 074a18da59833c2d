package mail

import (
	"context"
	"fmt"
	"net/http"
	"proccms/config"
	"proccms/infras/otel"
	"proccms/shared/constant"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridMailer struct {
	cfg    *config.Config
	client *sendgrid.Client
	from   *sgmail.Email
	otel   otel.Otel
}

func newSendGrid(cfg *config.Config, otl otel.Otel) Mailer {
	return &sendGridMailer{
		cfg:    cfg,
		client: sendgrid.NewSendClient(cfg.Mail.SendGrid.APIKey),
		from:   sgmail.NewEmail(cfg.Mail.FromName, cfg.Mail.From),
		otel:   otl,
	}
}

func (s *sendGridMailer) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject

	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail("", to))
	}

	for _, cc := range msg.Cc {
		p.AddCCs(sgmail.NewEmail("", cc))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.Subject = msg.Subject
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Text))

	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}

	return m
}

func (s *sendGridMailer) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".sendgrid.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !msg.HasRecipients() {
		return ErrNoRecipients
	}

	res, err := s.client.SendWithContext(ctx, s.prepare(msg))
	if err != nil {
		return fmt.Errorf("failed to send mail over sendgrid: %w", err)
	}

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid rejected mail: status %d: %s", res.StatusCode, res.Body)
	}

	return nil
}
