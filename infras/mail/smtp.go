package mail

import (
	"context"
	"fmt"
	"proccms/config"
	"proccms/infras/otel"
	"proccms/shared/constant"

	goMail "github.com/wneessen/go-mail"
)

type smtpMailer struct {
	cfg  *config.Config
	otel otel.Otel
}

func newSMTP(cfg *config.Config, otl otel.Otel) Mailer {
	return &smtpMailer{cfg: cfg, otel: otl}
}

func (s *smtpMailer) build(msg Message) (*goMail.Msg, error) {
	m := goMail.NewMsg()

	if err := m.FromFormat(s.cfg.Mail.FromName, s.cfg.Mail.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}

	if len(msg.To) > 0 {
		if err := m.To(msg.To...); err != nil {
			return nil, fmt.Errorf("invalid to address: %w", err)
		}
	}

	if len(msg.Cc) > 0 {
		if err := m.Cc(msg.Cc...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(goMail.TypeTextPlain, msg.Text)

	if msg.HTML != "" {
		m.AddAlternativeString(goMail.TypeTextHTML, msg.HTML)
	}

	return m, nil
}

func (s *smtpMailer) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".smtp.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !msg.HasRecipients() {
		return ErrNoRecipients
	}

	m, err := s.build(msg)
	if err != nil {
		return err
	}

	tlsPolicy := goMail.TLSOpportunistic
	if s.cfg.Mail.SMTP.TLS {
		tlsPolicy = goMail.TLSMandatory
	}

	options := []goMail.Option{
		goMail.WithPort(s.cfg.Mail.SMTP.Port),
		goMail.WithTLSPortPolicy(tlsPolicy),
	}

	if s.cfg.Mail.SMTP.Username != "" {
		options = append(options,
			goMail.WithSMTPAuth(goMail.SMTPAuthPlain),
			goMail.WithUsername(s.cfg.Mail.SMTP.Username),
			goMail.WithPassword(s.cfg.Mail.SMTP.Password),
		)
	}

	client, err := goMail.NewClient(s.cfg.Mail.SMTP.Host, options...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail over smtp: %w", err)
	}

	return nil
}
