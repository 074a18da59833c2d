package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/config"
	"proccms/infras/kafka"
	"proccms/infras/mail"
	"proccms/infras/otel"
	"proccms/internal/domains/notification/model"
	"proccms/internal/domains/notification/render"
	"proccms/shared/constant"
	"slices"
	"strings"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/rs/zerolog/log"
)

const (
	DriverDirect = "direct"
	DriverKafka  = "kafka"
)

// Notifier sends notification emails without blocking the caller on delivery.
type Notifier interface {
	// Send renders email and hands it to the configured driver. Failures are logged only.
	Send(ctx context.Context, email model.Email)
	// Deliver sends an already rendered message through the mailer.
	Deliver(ctx context.Context, msg mail.Message) error
	// Consume delivers queued messages from the notification topic until ctx is done.
	Consume(ctx context.Context) error
}

type serviceImpl struct {
	cfg      *config.Config
	renderer *render.Renderer
	mailer   mail.Mailer
	kafka    kafka.Client
	otel     otel.Otel
}

func New(cfg *config.Config, renderer *render.Renderer, mailer mail.Mailer, kafka kafka.Client, otel otel.Otel) Notifier {
	return &serviceImpl{
		cfg:      cfg,
		renderer: renderer,
		mailer:   mailer,
		kafka:    kafka,
		otel:     otel,
	}
}

func (s *serviceImpl) Send(ctx context.Context, email model.Email) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Send")
	defer scope.End()

	email.To = recipients(email.To)
	email.Cc = recipients(email.Cc)

	msg, err := s.renderer.Render(email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("template", email.Template).Msg("failed to render notification")

		return
	}

	if !msg.HasRecipients() {
		log.Warn().Str("template", email.Template).Msg("notification has no recipients, skipping")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if s.cfg.Notification.Driver == DriverKafka {
			s.enqueue(c, email.Template, msg)

			return
		}

		if err := s.Deliver(c, msg); err != nil {
			log.Error().Err(err).Str("template", email.Template).Msg("failed to send notification")
		}
	}()
}

func (s *serviceImpl) enqueue(ctx context.Context, key string, msg mail.Message) {
	err := s.kafka.SendMessages(ctx, s.cfg.Notification.Topic, kafka.Message{Key: key, Value: msg})
	if err != nil {
		log.Error().Err(err).Str("template", key).Msg("failed to queue notification")
	}
}

func (s *serviceImpl) Deliver(ctx context.Context, msg mail.Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Deliver")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	log.Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("notification delivered")

	return nil
}

func (s *serviceImpl) Consume(ctx context.Context) error {
	log.Info().Str("topic", s.cfg.Notification.Topic).Msg("consuming notifications")

	return s.kafka.Consume(ctx, s.cfg.Kafka.ConsumerGroup, s.cfg.Notification.Topic, s.handle) //nolint:wrapcheck
}

func (s *serviceImpl) handle(ctx context.Context, message kafkaGo.Message) error {
	msg, err := kafka.DecodeKafkaMessage[mail.Message](message)
	if err != nil {
		// A message that cannot be decoded will never succeed; drop it.
		log.Error().Err(err).Int64("offset", message.Offset).Msg("dropping malformed notification")

		return nil
	}

	return s.Deliver(ctx, msg)
}

func recipients(addresses []string) []string {
	res := make([]string, 0, len(addresses))

	for _, address := range addresses {
		address = strings.TrimSpace(address)
		if address == "" || slices.Contains(res, address) {
			continue
		}

		res = append(res, address)
	}

	return res
}
