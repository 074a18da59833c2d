package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"proccms/config"
	kafkaInfra "proccms/infras/kafka"
	kafkaMocks "proccms/infras/kafka/mocks"
	"proccms/infras/mail"
	mailMocks "proccms/infras/mail/mocks"
	"proccms/infras/otel/mocks"
	"proccms/internal/domains/notification/model"
	"proccms/internal/domains/notification/render"
	"proccms/internal/domains/notification/service"
)

const waitTimeout = time.Second

func newService(t *testing.T, driver string) (service.Notifier, *mailMocks.MockMailer, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Notification.Driver = driver
	cfg.Notification.Topic = "proccms.notifications"
	cfg.Kafka.ConsumerGroup = "proccms-notifier"

	mailer := mailMocks.NewMockMailer(ctrl)
	client := kafkaMocks.NewMockClient(ctrl)

	return service.New(cfg, render.MustNew(), mailer, client, mocks.NewOtel()), mailer, client
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("notification was not dispatched")
	}
}

func TestNotifier_SendDirect(t *testing.T) {
	svc, mailer, _ := newService(t, service.DriverDirect)
	done := make(chan struct{})

	mailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg mail.Message) error {
			defer close(done)

			assert.Equal(t, []string{"project@campus.edu"}, msg.To)
			assert.Equal(t, "📋 New Repair Request Created", msg.Subject)

			return errors.New("smtp down")
		})

	svc.Send(context.Background(), model.Email{
		Template: model.TemplateNewRequest,
		To:       []string{" project@campus.edu ", "", "project@campus.edu"},
	})

	wait(t, done)
}

func TestNotifier_SendKafka(t *testing.T) {
	svc, _, client := newService(t, service.DriverKafka)
	done := make(chan struct{})

	client.EXPECT().
		SendMessages(gomock.Any(), "proccms.notifications", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafkaInfra.Message) error {
			defer close(done)

			assert.Len(t, messages, 1)
			assert.Equal(t, model.TemplateTestMail, messages[0].Key)

			msg, ok := messages[0].Value.(mail.Message)
			assert.True(t, ok)
			assert.Equal(t, "Test Email from PROCCMS", msg.Subject)

			return nil
		})

	svc.Send(context.Background(), model.Email{Template: model.TemplateTestMail, To: []string{"ops@campus.edu"}})

	wait(t, done)
}

func TestNotifier_SendSkipsWithoutRecipients(t *testing.T) {
	svc, _, _ := newService(t, service.DriverDirect)

	// Any mailer call would fail the test through the controller.
	svc.Send(context.Background(), model.Email{Template: model.TemplateNewRequest, To: []string{""}})
	svc.Send(context.Background(), model.Email{Template: "unknown", To: []string{"a@campus.edu"}})

	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Deliver(t *testing.T) {
	svc, mailer, _ := newService(t, service.DriverDirect)
	msg := mail.Message{To: []string{"a@campus.edu"}, Subject: "hi"}

	mailer.EXPECT().Send(gomock.Any(), msg).Return(nil)
	assert.NoError(t, svc.Deliver(context.Background(), msg))

	mailer.EXPECT().Send(gomock.Any(), msg).Return(errors.New("boom"))
	assert.Error(t, svc.Deliver(context.Background(), msg))
}

func TestNotifier_Consume(t *testing.T) {
	svc, mailer, client := newService(t, service.DriverKafka)

	client.EXPECT().
		Consume(gomock.Any(), "proccms-notifier", "proccms.notifications", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, handler kafkaInfra.Handler) error {
			mailer.EXPECT().Send(gomock.Any(), mail.Message{To: []string{"a@campus.edu"}, Subject: "queued"}).Return(nil)

			assert.NoError(t, handler(ctx, kafka.Message{Value: []byte(`{"to":["a@campus.edu"],"subject":"queued","text":"","html":""}`)}))
			assert.NoError(t, handler(ctx, kafka.Message{Value: []byte(`not json`)}))

			return nil
		})

	assert.NoError(t, svc.Consume(context.Background()))
}
