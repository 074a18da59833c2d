package kafka_test

import (
	"proccms/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Template string   `json:"template"`
	To       []string `json:"to"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "repair-1", Value: envelope{Template: "newRequest", To: []string{"project@campus.edu"}}}

	encoded, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("repair-1"), encoded.Key)
	assert.JSONEq(t, `{"template":"newRequest","to":["project@campus.edu"]}`, string(encoded.Value))

	decoded, err := kafka.DecodeKafkaMessage[envelope](encoded)
	require.NoError(t, err)
	assert.Equal(t, "newRequest", decoded.Template)
}

func TestDecodeKafkaMessageInvalid(t *testing.T) {
	_, err := kafka.DecodeKafkaMessage[envelope](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)

	_, err = (&kafka.Message{Value: make(chan int)}).ToKafkaMessage()
	assert.Error(t, err)
}
