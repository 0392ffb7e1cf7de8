package kafka_test

import (
	"carrental/config"
	"carrental/infras/kafka"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "res-1",
		Value: map[string]string{"status": "pending"},
	}

	out, err := msg.ToKafkaMessage("reservation-events")
	require.NoError(t, err)

	assert.Equal(t, "reservation-events", out.Topic)
	assert.Equal(t, []byte("res-1"), out.Key)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, "pending", decoded["status"])
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}

	producer := kafka.New(cfg)

	assert.NoError(t, producer.SendMessages(context.Background(), "topic", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, producer.Close())
}
