package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"fmt"
	"suitespot/config"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const writeTimeout = 5 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// DecodeKafkaMessage is the inverse of ToKafkaMessage for a known value type.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (string, T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal Kafka message value from JSON")

		return "", value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return string(msg.Key), value, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
}

// New returns a client writing to the configured brokers, or a client that drops
// every message when Kafka is disabled.
func New(config *config.Config) Client {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Warn().Msg("Kafka disabled, stay events will not be published")

		return &disabledClient{}
	}

	transport := &kafkaGo.Transport{}
	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireOne,
			WriteTimeout:           writeTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msg.Topic = topic
		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}

type disabledClient struct{}

func (d *disabledClient) SendMessages(_ context.Context, topic string, messages ...Message) error {
	log.Debug().Str("topic", topic).Int("count", len(messages)).Msg("Kafka disabled, dropping messages.")

	return nil
}

func (d *disabledClient) Close() error {
	return nil
}
