package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"intake/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

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

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	transport *kafkaGo.Transport
	brokers   []string

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

// New returns a producer for the configured brokers, or a client that drops
// every message when Kafka is disabled.
func New(config *config.Config) Client {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, events will not be published")

		return disabledClient{}
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
		transport: transport,
		brokers:   config.Kafka.Brokers,
		writers:   map[string]*kafkaGo.Writer{},
	}
}

func (k *kafkaClientImpl) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	if writer, ok := k.writers[topic]; ok {
		return writer
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
	}
	k.writers[topic] = writer

	return writer
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = k.writer(topic).WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

// Close flushes and closes every topic writer.
func (k *kafkaClientImpl) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var errs []error

	for topic, writer := range k.writers {
		if err := writer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close writer for %s: %w", topic, err))
		}
	}

	k.writers = map[string]*kafkaGo.Writer{}

	return errors.Join(errs...)
}

type disabledClient struct{}

func (disabledClient) SendMessages(_ context.Context, topic string, messages ...Message) error {
	log.Debug().Str("topic", topic).Int("count", len(messages)).Msg("Kafka disabled, dropping messages.")

	return nil
}

func (disabledClient) Close() error {
	return nil
}
