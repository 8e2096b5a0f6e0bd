package events

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// MockKafkaWriter implements KafkaWriter for testing
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestProducer(logger *zap.Logger, writer KafkaWriter) *Producer {
	return &Producer{
		writer:    writer,
		events:    make(chan Event, 1000),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}
}

func TestProducer_Produce(t *testing.T) {
	t.Run("successful produce", func(t *testing.T) {
		logger := zaptest.NewLogger(t)
		producer := newTestProducer(logger, new(MockKafkaWriter))
		request := &models.ProjectRequest{ID: uuid.New()}

		producer.Produce(RequestSent, request)

		assert.Equal(t, 1, len(producer.events))
	})

	t.Run("dropped event when queue full", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		logger := zap.New(core)
		producer := newTestProducer(logger, new(MockKafkaWriter))
		producer.events = make(chan Event, 1) // Small buffer for test
		request := &models.ProjectRequest{ID: uuid.New()}

		// Fill the channel
		producer.Produce(RequestSent, request)
		producer.Produce(RequestAccepted, request) // This should be dropped

		assert.Equal(t, 1, recorded.FilterMessage("Kafka producer queue full, dropping event").Len())
	})
}

func TestProducer_SendEvent(t *testing.T) {
	request := &models.ProjectRequest{ID: uuid.New(), Status: models.StatusSent}

	t.Run("successful send", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)
		producer := newTestProducer(zaptest.NewLogger(t), mockWriter)

		event := Event{Type: RequestSent, Request: request}
		producer.sendEvent(context.Background(), event)

		value, err := jsonMarshal(event)
		assert.NoError(t, err)
		mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, []kafka.Message{
			{
				Key:   []byte(request.ID.String()),
				Value: value,
			},
		})
	})

	t.Run("serialization error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer := newTestProducer(zap.New(core), new(MockKafkaWriter))

		oldMarshal := jsonMarshal
		jsonMarshal = func(_ interface{}) ([]byte, error) {
			return nil, errors.New("mock marshal error")
		}
		defer func() { jsonMarshal = oldMarshal }()

		producer.sendEvent(context.Background(), Event{Type: RequestSent, Request: request})

		assert.Equal(t, 1, recorded.FilterMessage("Failed to serialize event").Len())
	})

	t.Run("write error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		mockWriter := new(MockKafkaWriter)
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))
		producer := newTestProducer(zap.New(core), mockWriter)

		producer.sendEvent(context.Background(), Event{Type: RequestDeclined, Request: request})

		assert.Equal(t, 1, recorded.FilterMessage("Failed to produce event").Len())
	})
}

func TestProducer_Close(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("Close").Return(nil)
	producer := newTestProducer(zaptest.NewLogger(t), mockWriter)
	go producer.eventLoop()

	producer.Close()

	mockWriter.AssertCalled(t, "Close")
}
