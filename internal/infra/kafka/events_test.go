package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap/zaptest"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/infra/config"
)

type fakeAsyncProducer struct {
	input  chan *sarama.ProducerMessage
	errors chan *sarama.ProducerError
}

func newFakeAsyncProducer() *fakeAsyncProducer {
	return &fakeAsyncProducer{
		input:  make(chan *sarama.ProducerMessage, 1),
		errors: make(chan *sarama.ProducerError, 1),
	}
}

func (f *fakeAsyncProducer) AsyncClose() {}

func (f *fakeAsyncProducer) Close() error { return nil }

func (f *fakeAsyncProducer) Input() chan<- *sarama.ProducerMessage { return f.input }

func (f *fakeAsyncProducer) Successes() <-chan *sarama.ProducerMessage { return nil }

func (f *fakeAsyncProducer) Errors() <-chan *sarama.ProducerError { return f.errors }

func (f *fakeAsyncProducer) IsTransactional() bool { return false }

func (f *fakeAsyncProducer) BeginTxn() error { return nil }

func (f *fakeAsyncProducer) CommitTxn() error { return nil }

func (f *fakeAsyncProducer) AbortTxn() error { return nil }

func (f *fakeAsyncProducer) AddOffsetsToTxn(map[string][]*sarama.PartitionOffsetMetadata, string) error {
	return nil
}

func (f *fakeAsyncProducer) AddMessageToTxn(*sarama.ConsumerMessage, string, *string) error {
	return nil
}

func (f *fakeAsyncProducer) TxnStatus() sarama.ProducerTxnStatusFlag {
	return sarama.ProducerTxnStatusFlag(0)
}

func TestPublishInquiryReceived(t *testing.T) {
	asyncProducer := newFakeAsyncProducer()

	producer := &Producer{
		producer: asyncProducer,
		logger:   zaptest.NewLogger(t),
		cfg: config.KafkaSettings{
			TopicPrefix: "cms",
		},
		errChan: make(chan error, 1),
		done:    make(chan struct{}),
	}

	publisher := NewEventPublisher(producer, config.AppSettings{Name: "cms-api", Env: "test"}, zaptest.NewLogger(t))

	received := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := publisher.PublishInquiryReceived(context.Background(), domain.InquiryReceivedEvent{
		EventID:     "evt-1",
		InquiryID:   "abc123",
		Email:       "jane.doe@example.com",
		Phone:       "+12345678901",
		ProjectType: "website",
		BudgetRange: "5k-10k",
		Timeline:    "asap",
		ReceivedAt:  received,
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-asyncProducer.input:
		if msg.Topic != "cms.inquiry.received" {
			t.Fatalf("unexpected topic %q", msg.Topic)
		}

		raw, err := msg.Value.Encode()
		if err != nil {
			t.Fatalf("encode message: %v", err)
		}

		var envelope struct {
			EventID   string         `json:"event_id"`
			EventType string         `json:"event_type"`
			Version   string         `json:"version"`
			Payload   map[string]any `json:"payload"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			t.Fatalf("unmarshal envelope: %v", err)
		}

		if envelope.EventID != "evt-1" {
			t.Fatalf("expected event id evt-1, got %q", envelope.EventID)
		}
		if envelope.EventType != "cms.inquiry.received" {
			t.Fatalf("unexpected event type %q", envelope.EventType)
		}
		if got := envelope.Payload["email"]; got == "jane.doe@example.com" {
			t.Fatal("event payload must not carry the raw email")
		}
		if got := envelope.Payload["phone"]; got != "+123***8901" {
			t.Fatalf("expected masked phone, got %v", got)
		}
		if got := envelope.Payload["inquiry_id"]; got != "abc123" {
			t.Fatalf("expected inquiry id abc123, got %v", got)
		}
	default:
		t.Fatal("expected a message on the producer input channel")
	}
}

func TestTopicNameAppliesPrefixOnce(t *testing.T) {
	producer := &Producer{cfg: config.KafkaSettings{TopicPrefix: "cms"}}

	if got := producer.TopicName("user.signed_up"); got != "cms.user.signed_up" {
		t.Fatalf("expected prefixed topic, got %q", got)
	}
	if got := producer.TopicName("cms.user.signed_up"); got != "cms.user.signed_up" {
		t.Fatalf("prefix must not double, got %q", got)
	}
}
