package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/core/port"
	"github.com/JeffreyEssien/cms/internal/infra/config"
	"github.com/JeffreyEssien/cms/internal/infra/logger"
)

const schemaVersion = "1.0"

// EventPublisher implements port.EventPublisher using Kafka.
type EventPublisher struct {
	producer *Producer
	logger   *zap.Logger
	appCfg   config.AppSettings
}

// NewEventPublisher constructs a Kafka-backed event publisher.
func NewEventPublisher(producer *Producer, appCfg config.AppSettings, log *zap.Logger) *EventPublisher {
	return &EventPublisher{producer: producer, appCfg: appCfg, logger: log}
}

type envelopeMetadata map[string]string

type eventEnvelope struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	Timestamp time.Time        `json:"timestamp"`
	Version   string           `json:"version"`
	Payload   any              `json:"payload"`
	Metadata  envelopeMetadata `json:"metadata,omitempty"`
}

func (p *EventPublisher) publish(ctx context.Context, eventID, eventType string, ts time.Time, payload any) error {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	id := eventID
	if id == "" {
		id = uuid.NewString()
	}

	metadata := envelopeMetadata{
		"service":     p.appCfg.Name,
		"environment": p.appCfg.Env,
	}

	envelope := eventEnvelope{
		EventID:   id,
		EventType: eventType,
		Timestamp: ts.UTC(),
		Version:   schemaVersion,
		Payload:   payload,
		Metadata:  metadata,
	}

	bytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.producer.TopicName(eventType),
		Value: sarama.ByteEncoder(bytes),
	}

	select {
	case p.producer.Producer().Input() <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PublishInquiryReceived publishes cms.inquiry.received events.
func (p *EventPublisher) PublishInquiryReceived(ctx context.Context, event domain.InquiryReceivedEvent) error {
	payload := struct {
		InquiryID   string         `json:"inquiry_id"`
		Email       string         `json:"email"`
		Phone       string         `json:"phone,omitempty"`
		ProjectType string         `json:"project_type"`
		BudgetRange string         `json:"budget_range"`
		Timeline    string         `json:"timeline"`
		ReceivedAt  time.Time      `json:"received_at"`
		Metadata    map[string]any `json:"metadata,omitempty"`
	}{
		InquiryID:   event.InquiryID,
		Email:       logger.MaskEmail(event.Email),
		Phone:       logger.MaskPhone(event.Phone),
		ProjectType: event.ProjectType,
		BudgetRange: event.BudgetRange,
		Timeline:    event.Timeline,
		ReceivedAt:  event.ReceivedAt.UTC(),
		Metadata:    event.Metadata,
	}

	return p.publish(ctx, event.EventID, "cms.inquiry.received", event.ReceivedAt, payload)
}

// PublishUserSignedUp publishes cms.user.signed_up events.
func (p *EventPublisher) PublishUserSignedUp(ctx context.Context, event domain.UserSignedUpEvent) error {
	payload := struct {
		UserID       string         `json:"user_id"`
		FullName     string         `json:"full_name"`
		Email        string         `json:"email"`
		ReferralCode string         `json:"referral_code,omitempty"`
		SignedUpAt   time.Time      `json:"signed_up_at"`
		Metadata     map[string]any `json:"metadata,omitempty"`
	}{
		UserID:       event.UserID,
		FullName:     event.FullName,
		Email:        logger.MaskEmail(event.Email),
		ReferralCode: event.ReferralCode,
		SignedUpAt:   event.SignedUpAt.UTC(),
		Metadata:     event.Metadata,
	}

	return p.publish(ctx, event.EventID, "cms.user.signed_up", event.SignedUpAt, payload)
}

var _ port.EventPublisher = (*EventPublisher)(nil)
