package kafka

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/core/port"
	"github.com/JeffreyEssien/cms/internal/infra/logger"
)

// StubPublisher logs events instead of sending them to Kafka. Used when no
// brokers are configured.
type StubPublisher struct {
	logger *zap.Logger
}

// NewStubPublisher constructs a development-friendly event publisher.
func NewStubPublisher(log *zap.Logger) *StubPublisher {
	return &StubPublisher{logger: log}
}

func (p *StubPublisher) logEvent(eventType string, at time.Time, payload any) {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	p.logger.Info("stub event published",
		zap.String("event_type", eventType),
		zap.Time("timestamp", at.UTC()),
		zap.Any("payload", payload),
	)
}

// PublishInquiryReceived logs cms.inquiry.received events.
func (p *StubPublisher) PublishInquiryReceived(_ context.Context, event domain.InquiryReceivedEvent) error {
	payload := map[string]any{
		"inquiry_id":   event.InquiryID,
		"email":        logger.MaskEmail(event.Email),
		"phone":        logger.MaskPhone(event.Phone),
		"project_type": event.ProjectType,
		"budget_range": event.BudgetRange,
		"timeline":     event.Timeline,
		"received_at":  event.ReceivedAt,
	}
	p.logEvent("cms.inquiry.received", event.ReceivedAt, payload)
	return nil
}

// PublishUserSignedUp logs cms.user.signed_up events.
func (p *StubPublisher) PublishUserSignedUp(_ context.Context, event domain.UserSignedUpEvent) error {
	payload := map[string]any{
		"user_id":       event.UserID,
		"full_name":     event.FullName,
		"email":         logger.MaskEmail(event.Email),
		"referral_code": event.ReferralCode,
		"signed_up_at":  event.SignedUpAt,
	}
	p.logEvent("cms.user.signed_up", event.SignedUpAt, payload)
	return nil
}

var _ port.EventPublisher = (*StubPublisher)(nil)
