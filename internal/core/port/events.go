package port

import (
	"context"

	"github.com/JeffreyEssien/cms/internal/core/domain"
)

// EventPublisher publishes domain events to the message bus. Publishing is
// fire-and-forget; a failed publish never affects the request outcome.
type EventPublisher interface {
	PublishInquiryReceived(ctx context.Context, event domain.InquiryReceivedEvent) error
	PublishUserSignedUp(ctx context.Context, event domain.UserSignedUpEvent) error
}
