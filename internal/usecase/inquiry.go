package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/core/port"
	"github.com/JeffreyEssien/cms/internal/repository"
)

// ErrMissingRequiredFields indicates the submission omitted at least one of
// the required inquiry fields.
var ErrMissingRequiredFields = errors.New("required fields are missing")

// InquiryService persists project inquiries and lists them for the admin
// surface.
type InquiryService struct {
	inquiries   port.InquiryRepository
	idempotency port.IdempotencyStore
	events      port.EventPublisher
	log         *zap.Logger
	now         func() time.Time
}

// NewInquiryService builds the inquiry service. The idempotency store and
// event publisher are optional; nil disables the corresponding behavior.
func NewInquiryService(inquiries port.InquiryRepository, idempotency port.IdempotencyStore, events port.EventPublisher, log *zap.Logger) *InquiryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &InquiryService{
		inquiries:   inquiries,
		idempotency: idempotency,
		events:      events,
		log:         log,
		now:         time.Now,
	}
}

// Submit validates the required fields, stores the inquiry, and returns the
// persisted record. When idempotencyKey is non-empty and was already used,
// the originally stored inquiry is returned instead of inserting a new one.
func (s *InquiryService) Submit(ctx context.Context, data domain.ProjectFormData, idempotencyKey string) (*domain.Inquiry, error) {
	for _, field := range domain.RequiredInquiryFields {
		if data.FieldValue(field) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredFields, field)
		}
	}

	if existing := s.replay(ctx, idempotencyKey); existing != nil {
		return existing, nil
	}

	inquiry := domain.Inquiry{
		ProjectFormData: data,
		Status:          domain.InquiryStatusPending,
		CreatedAt:       s.now().UTC().Format(time.RFC3339),
	}

	id, err := s.inquiries.Create(ctx, inquiry)
	if err != nil {
		return nil, fmt.Errorf("store inquiry: %w", err)
	}
	inquiry.ID = &id

	s.remember(ctx, idempotencyKey, id)
	s.publishReceived(ctx, inquiry)

	return &inquiry, nil
}

// List returns every stored inquiry, newest first by creation time.
func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, err := s.inquiries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return inquiries, nil
}

// replay returns the previously stored inquiry for a seen idempotency key.
// Lookup failures degrade to a fresh insert rather than failing the request.
func (s *InquiryService) replay(ctx context.Context, key string) *domain.Inquiry {
	if key == "" || s.idempotency == nil {
		return nil
	}

	stored, err := s.idempotency.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.log.Warn("idempotency lookup failed", zap.Error(err))
		return nil
	}

	id, err := primitive.ObjectIDFromHex(stored)
	if err != nil {
		s.log.Warn("malformed idempotency record", zap.String("value", stored))
		return nil
	}

	inquiry, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		s.log.Warn("idempotent replay fetch failed", zap.Error(err))
		return nil
	}

	s.log.Info("replayed idempotent submission", zap.String("inquiry_id", stored))
	return inquiry
}

func (s *InquiryService) remember(ctx context.Context, key string, id primitive.ObjectID) {
	if key == "" || s.idempotency == nil {
		return
	}
	if err := s.idempotency.Put(ctx, key, id.Hex()); err != nil {
		s.log.Warn("record idempotency key failed", zap.Error(err))
	}
}

func (s *InquiryService) publishReceived(ctx context.Context, inquiry domain.Inquiry) {
	if s.events == nil {
		return
	}

	event := domain.InquiryReceivedEvent{
		EventID:     uuid.NewString(),
		InquiryID:   inquiry.ID.Hex(),
		Email:       inquiry.Email,
		Phone:       inquiry.Phone,
		ProjectType: inquiry.ProjectType,
		BudgetRange: inquiry.BudgetRange,
		Timeline:    inquiry.Timeline,
		ReceivedAt:  s.now().UTC(),
	}
	if err := s.events.PublishInquiryReceived(ctx, event); err != nil {
		s.log.Warn("publish inquiry event failed", zap.Error(err))
	}
}
