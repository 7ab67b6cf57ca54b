package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JeffreyEssien/cms/internal/core/domain"
)

// InquiryRepository exposes persistence behavior for project inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry domain.Inquiry) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Inquiry, error)
	// List returns every inquiry ordered by creation time descending.
	List(ctx context.Context) ([]domain.Inquiry, error)
	Count(ctx context.Context) (int64, error)
	// RecentByInsertion returns the most recently inserted inquiries,
	// ordered by the insertion-order surrogate rather than createdAt.
	RecentByInsertion(ctx context.Context, limit int) ([]domain.Inquiry, error)
}
