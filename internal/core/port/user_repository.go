package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JeffreyEssien/cms/internal/core/domain"
)

// UserRepository exposes persistence behavior for signup records.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (primitive.ObjectID, error)
	// GetByEmail looks up a user by exact email equality. No normalization
	// is applied.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	// Recent returns the most recently created users, newest first.
	Recent(ctx context.Context, limit int) ([]domain.User, error)
}
