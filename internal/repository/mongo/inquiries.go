package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/infra/database"
	"github.com/JeffreyEssien/cms/internal/repository"
)

// InquiryRepository persists project inquiries in the inquiries collection.
type InquiryRepository struct {
	conn *database.Connector
	log  *zap.Logger
}

// NewInquiryRepository builds an inquiry repository over the connector.
func NewInquiryRepository(conn *database.Connector, log *zap.Logger) *InquiryRepository {
	return &InquiryRepository{conn: conn, log: log}
}

// Create inserts the inquiry and returns the generated object id.
func (r *InquiryRepository) Create(ctx context.Context, inquiry domain.Inquiry) (primitive.ObjectID, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	res, err := db.Collection(inquiriesCollection).InsertOne(ctx, inquiry)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert inquiry: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetByID fetches a single inquiry by object id.
func (r *InquiryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Inquiry, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	var inquiry domain.Inquiry
	err = db.Collection(inquiriesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return &inquiry, nil
}

// List returns all inquiries ordered by createdAt descending.
func (r *InquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.Collection(inquiriesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	inquiries := make([]domain.Inquiry, 0)
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("decode inquiries: %w", err)
	}
	return inquiries, nil
}

// Count returns the total number of stored inquiries.
func (r *InquiryRepository) Count(ctx context.Context) (int64, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	count, err := db.Collection(inquiriesCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return count, nil
}

// RecentByInsertion returns the latest inquiries sorted by _id descending.
// The dashboard intentionally keeps insertion order here rather than the
// createdAt ordering used by List.
func (r *InquiryRepository) RecentByInsertion(ctx context.Context, limit int) ([]domain.Inquiry, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := db.Collection(inquiriesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list recent inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	inquiries := make([]domain.Inquiry, 0, limit)
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("decode recent inquiries: %w", err)
	}
	return inquiries, nil
}
