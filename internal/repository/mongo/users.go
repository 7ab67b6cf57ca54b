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

// UserRepository persists signup records in the users collection.
type UserRepository struct {
	conn *database.Connector
	log  *zap.Logger
}

// NewUserRepository builds a user repository over the connector.
func NewUserRepository(conn *database.Connector, log *zap.Logger) *UserRepository {
	return &UserRepository{conn: conn, log: log}
}

// Create inserts the user and returns the generated object id.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (primitive.ObjectID, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	res, err := db.Collection(usersCollection).InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetByEmail looks up a user by exact email equality.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	var user domain.User
	err = db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// Count returns the total number of registered users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	count, err := db.Collection(usersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// Recent returns the latest users ordered by createdAt descending.
func (r *UserRepository) Recent(ctx context.Context, limit int) ([]domain.User, error) {
	db, release, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	defer release()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := db.Collection(usersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list recent users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0, limit)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode recent users: %w", err)
	}
	return users, nil
}
