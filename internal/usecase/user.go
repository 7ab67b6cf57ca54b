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

var (
	// ErrMissingFields indicates the signup payload omitted a required field.
	ErrMissingFields = errors.New("missing required fields")
	// ErrEmailTaken indicates an account already exists for the email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrMissingCredentials indicates the login request omitted email or
	// password.
	ErrMissingCredentials = errors.New("missing email or password")
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SignupInput carries the signup payload.
type SignupInput struct {
	FullName     string
	Email        string
	Password     string
	ReferralCode string
}

// UserService creates accounts and validates credentials.
type UserService struct {
	users       port.UserRepository
	credentials port.CredentialStrategy
	events      port.EventPublisher
	log         *zap.Logger
	now         func() time.Time
}

// NewUserService builds the user service. The event publisher is optional.
func NewUserService(users port.UserRepository, credentials port.CredentialStrategy, events port.EventPublisher, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{
		users:       users,
		credentials: credentials,
		events:      events,
		log:         log,
		now:         time.Now,
	}
}

// SignUp creates a new account and returns its id. Uniqueness is enforced by
// an existence check on the exact email, not a storage constraint.
func (s *UserService) SignUp(ctx context.Context, input SignupInput) (primitive.ObjectID, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return primitive.NilObjectID, ErrMissingFields
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return primitive.NilObjectID, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return primitive.NilObjectID, fmt.Errorf("check existing user: %w", err)
	}

	sealed, err := s.credentials.Seal(input.Password)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("seal password: %w", err)
	}

	user := domain.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Password:     sealed,
		ReferralCode: input.ReferralCode,
		CreatedAt:    s.now().UTC(),
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("store user: %w", err)
	}

	s.publishSignedUp(ctx, id, user)
	return id, nil
}

// Login validates credentials and returns the sanitized profile. Unknown
// emails and wrong passwords yield the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	ok, err := s.credentials.Match(password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("match credentials: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) publishSignedUp(ctx context.Context, id primitive.ObjectID, user domain.User) {
	if s.events == nil {
		return
	}

	event := domain.UserSignedUpEvent{
		EventID:      uuid.NewString(),
		UserID:       id.Hex(),
		FullName:     user.FullName,
		Email:        user.Email,
		ReferralCode: user.ReferralCode,
		SignedUpAt:   s.now().UTC(),
	}
	if err := s.events.PublishUserSignedUp(ctx, event); err != nil {
		s.log.Warn("publish signup event failed", zap.Error(err))
	}
}
