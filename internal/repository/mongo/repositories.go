package mongo

import (
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/infra/database"
)

const (
	inquiriesCollection = "inquiries"
	usersCollection     = "users"
)

// Repositories bundles the Mongo-backed adapters behind one constructor.
type Repositories struct {
	Inquiries *InquiryRepository
	Users     *UserRepository
}

// NewRepositories builds the repository set on top of a shared connector.
func NewRepositories(conn *database.Connector, log *zap.Logger) *Repositories {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repositories{
		Inquiries: NewInquiryRepository(conn, log),
		Users:     NewUserRepository(conn, log),
	}
}
