package form

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/transport/http/handlers"
	"github.com/JeffreyEssien/cms/internal/usecase"
)

type captureInquiryRepo struct {
	stored []domain.Inquiry
}

func (r *captureInquiryRepo) Create(_ context.Context, inquiry domain.Inquiry) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	inquiry.ID = &id
	r.stored = append(r.stored, inquiry)
	return id, nil
}

func (r *captureInquiryRepo) GetByID(context.Context, primitive.ObjectID) (*domain.Inquiry, error) {
	return nil, nil
}

func (r *captureInquiryRepo) List(context.Context) ([]domain.Inquiry, error) {
	return r.stored, nil
}

func (r *captureInquiryRepo) Count(context.Context) (int64, error) {
	return int64(len(r.stored)), nil
}

func (r *captureInquiryRepo) RecentByInsertion(context.Context, int) ([]domain.Inquiry, error) {
	return r.stored, nil
}

// Walks a session through all five steps against a live inquiry endpoint and
// checks that exactly one record lands in storage with the submitted fields
// plus the generated status and timestamp.
func TestWalkthroughCreatesExactlyOneRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &captureInquiryRepo{}
	svc := usecase.NewInquiryService(repo, nil, nil, zaptest.NewLogger(t))

	engine := gin.New()
	handlers.NewInquiryHandler(svc, nil, zaptest.NewLogger(t)).RegisterRoutes(engine.Group("/api"))

	server := httptest.NewServer(engine)
	defer server.Close()

	s := NewSession(NewHTTPSubmitter(server.URL, server.Client()))

	s.SetField("fullName", "Jane Doe")
	s.SetField("email", "jane@x.com")
	s.SetField("phone", "+15550000")
	if v := s.Advance(); len(v) > 0 {
		t.Fatalf("step 1 blocked: %+v", v)
	}

	s.SetField("projectTitle", "Site")
	s.SetField("description", "A marketing site")
	s.SetField("projectType", "website")
	s.Toggle("platforms", "web", true)
	if v := s.Advance(); len(v) > 0 {
		t.Fatalf("step 2 blocked: %+v", v)
	}

	s.SetField("hasExistingDomain", "no")
	s.SetField("hostingPreference", "need-hosting")
	s.SetField("designPreference", "need-design")
	if v := s.Advance(); len(v) > 0 {
		t.Fatalf("step 3 blocked: %+v", v)
	}

	s.SetField("contentManagement", "full-cms")
	s.SetField("budgetRange", "5k-10k")
	s.SetField("timeline", "asap")
	s.SetField("targetAudience", "Visitors")
	if v := s.Advance(); len(v) > 0 {
		t.Fatalf("step 4 blocked: %+v", v)
	}

	s.SetField("referralSource", "search")

	violations, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("unexpected violations %+v", violations)
	}

	if len(repo.stored) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(repo.stored))
	}
	got := repo.stored[0]
	if got.FullName != "Jane Doe" || got.Email != "jane@x.com" || got.ProjectType != "website" {
		t.Fatalf("stored record does not match submission: %+v", got)
	}
	if len(got.Platforms) != 1 || got.Platforms[0] != "web" {
		t.Fatalf("platforms not delivered: %v", got.Platforms)
	}
	if got.Status != domain.InquiryStatusPending {
		t.Fatalf("expected pending status, got %q", got.Status)
	}
	if got.CreatedAt == "" {
		t.Fatal("createdAt not generated")
	}
}
