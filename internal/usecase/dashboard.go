package usecase

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/core/port"
)

const recentLimit = 5

// StatCard is one tile of the dashboard stats row. Value is always a string;
// the live user count is formatted, the remaining tiles are placeholders.
type StatCard struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// ActivityEntry is one row of the dashboard activity feed.
type ActivityEntry struct {
	Action string `json:"action"`
	Page   string `json:"page"`
	Time   string `json:"time"`
}

// CollectionSummary pairs a total with the most recent records.
type CollectionSummary[T any] struct {
	Total  int64 `json:"total"`
	Recent []T   `json:"recent"`
}

// DashboardSummary is the aggregate the admin dashboard renders.
type DashboardSummary struct {
	Stats          []StatCard                        `json:"stats"`
	RecentActivity []ActivityEntry                   `json:"recentActivity"`
	Users          CollectionSummary[domain.User]    `json:"users"`
	Inquiries      CollectionSummary[domain.Inquiry] `json:"inquiries"`
}

// DashboardService aggregates counts and recent records for the admin view.
type DashboardService struct {
	users     port.UserRepository
	inquiries port.InquiryRepository
	log       *zap.Logger
}

// NewDashboardService builds the dashboard aggregator.
func NewDashboardService(users port.UserRepository, inquiries port.InquiryRepository, log *zap.Logger) *DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardService{users: users, inquiries: inquiries, log: log}
}

// Summary collects totals, the five most recent users by creation time, and
// the five most recently inserted inquiries. Only the user count and the
// second activity row are live; the remaining tiles are placeholders kept
// until the page-analytics sources exist.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	inquiryCount, err := s.inquiries.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count inquiries: %w", err)
	}

	recentUsers, err := s.users.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}

	recentInquiries, err := s.inquiries.RecentByInsertion(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent inquiries: %w", err)
	}

	latestUserEmail := "No recent users"
	if len(recentUsers) > 0 {
		latestUserEmail = recentUsers[0].Email
	}

	return &DashboardSummary{
		Stats: []StatCard{
			{Name: "Total Pages", Value: "12,345", Change: "+12%"},
			{Name: "Total Users", Value: strconv.FormatInt(userCount, 10), Change: "+3%"},
			{Name: "Page Views", Value: "324,891", Change: "+18%"},
			{Name: "Bounce Rate", Value: "2.1%", Change: "-5%"},
		},
		RecentActivity: []ActivityEntry{
			{Action: "New page created", Page: "About Us", Time: "2 minutes ago"},
			{Action: "User registered", Page: latestUserEmail, Time: "5 minutes ago"},
			{Action: "Page updated", Page: "Home", Time: "1 hour ago"},
			{Action: "Comment posted", Page: "Blog Post #1", Time: "2 hours ago"},
		},
		Users:     CollectionSummary[domain.User]{Total: userCount, Recent: recentUsers},
		Inquiries: CollectionSummary[domain.Inquiry]{Total: inquiryCount, Recent: recentInquiries},
	}, nil
}
