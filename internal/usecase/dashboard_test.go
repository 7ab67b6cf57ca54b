package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/JeffreyEssien/cms/internal/core/domain"
)

func TestSummaryAggregatesCountsAndRecents(t *testing.T) {
	newest := domain.User{FullName: "Newest", Email: "newest@example.com", CreatedAt: time.Now()}
	users := &mockUserRepo{
		countFn: func(context.Context) (int64, error) { return 42, nil },
		recentFn: func(_ context.Context, limit int) ([]domain.User, error) {
			if limit != 5 {
				t.Fatalf("expected limit 5, got %d", limit)
			}
			return []domain.User{newest, {Email: "older@example.com"}}, nil
		},
	}
	inquiries := &mockInquiryRepo{
		countFn: func(context.Context) (int64, error) { return 7, nil },
		recentFn: func(_ context.Context, limit int) ([]domain.Inquiry, error) {
			if limit != 5 {
				t.Fatalf("expected limit 5, got %d", limit)
			}
			return []domain.Inquiry{{Status: domain.InquiryStatusPending}}, nil
		},
	}
	svc := NewDashboardService(users, inquiries, zaptest.NewLogger(t))

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.Users.Total != 42 || summary.Inquiries.Total != 7 {
		t.Fatalf("unexpected totals %d / %d", summary.Users.Total, summary.Inquiries.Total)
	}
	if len(summary.Stats) != 4 {
		t.Fatalf("expected 4 stat tiles, got %d", len(summary.Stats))
	}
	if summary.Stats[1].Name != "Total Users" || summary.Stats[1].Value != "42" {
		t.Fatalf("user tile not live: %+v", summary.Stats[1])
	}
	if summary.Stats[0].Value != "12,345" {
		t.Fatalf("placeholder tile changed: %+v", summary.Stats[0])
	}
	if summary.RecentActivity[1].Page != "newest@example.com" {
		t.Fatalf("activity feed missing newest user email: %+v", summary.RecentActivity[1])
	}
	if len(summary.Users.Recent) != 2 || len(summary.Inquiries.Recent) != 1 {
		t.Fatalf("recent lists not passed through")
	}
}

func TestSummaryFallsBackWhenNoUsersExist(t *testing.T) {
	users := &mockUserRepo{
		countFn:  func(context.Context) (int64, error) { return 0, nil },
		recentFn: func(context.Context, int) ([]domain.User, error) { return nil, nil },
	}
	inquiries := &mockInquiryRepo{
		countFn:  func(context.Context) (int64, error) { return 0, nil },
		recentFn: func(context.Context, int) ([]domain.Inquiry, error) { return nil, nil },
	}
	svc := NewDashboardService(users, inquiries, zaptest.NewLogger(t))

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.RecentActivity[1].Page != "No recent users" {
		t.Fatalf("expected fallback activity row, got %q", summary.RecentActivity[1].Page)
	}
}

func TestSummarySurfacesRepositoryFailure(t *testing.T) {
	users := &mockUserRepo{
		countFn: func(context.Context) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}
	svc := NewDashboardService(users, &mockInquiryRepo{}, zaptest.NewLogger(t))

	if _, err := svc.Summary(context.Background()); err == nil {
		t.Fatal("expected repository failure to surface")
	}
}
