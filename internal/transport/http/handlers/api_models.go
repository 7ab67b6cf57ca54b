package handlers

import (
	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/usecase"
)

// ErrorResponse is the failure payload shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// newError builds a failure body. Success is always false.
func newError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// InquiryResponse wraps a single stored inquiry.
type InquiryResponse struct {
	Success bool           `json:"success"`
	Data    domain.Inquiry `json:"data"`
}

// InquiryListResponse wraps the full inquiry listing.
type InquiryListResponse struct {
	Success bool             `json:"success"`
	Data    []domain.Inquiry `json:"data"`
}

// SignupRequest is the signup payload.
type SignupRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ReferralCode string `json:"referralCode"`
}

// SignupResponse returns the id of the created account.
type SignupResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// LoginResponse returns the sanitized profile of the matched account.
type LoginResponse struct {
	Success bool               `json:"success"`
	User    domain.UserProfile `json:"user"`
}

// DashboardResponse wraps the admin dashboard aggregate.
type DashboardResponse struct {
	Success bool                     `json:"success"`
	Data    usecase.DashboardSummary `json:"data"`
}
