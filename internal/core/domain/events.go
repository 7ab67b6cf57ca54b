package domain

import "time"

// InquiryReceivedEvent represents the payload for cms.inquiry.received messages.
type InquiryReceivedEvent struct {
	EventID     string
	InquiryID   string
	Email       string
	Phone       string
	ProjectType string
	BudgetRange string
	Timeline    string
	ReceivedAt  time.Time
	Metadata    map[string]any
}

// UserSignedUpEvent represents the payload for cms.user.signed_up messages.
type UserSignedUpEvent struct {
	EventID      string
	UserID       string
	FullName     string
	Email        string
	ReferralCode string
	SignedUpAt   time.Time
	Metadata     map[string]any
}
