package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a signup record. Created on signup, read on login, never updated
// or deleted here. Email acts as the unique key, enforced by an existence
// check at signup rather than a database constraint, with no normalization:
// case-differing emails are distinct accounts.
type User struct {
	ID           *primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FullName     string              `json:"fullName" bson:"fullName"`
	Email        string              `json:"email" bson:"email"`
	Password     string              `json:"password" bson:"password"`
	ReferralCode string              `json:"referralCode,omitempty" bson:"referralCode,omitempty"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt"`
}

// UserProfile is the sanitized view returned by the login endpoint. The
// stored password is never echoed back.
type UserProfile struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	ReferralCode string `json:"referralCode,omitempty"`
}

// Profile strips the user down to its login view.
func (u User) Profile() UserProfile {
	return UserProfile{
		FullName:     u.FullName,
		Email:        u.Email,
		ReferralCode: u.ReferralCode,
	}
}
