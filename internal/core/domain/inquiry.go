package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// InquiryStatusPending is the status assigned to every new inquiry. No other
// status is ever written by this service.
const InquiryStatusPending = "pending"

// ProjectFormData is the record a prospective client builds up across the
// five steps of the inquiry form. Every field defaults to its zero value;
// multi-select fields hold duplicate-free option values in selection order.
type ProjectFormData struct {
	// Personal information
	FullName string `json:"fullName" bson:"fullName"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone" bson:"phone"`
	Company  string `json:"company" bson:"company"`

	// Project details
	ProjectTitle string   `json:"projectTitle" bson:"projectTitle"`
	Description  string   `json:"description" bson:"description"`
	ProjectType  string   `json:"projectType" bson:"projectType"`
	Platforms    []string `json:"platforms" bson:"platforms"`

	// Technical requirements
	HasExistingDomain string `json:"hasExistingDomain" bson:"hasExistingDomain"`
	DomainName        string `json:"domainName" bson:"domainName"`
	HostingPreference string `json:"hostingPreference" bson:"hostingPreference"`
	DesignPreference  string `json:"designPreference" bson:"designPreference"`

	// Features and scope
	Features          []string `json:"features" bson:"features"`
	Integrations      []string `json:"integrations" bson:"integrations"`
	ContentManagement string   `json:"contentManagement" bson:"contentManagement"`
	BudgetRange       string   `json:"budgetRange" bson:"budgetRange"`
	Timeline          string   `json:"timeline" bson:"timeline"`
	TargetAudience    string   `json:"targetAudience" bson:"targetAudience"`

	// Additional information
	BrandingAssets         string `json:"brandingAssets" bson:"brandingAssets"`
	AdditionalRequirements string `json:"additionalRequirements" bson:"additionalRequirements"`
	ReferralSource         string `json:"referralSource" bson:"referralSource"`

	// Preferred contact channels collected on the first step. The dashboard
	// renders these, so they are persisted with the rest of the record.
	WhatsappNumber string `json:"whatsappNumber,omitempty" bson:"whatsappNumber,omitempty"`
	SelectedSocial string `json:"selectedSocial,omitempty" bson:"selectedSocial,omitempty"`
	SocialHandle   string `json:"socialHandle,omitempty" bson:"socialHandle,omitempty"`
}

// Inquiry is a persisted project request. Created once per successful
// submission and never mutated or deleted afterwards.
type Inquiry struct {
	ID              *primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProjectFormData `bson:",inline"`

	Status    string `json:"status" bson:"status"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

// RequiredInquiryFields lists the fields the inquiry endpoint rejects a
// submission without, in the order they are checked.
var RequiredInquiryFields = []string{
	"fullName",
	"email",
	"phone",
	"projectTitle",
	"description",
	"projectType",
	"budgetRange",
	"timeline",
}

// FieldValue returns the scalar form field with the given wire name.
// Multi-select fields are not addressable through this accessor.
func (d ProjectFormData) FieldValue(name string) string {
	switch name {
	case "fullName":
		return d.FullName
	case "email":
		return d.Email
	case "phone":
		return d.Phone
	case "company":
		return d.Company
	case "projectTitle":
		return d.ProjectTitle
	case "description":
		return d.Description
	case "projectType":
		return d.ProjectType
	case "hasExistingDomain":
		return d.HasExistingDomain
	case "domainName":
		return d.DomainName
	case "hostingPreference":
		return d.HostingPreference
	case "designPreference":
		return d.DesignPreference
	case "contentManagement":
		return d.ContentManagement
	case "budgetRange":
		return d.BudgetRange
	case "timeline":
		return d.Timeline
	case "targetAudience":
		return d.TargetAudience
	case "brandingAssets":
		return d.BrandingAssets
	case "additionalRequirements":
		return d.AdditionalRequirements
	case "referralSource":
		return d.ReferralSource
	case "whatsappNumber":
		return d.WhatsappNumber
	case "selectedSocial":
		return d.SelectedSocial
	case "socialHandle":
		return d.SocialHandle
	}
	return ""
}
