package domain

// Option is a selectable catalog entry rendered by the inquiry form.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProjectTypes enumerates the single-select project type options.
var ProjectTypes = []Option{
	{Value: "website", Label: "Business Website"},
	{Value: "ecommerce", Label: "E-commerce Store"},
	{Value: "webapp", Label: "Web Application"},
	{Value: "mobile", Label: "Mobile App"},
	{Value: "desktop", Label: "Desktop Application"},
	{Value: "api", Label: "API Development"},
	{Value: "other", Label: "Other"},
}

// PlatformOptions enumerates the multi-select target platforms.
var PlatformOptions = []Option{
	{Value: "web", Label: "Web (Browser)"},
	{Value: "ios", Label: "iOS (iPhone/iPad)"},
	{Value: "android", Label: "Android"},
	{Value: "windows", Label: "Windows"},
	{Value: "macos", Label: "macOS"},
	{Value: "linux", Label: "Linux"},
}

// FeatureOptions enumerates the multi-select feature checkboxes.
var FeatureOptions = []Option{
	{Value: "user-auth", Label: "User Authentication"},
	{Value: "payment", Label: "Payment Processing"},
	{Value: "chat", Label: "Live Chat/Messaging"},
	{Value: "notifications", Label: "Push Notifications"},
	{Value: "analytics", Label: "Analytics & Reporting"},
	{Value: "social-login", Label: "Social Media Login"},
	{Value: "file-upload", Label: "File Upload/Storage"},
	{Value: "booking", Label: "Booking/Scheduling"},
	{Value: "inventory", Label: "Inventory Management"},
	{Value: "multi-language", Label: "Multi-language Support"},
	{Value: "api-integration", Label: "Third-party Integrations"},
	{Value: "admin-panel", Label: "Admin Dashboard"},
}

// IntegrationOptions enumerates the multi-select third-party integrations.
var IntegrationOptions = []Option{
	{Value: "google-analytics", Label: "Google Analytics"},
	{Value: "mailchimp", Label: "Mailchimp"},
	{Value: "stripe", Label: "Stripe Payments"},
	{Value: "paypal", Label: "PayPal"},
	{Value: "social-media", Label: "Social Media APIs"},
	{Value: "crm", Label: "CRM Systems"},
	{Value: "inventory", Label: "Inventory Systems"},
	{Value: "shipping", Label: "Shipping Services"},
	{Value: "calendar", Label: "Calendar Systems"},
	{Value: "email", Label: "Email Services"},
}

// HostingOptions enumerates the hosting preference select.
var HostingOptions = []Option{
	{Value: "shared", Label: "Shared Hosting"},
	{Value: "vps", Label: "VPS Hosting"},
	{Value: "dedicated", Label: "Dedicated Server"},
	{Value: "cloud", Label: "Cloud Hosting"},
	{Value: "not-sure", Label: "Not Sure"},
}

// DesignOptions enumerates the design preference select.
var DesignOptions = []Option{
	{Value: "modern", Label: "Modern & Minimal"},
	{Value: "traditional", Label: "Traditional"},
	{Value: "creative", Label: "Creative & Bold"},
	{Value: "corporate", Label: "Corporate & Professional"},
	{Value: "not-sure", Label: "Not Sure"},
}

// ContentManagementOptions enumerates the CMS preference select.
var ContentManagementOptions = []Option{
	{Value: "custom", Label: "Custom CMS"},
	{Value: "wordpress", Label: "WordPress"},
	{Value: "shopify", Label: "Shopify"},
	{Value: "wix", Label: "Wix"},
	{Value: "not-sure", Label: "Not Sure"},
}

// BudgetRanges enumerates the budget select.
var BudgetRanges = []Option{
	{Value: "under-5k", Label: "Under $5,000"},
	{Value: "5k-10k", Label: "$5,000 - $10,000"},
	{Value: "10k-25k", Label: "$10,000 - $25,000"},
	{Value: "25k-50k", Label: "$25,000 - $50,000"},
	{Value: "50k-plus", Label: "$50,000+"},
}

// TimelineOptions enumerates the timeline select.
var TimelineOptions = []Option{
	{Value: "asap", Label: "As Soon as Possible"},
	{Value: "1-3-months", Label: "1-3 Months"},
	{Value: "3-6-months", Label: "3-6 Months"},
	{Value: "6-plus-months", Label: "6+ Months"},
	{Value: "flexible", Label: "Flexible"},
}

// ReferralSources enumerates the referral source select.
var ReferralSources = []Option{
	{Value: "search", Label: "Search Engine"},
	{Value: "social", Label: "Social Media"},
	{Value: "referral", Label: "Referral"},
	{Value: "advertisement", Label: "Advertisement"},
	{Value: "other", Label: "Other"},
}

// SocialPlatforms lists the contact channels offered on the personal
// information step. Stored verbatim, label and value are the same.
var SocialPlatforms = []string{
	"Instagram",
	"Twitter",
	"LinkedIn",
	"Facebook",
	"WhatsApp",
	"Other",
}
