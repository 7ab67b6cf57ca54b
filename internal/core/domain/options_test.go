package domain

import "testing"

func TestOptionCatalogsHaveUniqueNonEmptyValues(t *testing.T) {
	catalogs := map[string][]Option{
		"project types":      ProjectTypes,
		"platforms":          PlatformOptions,
		"features":           FeatureOptions,
		"integrations":       IntegrationOptions,
		"hosting":            HostingOptions,
		"design":             DesignOptions,
		"content management": ContentManagementOptions,
		"budget ranges":      BudgetRanges,
		"timelines":          TimelineOptions,
		"referral sources":   ReferralSources,
	}

	for name, options := range catalogs {
		seen := make(map[string]struct{}, len(options))
		for _, opt := range options {
			if opt.Value == "" || opt.Label == "" {
				t.Errorf("%s: option %+v has an empty value or label", name, opt)
			}
			if _, dup := seen[opt.Value]; dup {
				t.Errorf("%s: duplicate value %q", name, opt.Value)
			}
			seen[opt.Value] = struct{}{}
		}
	}
}

func TestInquiryFieldValueCoversRequiredFields(t *testing.T) {
	data := ProjectFormData{
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "+15550000",
		ProjectTitle: "Site",
		Description:  "A marketing site",
		ProjectType:  "webapp",
		BudgetRange:  "5k-10k",
		Timeline:     "asap",
	}

	for _, field := range RequiredInquiryFields {
		if data.FieldValue(field) == "" {
			t.Errorf("FieldValue(%q) returned empty for a populated record", field)
		}
	}
	if got := data.FieldValue("noSuchField"); got != "" {
		t.Errorf("FieldValue for an unknown field = %q, want empty", got)
	}
}
