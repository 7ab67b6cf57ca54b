package form

import "github.com/JeffreyEssien/cms/internal/core/domain"

const lastStep = 5

// Violation describes one empty required field found by a step validator.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateStep checks the step's required fields against the accumulated
// record. Multi-select groups are never required, even where the form marks
// them with an asterisk; that mismatch is part of the documented behavior.
func validateStep(step int, data domain.ProjectFormData) []Violation {
	var violations []Violation
	require := func(field string) {
		if data.FieldValue(field) == "" {
			violations = append(violations, Violation{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	switch step {
	case 1:
		require("fullName")
		require("email")
		require("phone")
	case 2:
		require("projectTitle")
		require("description")
		require("projectType")
	case 3:
		require("hasExistingDomain")
		require("hostingPreference")
		require("designPreference")
		if data.HasExistingDomain == "yes" && data.DomainName == "" {
			violations = append(violations, Violation{
				Field:   "domainName",
				Message: "domainName is required when an existing domain is declared",
			})
		}
	case 4:
		require("contentManagement")
		require("budgetRange")
		require("timeline")
		require("targetAudience")
	case 5:
		require("referralSource")
	}

	return violations
}
