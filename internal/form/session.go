// Package form implements the multi-step project inquiry session: the
// authoritative form record, step progression with per-step validation,
// checkbox toggling, the contact nudges on the first step, and the submit
// lifecycle with its deferred redirect.
package form

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/core/domain"
)

const defaultRedirectDelay = 2 * time.Second

// ErrSubmitInFlight indicates a submission is already outstanding; repeated
// submit calls are dropped until it completes.
var ErrSubmitInFlight = errors.New("form: submit already in flight")

// ErrNotFinalStep indicates Submit was called before the session reached the
// last step.
var ErrNotFinalStep = errors.New("form: not on the final step")

// Option configures a Session.
type Option func(*Session)

// WithRedirect sets the callback fired after a successful submission.
func WithRedirect(fn func()) Option {
	return func(s *Session) { s.redirect = fn }
}

// WithRedirectDelay overrides the delay before the redirect callback fires.
func WithRedirectDelay(d time.Duration) Option {
	return func(s *Session) { s.redirectDelay = d }
}

// WithLogger sets the session logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// Session owns one pass through the five-step inquiry form. It is not safe
// for concurrent use; all mutation happens from a single caller, mirroring
// the single event loop the form runs under.
type Session struct {
	currentStep int
	data        domain.ProjectFormData
	errMsg      string
	message     string
	inFlight    bool

	// Contact nudges on the personal-info step.
	whatsappPromptVisible  bool
	whatsappPromptAnswered bool
	whatsappFieldVisible   bool
	socialConfirmVisible   bool

	submitter     Submitter
	redirect      func()
	redirectDelay time.Duration
	log           *zap.Logger
}

// NewSession builds a session starting at step 1 with an empty record.
func NewSession(submitter Submitter, opts ...Option) *Session {
	s := &Session{
		currentStep:   1,
		submitter:     submitter,
		redirectDelay: defaultRedirectDelay,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step returns the current step, 1 through 5.
func (s *Session) Step() int { return s.currentStep }

// Data returns a copy of the accumulated form record. The multi-select
// slices are cloned so later toggles do not show through the returned value.
func (s *Session) Data() domain.ProjectFormData {
	data := s.data
	data.Platforms = slices.Clone(data.Platforms)
	data.Features = slices.Clone(data.Features)
	data.Integrations = slices.Clone(data.Integrations)
	return data
}

// Err returns the last submission error message, empty when none.
func (s *Session) Err() string { return s.errMsg }

// Message returns the success message set after submission.
func (s *Session) Message() string { return s.message }

// WhatsappPromptVisible reports whether the WhatsApp yes/no prompt is shown.
func (s *Session) WhatsappPromptVisible() bool { return s.whatsappPromptVisible }

// WhatsappFieldVisible reports whether the separate WhatsApp number field is
// shown.
func (s *Session) WhatsappFieldVisible() bool { return s.whatsappFieldVisible }

// SocialConfirmVisible reports whether the social-handle confirmation dialog
// is shown.
func (s *Session) SocialConfirmVisible() bool { return s.socialConfirmVisible }

// SetField assigns a scalar form field by its wire name. Typing into the
// phone field reveals the WhatsApp prompt once per session; picking a social
// platform resets the handle; typing a handle raises the confirmation dialog.
func (s *Session) SetField(name, value string) {
	switch name {
	case "phone":
		s.data.Phone = value
		if value != "" && !s.whatsappPromptAnswered {
			s.whatsappPromptVisible = true
		}
	case "selectedSocial":
		s.data.SelectedSocial = value
		s.data.SocialHandle = ""
		s.socialConfirmVisible = false
	case "socialHandle":
		s.data.SocialHandle = value
		if value != "" {
			s.socialConfirmVisible = true
		}
	default:
		s.assign(name, value)
	}
}

// AnswerWhatsappPrompt dismisses the prompt for the rest of the session.
// Answering no reveals the dedicated WhatsApp number field.
func (s *Session) AnswerWhatsappPrompt(isWhatsapp bool) {
	s.whatsappPromptAnswered = true
	s.whatsappPromptVisible = false
	if !isWhatsapp {
		s.whatsappFieldVisible = true
	}
}

// DismissSocialConfirm closes the social-handle confirmation dialog.
func (s *Session) DismissSocialConfirm() {
	s.socialConfirmVisible = false
}

// Toggle flips a value in one of the multi-select fields. Checking appends
// only when absent, so a rapid double toggle cannot introduce duplicates;
// unchecking removes every occurrence.
func (s *Session) Toggle(field, value string, checked bool) {
	target := s.multiSelect(field)
	if target == nil {
		return
	}

	if checked {
		for _, existing := range *target {
			if existing == value {
				return
			}
		}
		*target = append(*target, value)
		return
	}

	kept := (*target)[:0]
	for _, existing := range *target {
		if existing != value {
			kept = append(kept, existing)
		}
	}
	*target = kept
}

// Advance validates the current step and moves forward when it is complete.
// The returned violations are empty on success.
func (s *Session) Advance() []Violation {
	violations := validateStep(s.currentStep, s.data)
	if len(violations) > 0 {
		return violations
	}
	if s.currentStep < lastStep {
		s.currentStep++
	}
	return nil
}

// Retreat moves one step back, clamped at step 1.
func (s *Session) Retreat() {
	if s.currentStep > 1 {
		s.currentStep--
	}
}

// Submit validates the final step and posts the accumulated record. While a
// submission is outstanding, further calls return ErrSubmitInFlight. On
// success the record resets to defaults and the redirect callback is
// scheduled after the configured delay; the timer is one-shot and fires
// regardless of what the session does afterwards.
func (s *Session) Submit(ctx context.Context) ([]Violation, error) {
	if s.currentStep != lastStep {
		return nil, ErrNotFinalStep
	}
	if violations := validateStep(s.currentStep, s.data); len(violations) > 0 {
		return violations, nil
	}
	if s.inFlight {
		return nil, ErrSubmitInFlight
	}

	s.inFlight = true
	defer func() { s.inFlight = false }()

	_, err := s.submitter.Submit(ctx, s.data)
	if err != nil {
		s.errMsg = submitFailureMessage(err)
		s.log.Warn("inquiry submission failed", zap.Error(err))
		return nil, err
	}

	s.errMsg = ""
	s.message = "Your inquiry has been submitted successfully!"
	s.data = domain.ProjectFormData{}

	if s.redirect != nil {
		time.AfterFunc(s.redirectDelay, s.redirect)
	}
	return nil, nil
}

func (s *Session) multiSelect(field string) *[]string {
	switch field {
	case "platforms":
		return &s.data.Platforms
	case "features":
		return &s.data.Features
	case "integrations":
		return &s.data.Integrations
	}
	return nil
}

func (s *Session) assign(name, value string) {
	switch name {
	case "fullName":
		s.data.FullName = value
	case "email":
		s.data.Email = value
	case "company":
		s.data.Company = value
	case "projectTitle":
		s.data.ProjectTitle = value
	case "description":
		s.data.Description = value
	case "projectType":
		s.data.ProjectType = value
	case "hasExistingDomain":
		s.data.HasExistingDomain = value
	case "domainName":
		s.data.DomainName = value
	case "hostingPreference":
		s.data.HostingPreference = value
	case "designPreference":
		s.data.DesignPreference = value
	case "contentManagement":
		s.data.ContentManagement = value
	case "budgetRange":
		s.data.BudgetRange = value
	case "timeline":
		s.data.Timeline = value
	case "targetAudience":
		s.data.TargetAudience = value
	case "brandingAssets":
		s.data.BrandingAssets = value
	case "additionalRequirements":
		s.data.AdditionalRequirements = value
	case "referralSource":
		s.data.ReferralSource = value
	case "whatsappNumber":
		s.data.WhatsappNumber = value
	}
}

// submitFailureMessage maps a submission error to the text shown to the
// visitor. Server-provided messages win over the generic fallbacks.
func submitFailureMessage(err error) string {
	var submitErr *SubmitError
	if errors.As(err, &submitErr) {
		if submitErr.Message != "" {
			return submitErr.Message
		}
		return "Failed to submit inquiry"
	}
	return "An error occurred while submitting your inquiry"
}
