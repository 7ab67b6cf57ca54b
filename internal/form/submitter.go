package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JeffreyEssien/cms/internal/core/domain"
)

// Submitter delivers a completed form record to the inquiry endpoint.
type Submitter interface {
	Submit(ctx context.Context, data domain.ProjectFormData) (*domain.Inquiry, error)
}

// SubmitError is a non-2xx response from the inquiry endpoint.
type SubmitError struct {
	Status  int
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("inquiry submission rejected: status %d: %s", e.Status, e.Message)
}

// HTTPSubmitter posts the record as flat JSON to /api/inquiries.
type HTTPSubmitter struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSubmitter builds a submitter against the given base URL. A nil
// client falls back to http.DefaultClient; no timeout is enforced beyond
// the transport defaults.
func NewHTTPSubmitter(baseURL string, client *http.Client) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSubmitter{baseURL: baseURL, client: client}
}

// Submit posts the record and returns the stored inquiry on success.
func (s *HTTPSubmitter) Submit(ctx context.Context, data domain.ProjectFormData) (*domain.Inquiry, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode inquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/inquiries", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post inquiry: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&failure)

		message := failure.Message
		if message == "" {
			message = failure.Error
		}
		return nil, &SubmitError{Status: res.StatusCode, Message: message}
	}

	var success struct {
		Success bool           `json:"success"`
		Data    domain.Inquiry `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&success); err != nil {
		return nil, fmt.Errorf("decode inquiry response: %w", err)
	}
	return &success.Data, nil
}
