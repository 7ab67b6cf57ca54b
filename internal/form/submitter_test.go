package form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JeffreyEssien/cms/internal/core/domain"
)

func TestHTTPSubmitterPostsFlatRecord(t *testing.T) {
	var received domain.ProjectFormData
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/inquiries" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": domain.Inquiry{
				ProjectFormData: received,
				Status:          domain.InquiryStatusPending,
				CreatedAt:       "2025-03-14T09:26:53Z",
			},
		})
	}))
	defer server.Close()

	submitter := NewHTTPSubmitter(server.URL, server.Client())
	inquiry, err := submitter.Submit(context.Background(), domain.ProjectFormData{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if received.FullName != "Ada Lovelace" {
		t.Fatalf("record not delivered, got %+v", received)
	}
	if inquiry.Status != domain.InquiryStatusPending || inquiry.CreatedAt == "" {
		t.Fatalf("stored inquiry not returned: %+v", inquiry)
	}
}

func TestHTTPSubmitterMapsRejectionBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"Required fields are missing"}`))
	}))
	defer server.Close()

	submitter := NewHTTPSubmitter(server.URL, server.Client())
	_, err := submitter.Submit(context.Background(), domain.ProjectFormData{})

	var submitErr *SubmitError
	if !errors.As(err, &submitErr) {
		t.Fatalf("expected SubmitError, got %v", err)
	}
	if submitErr.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", submitErr.Status)
	}
	if submitErr.Message != "Required fields are missing" {
		t.Fatalf("unexpected message %q", submitErr.Message)
	}
}

func TestHTTPSubmitterPrefersMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"slow down","error":"ignored"}`))
	}))
	defer server.Close()

	submitter := NewHTTPSubmitter(server.URL, server.Client())
	_, err := submitter.Submit(context.Background(), domain.ProjectFormData{})

	var submitErr *SubmitError
	if !errors.As(err, &submitErr) {
		t.Fatalf("expected SubmitError, got %v", err)
	}
	if submitErr.Message != "slow down" {
		t.Fatalf("unexpected message %q", submitErr.Message)
	}
}
