package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/JeffreyEssien/cms/internal/infra/config"
)

// Provider holds the process-wide metric handles.
type Provider struct {
	requestCounter    *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	inquiriesAccepted prometheus.Counter
	signupsAccepted   prometheus.Counter
}

// Attach registers the application metrics and returns a provider handle.
func Attach(_ context.Context, cfg *config.AppConfig) (*Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	return &Provider{
		requestCounter: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cms",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cms",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inquiriesAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "cms",
			Name:      "inquiries_accepted_total",
			Help:      "Total number of project inquiries stored",
		}),
		signupsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "cms",
			Name:      "signups_accepted_total",
			Help:      "Total number of user accounts created",
		}),
	}, nil
}

// RequestCounter exposes the HTTP request counter.
func (p *Provider) RequestCounter() *prometheus.CounterVec {
	return p.requestCounter
}

// RequestDuration exposes the HTTP latency histogram.
func (p *Provider) RequestDuration() *prometheus.HistogramVec {
	return p.requestDuration
}

// InquiryAccepted records one stored inquiry.
func (p *Provider) InquiryAccepted() {
	if p != nil && p.inquiriesAccepted != nil {
		p.inquiriesAccepted.Inc()
	}
}

// SignupAccepted records one created account.
func (p *Provider) SignupAccepted() {
	if p != nil && p.signupsAccepted != nil {
		p.signupsAccepted.Inc()
	}
}
