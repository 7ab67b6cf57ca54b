package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/infra/telemetry"
	"github.com/JeffreyEssien/cms/internal/usecase"
)

// idempotencyKeyHeader lets clients retry a submission without creating a
// duplicate record.
const idempotencyKeyHeader = "Idempotency-Key"

// InquiryHandler exposes the inquiry submission and listing endpoints.
type InquiryHandler struct {
	inquiries *usecase.InquiryService
	metrics   *telemetry.Provider
	log       *zap.Logger
}

func NewInquiryHandler(inquiries *usecase.InquiryService, metrics *telemetry.Provider, log *zap.Logger) *InquiryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InquiryHandler{inquiries: inquiries, metrics: metrics, log: log}
}

// RegisterRoutes binds the inquiry endpoints.
func (h *InquiryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/inquiries", h.Create)
	r.GET("/inquiries", h.List)
}

// Create accepts a flat form record and stores it as a pending inquiry. A
// payload that does not parse is treated as a submission failure, not a
// validation one.
func (h *InquiryHandler) Create(c *gin.Context) {
	var data domain.ProjectFormData
	if err := c.ShouldBindJSON(&data); err != nil {
		h.log.Error("decode inquiry payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, newError("Failed to submit inquiry"))
		return
	}

	inquiry, err := h.inquiries.Submit(c.Request.Context(), data, c.GetHeader(idempotencyKeyHeader))
	if err != nil {
		if errors.Is(err, usecase.ErrMissingRequiredFields) {
			c.JSON(http.StatusBadRequest, newError("Required fields are missing"))
			return
		}
		h.log.Error("submit inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, newError("Failed to submit inquiry"))
		return
	}

	if h.metrics != nil {
		h.metrics.InquiryAccepted()
	}
	c.JSON(http.StatusCreated, InquiryResponse{Success: true, Data: *inquiry})
}

// List returns every stored inquiry, newest first.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.inquiries.List(c.Request.Context())
	if err != nil {
		h.log.Error("list inquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, newError("Failed to fetch inquiries"))
		return
	}

	c.JSON(http.StatusOK, InquiryListResponse{Success: true, Data: inquiries})
}
