package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/infra/telemetry"
	"github.com/JeffreyEssien/cms/internal/usecase"
)

// UserHandler exposes signup and credential validation.
type UserHandler struct {
	users   *usecase.UserService
	metrics *telemetry.Provider
	log     *zap.Logger
}

func NewUserHandler(users *usecase.UserService, metrics *telemetry.Provider, log *zap.Logger) *UserHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserHandler{users: users, metrics: metrics, log: log}
}

// RegisterRoutes binds the user endpoints.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/users", h.Signup)
	r.GET("/users", h.Login)
}

// Signup creates an account from the posted payload.
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("decode signup payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, newError("Failed to create user"))
		return
	}

	id, err := h.users.SignUp(c.Request.Context(), usecase.SignupInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, newError("Missing required fields"))
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, newError("User already exists"))
		default:
			h.log.Error("create user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, newError("Failed to create user"))
		}
		return
	}

	if h.metrics != nil {
		h.metrics.SignupAccepted()
	}
	c.JSON(http.StatusCreated, SignupResponse{Success: true, ID: id.Hex()})
}

// Login validates the email and password passed as query parameters. Unknown
// emails and wrong passwords produce the same response.
func (h *UserHandler) Login(c *gin.Context) {
	profile, err := h.users.Login(c.Request.Context(), c.Query("email"), c.Query("password"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, newError("Missing email or password"))
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, newError("Invalid credentials"))
		default:
			h.log.Error("validate user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, newError("Failed to validate user"))
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Success: true, User: *profile})
}
