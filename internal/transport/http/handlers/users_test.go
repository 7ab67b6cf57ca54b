package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"

	"github.com/JeffreyEssien/cms/internal/core/domain"
	"github.com/JeffreyEssien/cms/internal/infra/security"
	"github.com/JeffreyEssien/cms/internal/repository"
	"github.com/JeffreyEssien/cms/internal/usecase"
)

func newUserRouter(t *testing.T, repo *stubUserRepo) *gin.Engine {
	t.Helper()

	svc := usecase.NewUserService(repo, security.PlaintextCredentials{}, nil, zaptest.NewLogger(t))

	r := gin.New()
	NewUserHandler(svc, nil, zaptest.NewLogger(t)).RegisterRoutes(r.Group("/api"))
	return r
}

func TestSignupCreatesAccount(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &stubUserRepo{
		getByEmailFn: func(context.Context, string) (*domain.User, error) {
			return nil, repository.ErrNotFound
		},
		createFn: func(_ context.Context, user domain.User) (primitive.ObjectID, error) {
			if user.Password != "secret" {
				t.Fatalf("plaintext scheme must store the raw password, got %q", user.Password)
			}
			return id, nil
		},
	}
	r := newUserRouter(t, repo)

	w := performRequest(r, http.MethodPost, "/api/users",
		`{"fullName":"Ada Lovelace","email":"ada@example.com","password":"secret"}`, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var res SignupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Success || res.ID != id.Hex() {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestSignupRejectsMissingFields(t *testing.T) {
	r := newUserRouter(t, &stubUserRepo{})

	w := performRequest(r, http.MethodPost, "/api/users",
		`{"email":"ada@example.com"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"success":false,"error":"Missing required fields"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestSignupRejectsExistingEmail(t *testing.T) {
	repo := &stubUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email}, nil
		},
	}
	r := newUserRouter(t, repo)

	w := performRequest(r, http.MethodPost, "/api/users",
		`{"fullName":"Ada Lovelace","email":"ada@example.com","password":"secret"}`, nil)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"success":false,"error":"User already exists"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestLoginRequiresBothParams(t *testing.T) {
	r := newUserRouter(t, &stubUserRepo{})

	w := performRequest(r, http.MethodGet, "/api/users?email=ada@example.com", "", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"success":false,"error":"Missing email or password"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestLoginUniform401(t *testing.T) {
	repo := &stubUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email == "known@example.com" {
				return &domain.User{Email: email, Password: "right"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	r := newUserRouter(t, repo)

	unknown := performRequest(r, http.MethodGet, "/api/users?email=unknown@example.com&password=x", "", nil)
	wrongPw := performRequest(r, http.MethodGet, "/api/users?email=known@example.com&password=wrong", "", nil)

	for _, w := range []int{unknown.Code, wrongPw.Code} {
		if w != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w)
		}
	}
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Fatal("unknown email and wrong password must be indistinguishable")
	}
	if got := unknown.Body.String(); got != `{"success":false,"error":"Invalid credentials"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestLoginReturnsProfileWithoutPassword(t *testing.T) {
	repo := &stubUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{
				FullName:     "Ada Lovelace",
				Email:        email,
				Password:     "secret",
				ReferralCode: "FRIEND10",
			}, nil
		},
	}
	r := newUserRouter(t, repo)

	w := performRequest(r, http.MethodGet, "/api/users?email=ada@example.com&password=secret", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if strings.Contains(body, "secret") || strings.Contains(body, "password") {
		t.Fatalf("password leaked into login response: %s", body)
	}

	var res LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.User.FullName != "Ada Lovelace" || res.User.ReferralCode != "FRIEND10" {
		t.Fatalf("unexpected profile %+v", res.User)
	}
}
