package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/leadhubhq/leadhub-backend/internal/auth"
	"github.com/leadhubhq/leadhub-backend/internal/leads"
	"github.com/leadhubhq/leadhub-backend/internal/users"
	pkgAuth "github.com/leadhubhq/leadhub-backend/pkg/auth"
	"github.com/leadhubhq/leadhub-backend/pkg/config"
)

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.TokenResponse, error) {
	return &auth.TokenResponse{Token: "token", User: &users.UserDTO{ID: uuid.New(), Email: req.Email}}, nil
}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, error) {
	return &auth.TokenResponse{Token: "token", User: &users.UserDTO{ID: uuid.New(), Email: req.Email}}, nil
}

func (stubAuthService) Me(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID}, nil
}

type stubLeadsService struct{}

func (stubLeadsService) List(ctx context.Context, ownerID uuid.UUID, query url.Values) (*leads.LeadPage, error) {
	return &leads.LeadPage{Leads: []leads.LeadDTO{}, Page: 1, Limit: 20}, nil
}

func (stubLeadsService) Create(ctx context.Context, ownerID uuid.UUID, req leads.CreateLeadRequest) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: uuid.New()}, nil
}

func (stubLeadsService) Get(ctx context.Context, ownerID, id uuid.UUID) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id}, nil
}

func (stubLeadsService) Update(ctx context.Context, ownerID, id uuid.UUID, req leads.UpdateLeadRequest) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id}, nil
}

func (stubLeadsService) Delete(ctx context.Context, ownerID, id uuid.UUID) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id}, nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func testRouterConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", Port: "0"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "leadhub", ExpirationMinutes: 30},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewRouter(RouterParams{
		Config:      testRouterConfig(),
		Logger:      nil,
		DBPinger:    stubPinger{},
		AuthService: stubAuthService{},
		LeadService: stubLeadsService{},
		Registerer:  reg,
		Gatherer:    reg,
	})
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterAuthEndpointsArePublic(t *testing.T) {
	router := newTestRouter(t)

	body := `{"email":"person@example.com","password":"password123","first_name":"A","last_name":"B"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("logout: expected 200 got %d", resp.Code)
	}
}

func TestRouterLeadsRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRouterLeadsWithBearerToken(t *testing.T) {
	router := newTestRouter(t)
	cfg := testRouterConfig()

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "person@example.com",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/leads?status=new", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200 got %d", resp.Code)
	}
}
