package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

type stubJWTService struct{}

func (stubJWTService) GenerateToken(string, []string, time.Duration) (string, error) {
	return "tok", nil
}
func (stubJWTService) ParseToken(string) (*jwt.Token, error)                 { return nil, nil }
func (stubJWTService) ValidateToken(string) (*jwt.Token, error)              { return nil, nil }
func (stubJWTService) ValidateAndParse(string) (*jwt.Token, error)           { return nil, nil }
func (stubJWTService) RefreshToken(string) (string, error)                   { return "", nil }
func (stubJWTService) RefreshTokenExtend(string, time.Duration) (string, error) {
	return "", nil
}
func (stubJWTService) RevokeToken(string) error         { return nil }
func (stubJWTService) IsTokenRevoked(string) bool       { return false }
func (stubJWTService) RevokeAllUserTokens(string) error { return nil }
func (stubJWTService) Close()                           {}

type stubModule struct {
	registered bool
}

func (m *stubModule) RegisterRoutes(api *gin.RouterGroup) {
	m.registered = true
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRegisterRoutes_Validation(t *testing.T) {
	mod := &stubModule{}

	tests := []struct {
		name string
		r    *gin.Engine
		deps *RouteDeps
	}{
		{"nil router", nil, &RouteDeps{Modules: []Module{mod}, JWTService: stubJWTService{}}},
		{"nil deps", newTestEngine(), nil},
		{"no modules", newTestEngine(), &RouteDeps{JWTService: stubJWTService{}}},
		{"nil jwt service", newTestEngine(), &RouteDeps{Modules: []Module{mod}}},
		{"nil module entry", newTestEngine(), &RouteDeps{Modules: []Module{nil}, JWTService: stubJWTService{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := RegisterRoutes(tt.r, tt.deps); err == nil {
				t.Error("RegisterRoutes() expected error, got nil")
			}
		})
	}
}

func TestRegisterRoutes_ModulesMounted(t *testing.T) {
	r := newTestEngine()
	mod := &stubModule{}

	err := RegisterRoutes(r, &RouteDeps{
		Modules:     []Module{mod},
		JWTService:  stubJWTService{},
		PublicPaths: []string{"/api/v1/ping"},
	})
	if err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}
	if !mod.registered {
		t.Error("module RegisterRoutes was not called")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /api/v1/ping = %d; want 200", w.Code)
	}
}

func TestRegisterRoutes_AuthGuardsAPI(t *testing.T) {
	r := newTestEngine()
	mod := &stubModule{}

	err := RegisterRoutes(r, &RouteDeps{
		Modules:    []Module{mod},
		JWTService: stubJWTService{},
	})
	if err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated request = %d; want 401", w.Code)
	}
}

func TestNoRoute_ReturnsJSON(t *testing.T) {
	r := newTestEngine()

	err := RegisterRoutes(r, &RouteDeps{
		Modules:    []Module{&stubModule{}},
		JWTService: stubJWTService{},
	})
	if err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.Message != "not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestHealth_NilDB(t *testing.T) {
	r := newTestEngine()

	err := RegisterRoutes(r, &RouteDeps{
		Modules:    []Module{&stubModule{}},
		JWTService: stubJWTService{},
	})
	if err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("health with nil db = %d; want 503", w.Code)
	}
}
