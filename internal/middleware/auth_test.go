package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

// fakeJWTService implements jwt.Service for testing.
type fakeJWTService struct {
	parsed   *jwt.Token
	parseErr error
}

func (f *fakeJWTService) GenerateToken(string, []string, time.Duration) (string, error) {
	return "", nil
}
func (f *fakeJWTService) ValidateToken(string) (*jwt.Token, error) { return nil, nil }
func (f *fakeJWTService) ValidateAndParse(string) (*jwt.Token, error) {
	return f.parsed, f.parseErr
}
func (f *fakeJWTService) RefreshToken(string) (string, error)                      { return "", nil }
func (f *fakeJWTService) RefreshTokenExtend(string, time.Duration) (string, error) { return "", nil }
func (f *fakeJWTService) RevokeToken(string) error                                 { return nil }
func (f *fakeJWTService) IsTokenRevoked(string) bool                               { return false }
func (f *fakeJWTService) ParseToken(string) (*jwt.Token, error)                    { return nil, nil }
func (f *fakeJWTService) RevokeAllUserTokens(string) error                         { return nil }
func (f *fakeJWTService) Close()                                                   {}

func authRouter(svc jwt.Service, publicPaths []string) *gin.Engine {
	r := gin.New()
	r.Use(Auth(svc, publicPaths))
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    GetRole(c),
		})
	}
	r.GET("/api/employees", handler)
	r.POST("/api/auth/login", handler)
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	r := authRouter(&fakeJWTService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", w.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := authRouter(&fakeJWTService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", w.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	r := authRouter(&fakeJWTService{parseErr: errors.New("expired")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", w.Code)
	}
}

func TestAuth_ValidTokenSetsContext(t *testing.T) {
	svc := &fakeJWTService{parsed: &jwt.Token{
		UserID: "42",
		Roles:  []string{"hr"},
	}}
	r := authRouter(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	body := w.Body.String()
	if want := `"user_id":42`; !strings.Contains(body, want) {
		t.Errorf("body = %s; want %s", body, want)
	}
	if want := `"role":"hr"`; !strings.Contains(body, want) {
		t.Errorf("body = %s; want %s", body, want)
	}
}

func TestAuth_PublicPathSkipsCheck(t *testing.T) {
	r := authRouter(&fakeJWTService{parseErr: errors.New("never called")}, []string{"/api/auth/login"})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d; want 200 for public path", w.Code)
	}
}
