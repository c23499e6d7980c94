package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// fakeChecker implements domain.PermissionChecker.
type fakeChecker struct {
	view    map[string]bool
	viewAll map[string]bool
}

func (f *fakeChecker) CanView(role, feature string) bool    { return f.view[role+"/"+feature] }
func (f *fakeChecker) CanViewAll(role, feature string) bool { return f.viewAll[role+"/"+feature] }

func permissionRouter(mw gin.HandlerFunc, role string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextRoleKey, role)
	})
	r.GET("/api/payroll/periods", mw, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequireView(t *testing.T) {
	checker := &fakeChecker{view: map[string]bool{"hr/payroll": true}}

	tests := []struct {
		role string
		want int
	}{
		{"hr", http.StatusOK},
		{"employee", http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tt := range tests {
		r := permissionRouter(RequireView(checker, "payroll"), tt.role)
		req := httptest.NewRequest(http.MethodGet, "/api/payroll/periods", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("role %q: status = %d; want %d", tt.role, w.Code, tt.want)
		}
	}
}

func TestRequireViewAll(t *testing.T) {
	checker := &fakeChecker{
		view:    map[string]bool{"employee/payroll": true, "admin/payroll": true},
		viewAll: map[string]bool{"admin/payroll": true},
	}

	// Employees can view their own payslips but not everyone's.
	r := permissionRouter(RequireViewAll(checker, "payroll"), "employee")
	req := httptest.NewRequest(http.MethodGet, "/api/payroll/periods", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("employee status = %d; want 403", w.Code)
	}

	r = permissionRouter(RequireViewAll(checker, "payroll"), "admin")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d; want 200", w.Code)
	}
}
