package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestClient_GetDecodesData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/employees" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("department_id"); got != "3" {
			t.Errorf("department_id = %q; want 3", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":200,"message":"success","data":{"items":[{"id":1,"first_name":"Amara"}],"total":1,"page":1,"page_size":20}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok-123"))

	var out struct {
		Items []struct {
			ID        uint   `json:"id"`
			FirstName string `json:"first_name"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	query := url.Values{"department_id": {"3"}}
	if err := c.Get(context.Background(), "/api/employees", query, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Total != 1 || len(out.Items) != 1 || out.Items[0].FirstName != "Amara" {
		t.Errorf("decoded = %+v", out)
	}
}

func TestClient_BusinessErrorInData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":409,"message":"conflict","data":{"error":"Cannot delete: in use"}}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Delete(context.Background(), "/api/settings/departments/5")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %v; want *APIError", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("status = %d", apiErr.Status)
	}
	if got := apiErr.UserMessage(); got != "Cannot delete: in use" {
		t.Errorf("UserMessage() = %q; want the server's exact error string", got)
	}
	if !IsConflict(err) {
		t.Error("IsConflict = false")
	}
}

func TestClient_ValidationErrorFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":400,"message":"validation error","errors":{"contract.start_date":"required","email":"email"}}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Post(context.Background(), "/api/employees", map[string]any{}, nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %v; want *APIError", err)
	}
	if apiErr.Fields["contract.start_date"] != "required" {
		t.Errorf("fields = %v", apiErr.Fields)
	}
	// The envelope message is the generic "validation error", so the first
	// field message (sorted by path) is surfaced instead.
	if got := apiErr.UserMessage(); got != "contract.start_date: required" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestAPIError_UserMessageOrder(t *testing.T) {
	tests := []struct {
		name string
		err  APIError
		want string
	}{
		{
			name: "business error wins over everything",
			err: APIError{
				Err:     "Cannot delete: in use",
				Message: "conflict",
				Detail:  "the department has employees",
				Fields:  map[string]string{"name": "required"},
			},
			want: "Cannot delete: in use",
		},
		{
			name: "message when no business error",
			err:  APIError{Message: "record not found", Detail: "longer text"},
			want: "record not found",
		},
		{
			name: "detail when message is absent",
			err:  APIError{Detail: "period already processed"},
			want: "period already processed",
		},
		{
			name: "first field message by sorted path",
			err:  APIError{Fields: map[string]string{"b_field": "min=2", "a_field": "required"}},
			want: "a_field: required",
		},
		{
			name: "generic fallback",
			err:  APIError{Status: 502},
			want: "An error occurred. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.UserMessage(); got != tt.want {
				t.Errorf("UserMessage() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestClient_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer srv.Close()

	err := New(srv.URL).Get(context.Background(), "/api/employees", nil, nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %v; want *APIError", err)
	}
	if got := apiErr.UserMessage(); got != "An error occurred. Please try again." {
		t.Errorf("UserMessage() = %q", got)
	}
}
