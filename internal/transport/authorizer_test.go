package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spec-kit/learnhub-portal/internal/auth"
)

type staticToken string

func (s staticToken) AccessToken(context.Context) string { return string(s) }

func TestAuthorizerAttachesSelectedToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	t.Cleanup(server.Close)

	cases := []struct {
		name  string
		path  string
		user  string
		admin string
		want  string
	}{
		{"admin path with only user token falls back", "/api/admin/users", "U", "", "Bearer U"},
		{"admin path prefers admin token", "/api/admin/users", "U", "A", "Bearer A"},
		{"lms path prefers user token", "/api/lms/courses", "U", "A", "Bearer U"},
		{"no credentials sends no header", "/api/lms/courses", "", "", ""},
	}

	selector := auth.NewSelector("/admin")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			authorizer := NewAuthorizer(nil, selector, staticToken(tc.user), staticToken(tc.admin), nil)
			client := &http.Client{Transport: authorizer}

			resp, err := client.Get(server.URL + tc.path)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()

			if gotAuth != tc.want {
				t.Fatalf("Authorization = %q, want %q", gotAuth, tc.want)
			}
		})
	}
}

func TestAuthorizerDoesNotMutateOriginalRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(server.Close)

	authorizer := NewAuthorizer(nil, auth.NewSelector("/admin"), staticToken("U"), staticToken(""), nil)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/lms/courses", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := authorizer.RoundTrip(req)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	resp.Body.Close()

	if req.Header.Get("Authorization") != "" {
		t.Fatalf("caller's request must stay unmodified")
	}
}
