package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spec-kit/learnhub-portal/internal/auth"
	"github.com/spec-kit/learnhub-portal/internal/config"
	"github.com/spec-kit/learnhub-portal/internal/notify"
	"github.com/spec-kit/learnhub-portal/internal/observability"
	"github.com/spec-kit/learnhub-portal/internal/transport"
	util "github.com/spec-kit/learnhub-portal/pkg/util"
)

type staticToken string

func (s staticToken) AccessToken(context.Context) string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, userToken, adminToken string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	selector := auth.NewSelector("/admin")
	classifier := transport.NewClassifier(selector, notify.New(), observability.NewMetrics())
	authorizer := transport.NewAuthorizer(nil, selector, staticToken(userToken), staticToken(adminToken), nil)

	return NewClient(
		config.APIConfig{BaseURL: server.URL + "/api", RequestTimeoutSeconds: 5},
		&http.Client{Transport: authorizer},
		classifier,
		nil,
	)
}

func TestLoginDecodesAuthResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req["email"] != "sara@example.com" {
			t.Fatalf("unexpected email: %q", req["email"])
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token": "issued-token",
			"id":    "9",
			"name":  "Sara",
			"email": "sara@example.com",
		})
	}), "", "")

	resp, err := client.Login(context.Background(), "sara@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token != "issued-token" || resp.Name != "Sara" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAdminEndpointCarriesUserTokenFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer user-token" {
			t.Fatalf("Authorization = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]string{})
	}), "user-token", "")

	if _, err := client.AdminUsers(context.Background()); err != nil {
		t.Fatalf("AdminUsers returned error: %v", err)
	}
}

func TestFailureIsClassifiedAndReturned(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), "", "")

	_, err := client.MyBooks(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if util.ToDomainError(err).Code != "UNAUTHORIZED" {
		t.Fatalf("unexpected code: %s", util.ToDomainError(err).Code)
	}
}

func TestValidationMessageSurfacesVerbatim(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"email already registered"}`))
	}), "", "")

	_, err := client.Register(context.Background(), "Sara", "sara@example.com", "secret")
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := util.ToDomainError(err).Message; got != "email already registered" {
		t.Fatalf("unexpected message: %q", got)
	}
}
