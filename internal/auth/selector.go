// Package auth decides which stored credential, if any, authorizes an
// outgoing request.
package auth

import (
	"net/url"
	"strings"
)

// Credentials carries the current raw token of each role, empty when absent.
type Credentials struct {
	UserToken  string
	AdminToken string
}

// Selector applies the role-precedence rule: admin-scoped targets prefer the
// admin token and fall back to the user token; everything else prefers the
// user token and falls back to the admin token. Either role's token may
// authorize the other scope as long as the server accepts it as a bearer
// credential.
type Selector struct {
	adminSegments []string
}

// NewSelector builds a selector. adminPathPrefix names the path segments that
// mark a request as admin-scoped, e.g. "/admin".
func NewSelector(adminPathPrefix string) *Selector {
	if adminPathPrefix == "" {
		adminPathPrefix = "/admin"
	}
	return &Selector{adminSegments: splitSegments(adminPathPrefix)}
}

// SelectToken picks the token to attach to a request targeting requestURL.
// Returns empty when both credentials are absent.
func (s *Selector) SelectToken(requestURL string, creds Credentials) string {
	if s.IsAdminTarget(requestURL) {
		if creds.AdminToken != "" {
			return creds.AdminToken
		}
		return creds.UserToken
	}
	if creds.UserToken != "" {
		return creds.UserToken
	}
	return creds.AdminToken
}

// IsAdminTarget reports whether the URL path contains the admin segment
// sequence at a segment boundary.
func (s *Selector) IsAdminTarget(requestURL string) bool {
	path := requestURL
	if u, err := url.Parse(requestURL); err == nil && u.Path != "" {
		path = u.Path
	}
	segments := splitSegments(path)
	for i := 0; i+len(s.adminSegments) <= len(segments); i++ {
		match := true
		for j, want := range s.adminSegments {
			if segments[i+j] != want {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func splitSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
