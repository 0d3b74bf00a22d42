package auth

import "testing"

func TestSelectTokenPrecedence(t *testing.T) {
	s := NewSelector("/admin")
	both := Credentials{UserToken: "U", AdminToken: "A"}

	cases := []struct {
		name  string
		url   string
		creds Credentials
		want  string
	}{
		{"admin path prefers admin token", "/api/admin/x", both, "A"},
		{"admin path falls back to user token", "/api/admin/x", Credentials{UserToken: "U"}, "U"},
		{"lms path prefers user token", "/api/lms/x", both, "U"},
		{"lms path falls back to admin token", "/api/lms/x", Credentials{AdminToken: "A"}, "A"},
		{"no credentials selects nothing", "/api/lms/x", Credentials{}, ""},
		{"absolute url admin target", "http://api.example.com/api/admin/users", both, "A"},
		{"admin as substring of a segment is not admin-scoped", "/api/administrators/x", both, "U"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.SelectToken(tc.url, tc.creds); got != tc.want {
				t.Fatalf("SelectToken(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestIsAdminTarget(t *testing.T) {
	s := NewSelector("/admin")
	if !s.IsAdminTarget("/api/admin") {
		t.Fatalf("trailing admin segment must be admin-scoped")
	}
	if s.IsAdminTarget("/api/lms/courses") {
		t.Fatalf("lms path must not be admin-scoped")
	}
}
