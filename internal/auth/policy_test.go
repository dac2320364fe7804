package auth

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

func TestDefaultPolicyDecide(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name          string
		method        string
		path          string
		authenticated bool
		allow         bool
	}{
		{"health is open", http.MethodGet, "/healthz", false, true},
		{"readiness is open", http.MethodGet, "/healthz/ready", false, true},
		{"login is open", http.MethodPost, "/auth/login", false, true},
		{"signup is open", http.MethodPost, "/auth/signup", false, true},
		{"preflight is open anywhere", http.MethodOptions, "/users/42", false, true},
		{"aboutus read is open", http.MethodGet, "/aboutus", false, true},
		{"flight catalog read is open", http.MethodGet, "/flights/7", false, true},
		{"reservation read is open", http.MethodGet, "/reservations", false, true},
		{"ticket deactivation link is open", http.MethodPut, "/flights/deactivateTicket/15", false, true},
		{"flight deactivation link is open", http.MethodPut, "/flights/deactivate/AV123", false, true},
		{"reservation cancel link is open", http.MethodPut, "/reservations/cancel/9", false, true},
		{"hotel cancel link is open", http.MethodPut, "/reservations/cancelHotel/h-22", false, true},

		{"user list requires identity", http.MethodGet, "/users", false, false},
		{"user list allowed when authenticated", http.MethodGet, "/users", true, true},
		{"flight creation requires identity", http.MethodPost, "/flights", false, false},
		{"flight update requires identity", http.MethodPut, "/flights/7", false, false},
		{"reservation creation requires identity", http.MethodPost, "/reservations", false, false},
		{"comment creation requires identity", http.MethodPost, "/comments", false, false},
		{"unknown route defaults to protected", http.MethodGet, "/internal/debug", false, false},
		{"unknown route open when authenticated", http.MethodGet, "/internal/debug", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.Decide(tc.method, tc.path, tc.authenticated); got != tc.allow {
				t.Fatalf("Decide(%s %s, auth=%v) = %v, want %v",
					tc.method, tc.path, tc.authenticated, got, tc.allow)
			}
		})
	}
}

func TestPolicyFirstMatchWins(t *testing.T) {
	policy := NewPolicy([]Rule{
		{Method: fiber.MethodGet, Pattern: "/items/**", Access: Public},
		{Method: fiber.MethodGet, Pattern: "/items/secret", Access: Protected},
	})

	// The broader rule comes first, so the later protected rule is shadowed.
	if !policy.Decide(fiber.MethodGet, "/items/secret", false) {
		t.Fatal("first matching rule should win")
	}
}

func TestRulePatternMatching(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		match   bool
	}{
		{"/flights", "/flights", true},
		{"/flights", "/flights/7", false},
		{"/flights/**", "/flights", true},
		{"/flights/**", "/flights/7", true},
		{"/flights/**", "/flights/avianca/cities", true},
		{"/flights/**", "/flightsx", false},
		{"/**", "/anything/at/all", true},
	}

	for _, tc := range tests {
		rule := Rule{Method: AnyMethod, Pattern: tc.pattern}
		if got := rule.matches(fiber.MethodGet, tc.path); got != tc.match {
			t.Fatalf("pattern %q against %q = %v, want %v", tc.pattern, tc.path, got, tc.match)
		}
	}
}

func TestEnforceRejectsUnauthenticatedProtectedRoutes(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})
	app.Use(Enforce(DefaultPolicy()))
	app.Get("/users", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("open route: got status %d, want 200", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodGet, "/users", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("protected route without identity: got status %d, want 401", resp.StatusCode)
	}
}
