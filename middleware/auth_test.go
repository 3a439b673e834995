package middleware_test

import (
	"net/http/httptest"
	"testing"

	"homeservice-booking/constants"
	"homeservice-booking/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "auth-test-secret"

func signedToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uuid": "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		"role": role,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func testApp(auth *middleware.Auth) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/admin-only", auth.RequireRoles(constants.RoleAdmin), ok)
	app.Get("/any", auth.RequireAuthentication(), ok)
	return app
}

func TestAuthUsesConfiguredSecret(t *testing.T) {
	app := testApp(middleware.NewAuth(testSecret))

	req := httptest.NewRequest("GET", "/any", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, constants.RoleClient))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for a token signed with the configured secret, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/any", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "some-other-secret", constants.RoleClient))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for a token signed with another secret, got %d", resp.StatusCode)
	}
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	app := testApp(middleware.NewAuth(testSecret))

	resp, err := app.Test(httptest.NewRequest("GET", "/any", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without an Authorization header, got %d", resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/any", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for a non-bearer header, got %d", resp.StatusCode)
	}
}

func TestAuthEnforcesRoles(t *testing.T) {
	app := testApp(middleware.NewAuth(testSecret))

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, constants.RoleClient))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for a client on an admin route, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, constants.RoleAdmin))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for an admin, got %d", resp.StatusCode)
	}
}
