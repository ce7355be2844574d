package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jenicoon/fitcoach-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func newIdentityTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(MemberIdentity(secret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		memberID, _ := c.Locals("member_id").(string)
		return c.JSON(fiber.Map{"memberId": memberID})
	})
	return app
}

func TestMemberIdentityPassesThroughWithoutHeader(t *testing.T) {
	app := newIdentityTestApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestMemberIdentityRejectsMalformedHeader(t *testing.T) {
	app := newIdentityTestApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "NotBearer token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMemberIdentityRejectsBadToken(t *testing.T) {
	app := newIdentityTestApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMemberIdentitySetsLocalsFromValidToken(t *testing.T) {
	token, err := utils.GenerateToken("m-42", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	app := newIdentityTestApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
