package menu

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithMenuHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id, "role": c.Get("X-User-Role")}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestMenuRoutes_PublicListing(t *testing.T) {
	app := makeAppWithMenuHandler(NewHandler(newTestService()))

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/restaurant/1/menu", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Carbonara") {
		t.Fatalf("unexpected listing payload: %s", string(body))
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/restaurant/99/menu", nil))
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown restaurant, got %d", res2.StatusCode)
	}
}

func TestMenuRoutes_WriteGates(t *testing.T) {
	app := makeAppWithMenuHandler(NewHandler(newTestService()))

	payload := `{"name":"Tiramisu","description":"House made","price":600,"category":"Dessert"}`

	// no token
	req := httptest.NewRequest("POST", "/api/v1/restaurant/1/menu", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	// wrong owner
	req2 := httptest.NewRequest("POST", "/api/v1/restaurant/1/menu", strings.NewReader(payload))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "8")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for foreign owner, got %d", res2.StatusCode)
	}

	// owner succeeds
	req3 := httptest.NewRequest("POST", "/api/v1/restaurant/1/menu", strings.NewReader(payload))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "7")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"category":"Dessert"`) {
		t.Fatalf("unexpected create payload: %s", string(b3))
	}

	// bad category
	req4 := httptest.NewRequest("POST", "/api/v1/restaurant/1/menu", strings.NewReader(`{"name":"Bad","description":"x","price":100,"category":"Snacks"}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "7")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad category, got %d", res4.StatusCode)
	}

	// owner delete
	req5 := httptest.NewRequest("DELETE", "/api/v1/menu/1", nil)
	req5.Header.Set("X-User-ID", "7")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", res5.StatusCode)
	}

	req6 := httptest.NewRequest("DELETE", "/api/v1/menu/1", nil)
	req6.Header.Set("X-User-ID", "7")
	res6, _ := app.Test(req6)
	if res6.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for repeat delete, got %d", res6.StatusCode)
	}
}
