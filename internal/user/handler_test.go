package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeAppWithUserHandler() *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(nil)), "test-secret")
	h.RegisterPublicRoutes(app)
	return app
}

func postJSON(app *fiber.App, path, body string) (int, []byte) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func TestSignUp(t *testing.T) {
	app := makeAppWithUserHandler()

	status, body := postJSON(app, "/api/v1/sign-up", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, string(body))
	}

	var payload struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("expected a signed token")
	}
	if payload.User.Role != RoleUser {
		t.Fatalf("expected default role %q, got %q", RoleUser, payload.User.Role)
	}
	if payload.User.Password != "" {
		t.Fatal("password must not be echoed back")
	}

	// duplicate email
	status, _ = postJSON(app, "/api/v1/sign-up", `{"name":"Alice2","email":"alice@example.com","password":"other"}`)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", status)
	}

	// missing fields
	status, _ = postJSON(app, "/api/v1/sign-up", `{"email":"bob@example.com"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", status)
	}

	// unknown role
	status, _ = postJSON(app, "/api/v1/sign-up", `{"name":"Bob","email":"bob@example.com","password":"x","role":"superuser"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad role, got %d", status)
	}
}

func TestSignIn(t *testing.T) {
	app := makeAppWithUserHandler()

	if status, body := postJSON(app, "/api/v1/sign-up", `{"name":"Alice","email":"alice@example.com","password":"secret"}`); status != fiber.StatusCreated {
		t.Fatalf("sign-up failed: %d %s", status, string(body))
	}

	status, body := postJSON(app, "/api/v1/sign-in", `{"email":"alice@example.com","password":"secret"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, string(body))
	}
	if !strings.Contains(string(body), `"token"`) {
		t.Fatalf("expected token in response: %s", string(body))
	}

	status, _ = postJSON(app, "/api/v1/sign-in", `{"email":"alice@example.com","password":"wrong"}`)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", status)
	}

	status, _ = postJSON(app, "/api/v1/sign-in", `{"email":"nobody@example.com","password":"secret"}`)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", status)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	created, err := s.Register(User{Name: "Alice", Email: "alice@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.Password == "secret" || created.Password == "" {
		t.Fatal("password must be stored hashed")
	}

	if _, err := s.Authenticate("alice@example.com", "secret"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if _, err := s.Authenticate("alice@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
