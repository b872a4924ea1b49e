// internals/features/users/auth/controller/auth_controller_test.go
package controller_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/configs"
	authRoute "surveyku_backend/internals/features/users/auth/route"
	"surveyku_backend/internals/testutil"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "secret-untuk-test"

	db := testutil.OpenDB(t)
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	authRoute.AuthRoutes(app, db)
	return app, db
}

func post(t *testing.T, app *fiber.App, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, target, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("POST %s: %v", target, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	_ = sonic.Unmarshal(raw, &parsed)
	return resp.StatusCode, parsed
}

const registerBody = `{"username":"budi","email":"budi@example.com","plainPassword":"rahasia-banget"}`

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newAuthApp(t)

	status, body := post(t, app, "/api/auth/register", registerBody)
	if status != fiber.StatusCreated {
		t.Fatalf("register: %d %v", status, body)
	}
	if _, ok := body["password"]; ok {
		t.Fatal("hash password bocor di response")
	}
	roles, _ := body["roles"].([]any)
	if len(roles) != 1 || roles[0] != "ROLE_USER" {
		t.Fatalf("roles = %v", body["roles"])
	}

	// duplikat ditolak dengan pesan jelas
	status, _ = post(t, app, "/api/auth/register", registerBody)
	if status != fiber.StatusConflict {
		t.Fatalf("register duplikat: %d, mau 409", status)
	}

	status, body = post(t, app, "/api/auth/login", `{"identifier":"budi","password":"rahasia-banget"}`)
	if status != fiber.StatusOK {
		t.Fatalf("login: %d %v", status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("token kosong")
	}

	// token berlaku untuk endpoint yang dijaga middleware
	req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("me: %d %s", resp.StatusCode, raw)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newAuthApp(t)

	if status, _ := post(t, app, "/api/auth/register", registerBody); status != fiber.StatusCreated {
		t.Fatalf("register: %d", status)
	}
	status, _ := post(t, app, "/api/auth/login", `{"identifier":"budi","password":"salah"}`)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("login salah: %d, mau 401", status)
	}
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newAuthApp(t)

	status, body := post(t, app, "/api/auth/register", `{"username":"x","email":"bukan-email","plainPassword":"123"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status %d, mau 422 (%v)", status, body)
	}
	if _, ok := body["errors"]; !ok {
		t.Fatalf("body tanpa errors: %v", body)
	}
}

func TestMeWithoutToken(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status %d, mau 401", resp.StatusCode)
	}
}
