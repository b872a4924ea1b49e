// internals/features/referentials/controller/referential_controller_test.go
package controller_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	referentialRoute "surveyku_backend/internals/features/referentials/route"
	"surveyku_backend/internals/resource"
	routes "surveyku_backend/internals/route"
	referentialSeeds "surveyku_backend/internals/seeds/referentials"
	"surveyku_backend/internals/testutil"
)

func newApp(t *testing.T, seed bool) *fiber.App {
	t.Helper()
	db := testutil.OpenDB(t)
	if seed {
		referentialSeeds.SeedQuestionFormats(db)
	}

	store := resource.NewStore(db, routes.BuildRegistry())
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	referentialRoute.ReferentialRoutes(app.Group("/api"), store)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func TestGetQuestionFormats(t *testing.T) {
	app := newApp(t, true)

	status, raw := get(t, app, "/api/referentials/question_format")
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %s", status, raw)
	}

	var list []map[string]any
	if err := sonic.Unmarshal(raw, &list); err != nil {
		t.Fatalf("body bukan array: %s", raw)
	}
	if len(list) != 3 {
		t.Fatalf("format = %d, mau 3", len(list))
	}
	codes := map[string]bool{}
	for _, f := range list {
		codes[f["code"].(string)] = true
	}
	for _, want := range []string{"checkbox", "radio", "text"} {
		if !codes[want] {
			t.Fatalf("code %q tidak ada: %v", want, codes)
		}
	}
}

func TestUnknownReferentialType(t *testing.T) {
	app := newApp(t, true)
	if status, _ := get(t, app, "/api/referentials/tidak_ada"); status != fiber.StatusNotFound {
		t.Fatalf("status %d, mau 404", status)
	}
}

// Resource CRUD biasa tidak boleh bisa dibaca lewat endpoint lookup.
func TestNonReferentialResourceHidden(t *testing.T) {
	app := newApp(t, true)
	if status, _ := get(t, app, "/api/referentials/survey"); status != fiber.StatusNotFound {
		t.Fatalf("status %d, mau 404", status)
	}
}

func TestEmptyReferentialIs404(t *testing.T) {
	app := newApp(t, false)
	if status, _ := get(t, app, "/api/referentials/question_format"); status != fiber.StatusNotFound {
		t.Fatalf("status %d, mau 404", status)
	}
}
