// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	referentialForm "surveyku_backend/internals/features/referentials/form"
	referentialRoute "surveyku_backend/internals/features/referentials/route"
	surveyForm "surveyku_backend/internals/features/surveys/form"
	surveyRoute "surveyku_backend/internals/features/surveys/route"
	testForm "surveyku_backend/internals/features/tests/form"
	testRoute "surveyku_backend/internals/features/tests/route"
	authRoute "surveyku_backend/internals/features/users/auth/route"
	authMiddleware "surveyku_backend/internals/middlewares/auth"
	"surveyku_backend/internals/resource"
)

var startTime time.Time

// BuildRegistry mendaftarkan semua schema resource. Dipisah dari
// SetupRoutes supaya test bisa bikin registry tanpa Fiber app.
func BuildRegistry() *resource.Registry {
	reg := resource.NewRegistry()
	surveyForm.RegisterSchemas(reg)
	referentialForm.RegisterSchemas(reg)
	testForm.RegisterSchemas(reg)
	return reg
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	reg := BuildRegistry()
	store := resource.NewStore(db, reg)
	handler := resource.NewFormHandler(store)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== API (protected) =====================
	log.Println("[INFO] Setting up /api group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting Survey routes...")
	surveyRoute.SurveyRoutes(api, handler)

	log.Println("[INFO] Mounting Test routes...")
	testRoute.TestRoutes(api, handler)

	log.Println("[INFO] Mounting Referential routes...")
	referentialRoute.ReferentialRoutes(api, store)
}
