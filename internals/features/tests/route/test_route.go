// internals/features/tests/route/test_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"surveyku_backend/internals/features/tests/controller"
	"surveyku_backend/internals/middlewares"
	"surveyku_backend/internals/resource"
)

func TestRoutes(api fiber.Router, handler *resource.FormHandler) {
	testCtrl := &controller.TestController{Handler: handler}
	tests := api.Group("/tests", middlewares.ResourceTag("Test"))
	tests.Get("/", testCtrl.ListTests)
	// harus sebelum /:id, Fiber match berurutan
	tests.Get("/latest", testCtrl.LatestTests)
	tests.Get("/:id", testCtrl.GetTest)
	tests.Post("/", testCtrl.CreateTest)
	tests.Put("/:id", testCtrl.PutTest)
	tests.Patch("/:id", testCtrl.PatchTest)
	tests.Delete("/:id", testCtrl.DeleteTest)
}
