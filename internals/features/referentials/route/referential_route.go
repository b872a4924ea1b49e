// internals/features/referentials/route/referential_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"surveyku_backend/internals/features/referentials/controller"
	"surveyku_backend/internals/resource"
)

func ReferentialRoutes(api fiber.Router, store *resource.Store) {
	ctrl := &controller.ReferentialController{Store: store}
	api.Get("/referentials/:type", ctrl.GetReferential)
}
