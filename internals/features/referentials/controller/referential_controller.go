// internals/features/referentials/controller/referential_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/resource"
)

// ReferentialController melayani daftar lookup (format pertanyaan, dst)
// lewat satu endpoint generik. Nama resource diambil dari path param,
// bukan dari middleware, karena type-nya dinamis.
type ReferentialController struct {
	Store *resource.Store
}

// GET /referentials/:type — :type snake_case, contoh question_format
func (h *ReferentialController) GetReferential(c *fiber.Ctx) error {
	resourceName := helper.ConvertSnakeToCamel(c.Params("type"))

	sc, err := h.Store.Registry.Lookup(resourceName)
	if err != nil {
		if errors.Is(err, resource.ErrResourceNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Referential tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data")
	}
	// resource non-referential tidak boleh bocor lewat endpoint ini
	if !sc.Referential {
		return helper.JsonError(c, fiber.StatusNotFound, "Referential tidak ditemukan")
	}

	list, n, err := h.Store.FindAll(resourceName, nil, 0)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Referential tidak ditemukan")
	}
	return helper.JsonEntity(c, fiber.StatusOK, list)
}
