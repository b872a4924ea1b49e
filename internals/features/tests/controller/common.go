// internals/features/tests/controller/common.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/resource"
)

// formError: mapping error pipeline → HTTP, sama dengan feature surveys.
func formError(c *fiber.Ctx, err error) error {
	var invalid *resource.InvalidFormError
	if errors.As(err, &invalid) {
		return helper.JsonReport(c, invalid.Report())
	}
	if errors.Is(err, resource.ErrMalformedPayload) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if errors.Is(err, resource.ErrResourceNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Resource tidak dikenal")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
}
