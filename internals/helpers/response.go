package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Entity / list sukses: body-nya entity apa adanya supaya response
// shaping berbasis group bisa milih field belakangan
func JsonEntity(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// ✅ Error report validasi form generik: report bersarang jadi body 400
func JsonReport(c *fiber.Ctx, report map[string]interface{}) error {
	return c.Status(fiber.StatusBadRequest).JSON(report)
}

// ✅ Error Response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Delete sukses: 204 tanpa body
func JsonDeleted(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ✅ Khusus error validasi DTO (validator.v10) — jalur registrasi,
// bukan pipeline form generik
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"code":    fiber.StatusUnprocessableEntity,
		"status":  "error",
		"message": "Validasi gagal",
		"errors":  errorsMap,
	})
}
