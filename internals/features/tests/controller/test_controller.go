// internals/features/tests/controller/test_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/middlewares"
	"surveyku_backend/internals/resource"
)

// TestController: hasil pengerjaan survey (test + decisions per question).
type TestController struct {
	Handler *resource.FormHandler
}

// GET /tests/:id
func (h *TestController) GetTest(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(middlewares.ResourceName(c), id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Test tidak ditemukan")
		}
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusOK, obj)
}

// GET /tests?active=&limit=
func (h *TestController) ListTests(c *fiber.Ctx) error {
	criteria, limit := resource.CriteriaFromQuery(c)

	list, n, err := h.Handler.GetAll(middlewares.ResourceName(c), criteria, limit)
	if err != nil {
		return formError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Test tidak ditemukan")
	}
	return helper.JsonEntity(c, fiber.StatusOK, list)
}

// GET /tests/latest?max=&offset= — riwayat pengerjaan terbaru
func (h *TestController) LatestTests(c *fiber.Ctx) error {
	maxCount := c.QueryInt("max", 10)
	offset := c.QueryInt("offset", 0)

	list, n, err := h.Handler.Store.FindLatest(middlewares.ResourceName(c), maxCount, offset)
	if err != nil {
		return formError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Test tidak ditemukan")
	}
	return helper.JsonEntity(c, fiber.StatusOK, list)
}

// POST /tests
func (h *TestController) CreateTest(c *fiber.Ctx) error {
	obj, err := h.Handler.Create(middlewares.ResourceName(c), c.Method(), c.Body())
	if err != nil {
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusCreated, obj)
}

// PUT /tests/:id
func (h *TestController) PutTest(c *fiber.Ctx) error {
	return h.update(c)
}

// PATCH /tests/:id
func (h *TestController) PatchTest(c *fiber.Ctx) error {
	return h.update(c)
}

func (h *TestController) update(c *fiber.Ctx) error {
	resourceName := middlewares.ResourceName(c)

	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(resourceName, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Test tidak ditemukan")
		}
		return formError(c, err)
	}

	obj, err = h.Handler.Update(resourceName, c.Method(), c.Body(), obj)
	if err != nil {
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusOK, obj)
}

// DELETE /tests/:id
func (h *TestController) DeleteTest(c *fiber.Ctx) error {
	resourceName := middlewares.ResourceName(c)

	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(resourceName, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Test tidak ditemukan")
		}
		return formError(c, err)
	}

	if err := h.Handler.Delete(resourceName, obj); err != nil {
		return formError(c, err)
	}
	return helper.JsonDeleted(c)
}
