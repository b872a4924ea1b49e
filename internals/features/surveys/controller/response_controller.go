// internals/features/surveys/controller/response_controller.go
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

type ResponseController struct {
	Handler *resource.FormHandler
}

// GET /responses/:id
func (h *ResponseController) GetResponse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(middlewares.ResourceName(c), id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
		}
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusOK, obj)
}

// GET /responses?active=&limit=
func (h *ResponseController) ListResponses(c *fiber.Ctx) error {
	criteria, limit := resource.CriteriaFromQuery(c)

	list, n, err := h.Handler.GetAll(middlewares.ResourceName(c), criteria, limit)
	if err != nil {
		return formError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
	}
	return helper.JsonEntity(c, fiber.StatusOK, list)
}

// POST /responses
func (h *ResponseController) CreateResponse(c *fiber.Ctx) error {
	obj, err := h.Handler.Create(middlewares.ResourceName(c), c.Method(), c.Body())
	if err != nil {
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusCreated, obj)
}

// PUT /responses/:id
func (h *ResponseController) PutResponse(c *fiber.Ctx) error {
	return h.update(c)
}

// PATCH /responses/:id
func (h *ResponseController) PatchResponse(c *fiber.Ctx) error {
	return h.update(c)
}

func (h *ResponseController) update(c *fiber.Ctx) error {
	resourceName := middlewares.ResourceName(c)

	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(resourceName, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
		}
		return formError(c, err)
	}

	obj, err = h.Handler.Update(resourceName, c.Method(), c.Body(), obj)
	if err != nil {
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusOK, obj)
}

// DELETE /responses/:id
func (h *ResponseController) DeleteResponse(c *fiber.Ctx) error {
	resourceName := middlewares.ResourceName(c)

	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(resourceName, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
		}
		return formError(c, err)
	}

	if err := h.Handler.Delete(resourceName, obj); err != nil {
		return formError(c, err)
	}
	return helper.JsonDeleted(c)
}
