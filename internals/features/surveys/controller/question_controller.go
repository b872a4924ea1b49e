// internals/features/surveys/controller/question_controller.go
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

type QuestionController struct {
	Handler *resource.FormHandler
}

// GET /questions/:id
func (h *QuestionController) GetQuestion(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(middlewares.ResourceName(c), id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question tidak ditemukan")
		}
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusOK, obj)
}

// GET /questions?active=&limit=
func (h *QuestionController) ListQuestions(c *fiber.Ctx) error {
	criteria, limit := resource.CriteriaFromQuery(c)

	list, n, err := h.Handler.GetAll(middlewares.ResourceName(c), criteria, limit)
	if err != nil {
		return formError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question tidak ditemukan")
	}
	return helper.JsonEntity(c, fiber.StatusOK, list)
}

// POST /questions
func (h *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	obj, err := h.Handler.Create(middlewares.ResourceName(c), c.Method(), c.Body())
	if err != nil {
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusCreated, obj)
}

// PUT /questions/:id
func (h *QuestionController) PutQuestion(c *fiber.Ctx) error {
	return h.update(c)
}

// PATCH /questions/:id
func (h *QuestionController) PatchQuestion(c *fiber.Ctx) error {
	return h.update(c)
}

func (h *QuestionController) update(c *fiber.Ctx) error {
	resourceName := middlewares.ResourceName(c)

	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(resourceName, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question tidak ditemukan")
		}
		return formError(c, err)
	}

	obj, err = h.Handler.Update(resourceName, c.Method(), c.Body(), obj)
	if err != nil {
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusOK, obj)
}

// DELETE /questions/:id
func (h *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	resourceName := middlewares.ResourceName(c)

	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(resourceName, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question tidak ditemukan")
		}
		return formError(c, err)
	}

	if err := h.Handler.Delete(resourceName, obj); err != nil {
		return formError(c, err)
	}
	return helper.JsonDeleted(c)
}
