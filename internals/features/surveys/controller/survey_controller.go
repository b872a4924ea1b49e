// internals/features/surveys/controller/survey_controller.go
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

// SurveyController: fasad tipis — semua logika create/update/delete ada
// di FormHandler, controller cuma mengikat HTTP ke pipeline.
type SurveyController struct {
	Handler *resource.FormHandler
}

// GET BY ID
// GET /surveys/:id
func (h *SurveyController) GetSurvey(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(middlewares.ResourceName(c), id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey tidak ditemukan")
		}
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusOK, obj)
}

// LIST
// GET /surveys?active=&limit=
// Konvensi lama dipertahankan: hasil kosong = 404, bukan 200 [].
func (h *SurveyController) ListSurveys(c *fiber.Ctx) error {
	criteria, limit := resource.CriteriaFromQuery(c)

	list, n, err := h.Handler.GetAll(middlewares.ResourceName(c), criteria, limit)
	if err != nil {
		return formError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Survey tidak ditemukan")
	}
	return helper.JsonEntity(c, fiber.StatusOK, list)
}

// CREATE
// POST /surveys
func (h *SurveyController) CreateSurvey(c *fiber.Ctx) error {
	obj, err := h.Handler.Create(middlewares.ResourceName(c), c.Method(), c.Body())
	if err != nil {
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusCreated, obj)
}

// REPLACE
// PUT /surveys/:id — full binding: field yang absen di-reset
func (h *SurveyController) PutSurvey(c *fiber.Ctx) error {
	return h.update(c)
}

// PARTIAL UPDATE
// PATCH /surveys/:id — merge: field yang absen dibiarkan
func (h *SurveyController) PatchSurvey(c *fiber.Ctx) error {
	return h.update(c)
}

func (h *SurveyController) update(c *fiber.Ctx) error {
	resourceName := middlewares.ResourceName(c)

	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(resourceName, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey tidak ditemukan")
		}
		return formError(c, err)
	}

	obj, err = h.Handler.Update(resourceName, c.Method(), c.Body(), obj)
	if err != nil {
		return formError(c, err)
	}
	return helper.JsonEntity(c, fiber.StatusOK, obj)
}

// DELETE
// DELETE /surveys/:id — cascade ke questions + responses, satu flush
func (h *SurveyController) DeleteSurvey(c *fiber.Ctx) error {
	resourceName := middlewares.ResourceName(c)

	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	obj, err := h.Handler.Store.FindByID(resourceName, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey tidak ditemukan")
		}
		return formError(c, err)
	}

	if err := h.Handler.Delete(resourceName, obj); err != nil {
		return formError(c, err)
	}
	return helper.JsonDeleted(c)
}
