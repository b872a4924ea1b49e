// internals/features/surveys/route/survey_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"surveyku_backend/internals/features/surveys/controller"
	"surveyku_backend/internals/middlewares"
	"surveyku_backend/internals/resource"
)

// SurveyRoutes memasang endpoint CRUD survey/question/response di bawah
// group /api. Tiap sub-group ditandai nama resource-nya supaya pipeline
// generik tahu schema mana yang dipakai.
func SurveyRoutes(api fiber.Router, handler *resource.FormHandler) {
	surveyCtrl := &controller.SurveyController{Handler: handler}
	surveys := api.Group("/surveys", middlewares.ResourceTag("Survey"))
	surveys.Get("/", surveyCtrl.ListSurveys)
	surveys.Get("/:id", surveyCtrl.GetSurvey)
	surveys.Post("/", surveyCtrl.CreateSurvey)
	surveys.Put("/:id", surveyCtrl.PutSurvey)
	surveys.Patch("/:id", surveyCtrl.PatchSurvey)
	surveys.Delete("/:id", surveyCtrl.DeleteSurvey)

	questionCtrl := &controller.QuestionController{Handler: handler}
	questions := api.Group("/questions", middlewares.ResourceTag("Question"))
	questions.Get("/", questionCtrl.ListQuestions)
	questions.Get("/:id", questionCtrl.GetQuestion)
	questions.Post("/", questionCtrl.CreateQuestion)
	questions.Put("/:id", questionCtrl.PutQuestion)
	questions.Patch("/:id", questionCtrl.PatchQuestion)
	questions.Delete("/:id", questionCtrl.DeleteQuestion)

	responseCtrl := &controller.ResponseController{Handler: handler}
	responses := api.Group("/responses", middlewares.ResourceTag("Response"))
	responses.Get("/", responseCtrl.ListResponses)
	responses.Get("/:id", responseCtrl.GetResponse)
	responses.Post("/", responseCtrl.CreateResponse)
	responses.Put("/:id", responseCtrl.PutResponse)
	responses.Patch("/:id", responseCtrl.PatchResponse)
	responses.Delete("/:id", responseCtrl.DeleteResponse)
}
