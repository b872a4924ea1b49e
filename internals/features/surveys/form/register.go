// internals/features/surveys/form/register.go
package form

import (
	"surveyku_backend/internals/resource"
)

// RegisterSchemas mendaftarkan seluruh resource keluarga survey.
// Dipanggil sekali dari setup routes.
func RegisterSchemas(reg *resource.Registry) {
	reg.Register(SurveySchema())
	reg.Register(QuestionSchema())
	reg.Register(ResponseSchema())
}
