// internals/features/referentials/form/question_format_form.go
package form

import (
	model "surveyku_backend/internals/features/referentials/model"
	"surveyku_backend/internals/resource"
)

// QuestionFormatSchema terdaftar sebagai referential: dipakai untuk
// resolve reference "format" di Question dan untuk endpoint lookup
// /referentials/:type, bukan untuk CRUD generik.
func QuestionFormatSchema() *resource.Schema {
	return &resource.Schema{
		Resource:    "QuestionFormat",
		IDColumn:    "id",
		IDField:     "id",
		Referential: true,
		New:         func() any { return &model.QuestionFormatModel{} },
		Slice:       func() any { return &[]*model.QuestionFormatModel{} },
		Len:         func(list any) int { return len(*list.(*[]*model.QuestionFormatModel)) },
		IDOf:        func(e any) int { return e.(*model.QuestionFormatModel).ID },
		Fields: []resource.FieldBinding{
			{
				Name: "name", Kind: resource.KindText,
				GetText: func(e any) *string {
					m := e.(*model.QuestionFormatModel)
					if m.Name == "" {
						return nil
					}
					return &m.Name
				},
				SetText: func(e any, v *string) {
					m := e.(*model.QuestionFormatModel)
					if v == nil {
						m.Name = ""
						return
					}
					m.Name = *v
				},
			},
			{
				Name: "code", Kind: resource.KindText,
				GetText: func(e any) *string {
					m := e.(*model.QuestionFormatModel)
					if m.Code == "" {
						return nil
					}
					return &m.Code
				},
				SetText: func(e any, v *string) {
					m := e.(*model.QuestionFormatModel)
					if v == nil {
						m.Code = ""
						return
					}
					m.Code = *v
				},
			},
		},
	}
}

func RegisterSchemas(reg *resource.Registry) {
	reg.Register(QuestionFormatSchema())
}
