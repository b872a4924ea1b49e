// internals/features/surveys/form/response_form.go
package form

import (
	model "surveyku_backend/internals/features/surveys/model"
	"surveyku_backend/internals/resource"
)

// ResponseSchema: question wajib (NotNull) — saat response dibuat
// nested di bawah Question, link-nya diisi otomatis oleh collection
// binding sebelum validasi jalan.
func ResponseSchema() *resource.Schema {
	return &resource.Schema{
		Resource: "Response",
		IDColumn: "id_response",
		IDField:  "idResponse",
		New:      func() any { return &model.ResponseModel{} },
		Slice:    func() any { return &[]*model.ResponseModel{} },
		Len:      func(list any) int { return len(*list.(*[]*model.ResponseModel)) },
		IDOf:     func(e any) int { return e.(*model.ResponseModel).IDResponse },
		Fields: []resource.FieldBinding{
			{
				Name: "contentResponse", Kind: resource.KindText, NotBlank: true,
				GetText: func(e any) *string {
					r := e.(*model.ResponseModel)
					if r.ContentResponse == "" {
						return nil
					}
					return &r.ContentResponse
				},
				SetText: func(e any, v *string) {
					r := e.(*model.ResponseModel)
					if v == nil {
						r.ContentResponse = ""
						return
					}
					r.ContentResponse = *v
				},
			},
			{
				Name: "question", Kind: resource.KindEntity, Resource: "Question", NotNull: true,
				GetRef: func(e any) any {
					r := e.(*model.ResponseModel)
					if r.Question == nil {
						return nil
					}
					return r.Question
				},
				SetRef: func(e any, ref any) {
					r := e.(*model.ResponseModel)
					if ref == nil {
						r.Question = nil
						r.QuestionID = nil
						return
					}
					q := ref.(*model.QuestionModel)
					r.Question = q
					id := q.IDQuestion
					r.QuestionID = &id
				},
			},
			{
				Name: "isGoodResponse", Kind: resource.KindBoolean, NotNull: true,
				GetBool: func(e any) *bool { return e.(*model.ResponseModel).IsGoodResponse },
				SetBool: func(e any, v *bool) { e.(*model.ResponseModel).IsGoodResponse = v },
			},
			{
				Name: "scoring", Kind: resource.KindInteger, NotBlank: true,
				GetInt: func(e any) *int { return e.(*model.ResponseModel).Scoring },
				SetInt: func(e any, v *int) { e.(*model.ResponseModel).Scoring = v },
			},
			{
				Name: "order", Kind: resource.KindInteger,
				GetInt: func(e any) *int { return &e.(*model.ResponseModel).Order },
				SetInt: func(e any, v *int) {
					r := e.(*model.ResponseModel)
					if v == nil {
						r.Order = 0
						return
					}
					r.Order = *v
				},
			},
			{
				Name: "active", Kind: resource.KindBoolean,
				GetBool: func(e any) *bool { return &e.(*model.ResponseModel).Active },
				SetBool: func(e any, v *bool) {
					r := e.(*model.ResponseModel)
					if v == nil {
						r.Active = false
						return
					}
					r.Active = *v
				},
			},
		},
	}
}
