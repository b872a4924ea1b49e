// internals/features/surveys/form/question_form.go
package form

import (
	referentialModel "surveyku_backend/internals/features/referentials/model"
	model "surveyku_backend/internals/features/surveys/model"
	"surveyku_backend/internals/resource"
)

func QuestionSchema() *resource.Schema {
	return &resource.Schema{
		Resource: "Question",
		IDColumn: "id_question",
		IDField:  "idQuestion",
		New:      func() any { return &model.QuestionModel{} },
		Slice:    func() any { return &[]*model.QuestionModel{} },
		Len:      func(list any) int { return len(*list.(*[]*model.QuestionModel)) },
		IDOf:     func(e any) int { return e.(*model.QuestionModel).IDQuestion },
		Preloads: []resource.Preload{
			{Name: "Responses", Order: `"order"`},
		},
		Fields: []resource.FieldBinding{
			{
				Name: "titleQuestion", Kind: resource.KindText, NotBlank: true,
				GetText: func(e any) *string {
					q := e.(*model.QuestionModel)
					if q.TitleQuestion == "" {
						return nil
					}
					return &q.TitleQuestion
				},
				SetText: func(e any, v *string) {
					q := e.(*model.QuestionModel)
					if v == nil {
						q.TitleQuestion = ""
						return
					}
					q.TitleQuestion = *v
				},
			},
			{
				Name: "survey", Kind: resource.KindEntity, Resource: "Survey",
				GetRef: func(e any) any {
					q := e.(*model.QuestionModel)
					if q.Survey == nil {
						return nil
					}
					return q.Survey
				},
				SetRef: func(e any, ref any) {
					q := e.(*model.QuestionModel)
					if ref == nil {
						q.Survey = nil
						q.SurveyID = nil
						return
					}
					s := ref.(*model.SurveyModel)
					q.Survey = s
					id := s.IDSurvey
					q.SurveyID = &id
				},
			},
			{
				Name: "format", Kind: resource.KindEntity, Resource: "QuestionFormat",
				GetRef: func(e any) any {
					q := e.(*model.QuestionModel)
					if q.Format == nil {
						return nil
					}
					return q.Format
				},
				SetRef: func(e any, ref any) {
					q := e.(*model.QuestionModel)
					if ref == nil {
						q.Format = nil
						q.FormatID = nil
						return
					}
					f := ref.(*referentialModel.QuestionFormatModel)
					q.Format = f
					id := f.ID
					q.FormatID = &id
				},
			},
			{
				Name: "responses", Kind: resource.KindCollection, Resource: "Response", ParentField: "question",
				Items: func(owner any) []any {
					q := owner.(*model.QuestionModel)
					out := make([]any, 0, len(q.Responses))
					for _, r := range q.Responses {
						out = append(out, r)
					}
					return out
				},
				ItemID: func(item any) int { return item.(*model.ResponseModel).IDResponse },
				Add: func(owner, item any) {
					q := owner.(*model.QuestionModel)
					r := item.(*model.ResponseModel)
					q.Responses = append(q.Responses, r)
					r.Question = q
					if q.IDQuestion != 0 {
						id := q.IDQuestion
						r.QuestionID = &id
					}
				},
				Remove: func(owner, item any) {
					q := owner.(*model.QuestionModel)
					r := item.(*model.ResponseModel)
					for i, cur := range q.Responses {
						if cur == r {
							q.Responses = append(q.Responses[:i], q.Responses[i+1:]...)
							break
						}
					}
					r.Question = nil
					r.QuestionID = nil
				},
			},
			{
				Name: "order", Kind: resource.KindInteger,
				GetInt: func(e any) *int { return &e.(*model.QuestionModel).Order },
				SetInt: func(e any, v *int) {
					q := e.(*model.QuestionModel)
					if v == nil {
						q.Order = 0
						return
					}
					q.Order = *v
				},
			},
			{
				Name: "active", Kind: resource.KindBoolean,
				GetBool: func(e any) *bool { return &e.(*model.QuestionModel).Active },
				SetBool: func(e any, v *bool) {
					q := e.(*model.QuestionModel)
					if v == nil {
						q.Active = false
						return
					}
					q.Active = *v
				},
			},
		},
	}
}
