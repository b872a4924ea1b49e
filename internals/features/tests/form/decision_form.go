// internals/features/tests/form/decision_form.go
package form

import (
	surveyModel "surveyku_backend/internals/features/surveys/model"
	model "surveyku_backend/internals/features/tests/model"
	"surveyku_backend/internals/resource"
)

// DecisionSchema: response sengaja nullable — jawaban teks bebas masuk
// lewat dynamicResponse saat tidak ada Response terdefinisi yang cocok.
func DecisionSchema() *resource.Schema {
	return &resource.Schema{
		Resource: "Decision",
		IDColumn: "id_decision",
		IDField:  "idDecision",
		New:      func() any { return &model.DecisionModel{} },
		Slice:    func() any { return &[]*model.DecisionModel{} },
		Len:      func(list any) int { return len(*list.(*[]*model.DecisionModel)) },
		IDOf:     func(e any) int { return e.(*model.DecisionModel).IDDecision },
		Fields: []resource.FieldBinding{
			{
				Name: "test", Kind: resource.KindEntity, Resource: "Test",
				GetRef: func(e any) any {
					d := e.(*model.DecisionModel)
					if d.Test == nil {
						return nil
					}
					return d.Test
				},
				SetRef: func(e any, ref any) {
					d := e.(*model.DecisionModel)
					if ref == nil {
						d.Test = nil
						d.TestID = nil
						return
					}
					t := ref.(*model.TestModel)
					d.Test = t
					id := t.IDTest
					d.TestID = &id
				},
			},
			{
				Name: "dynamicResponse", Kind: resource.KindText,
				GetText: func(e any) *string { return e.(*model.DecisionModel).DynamicResponse },
				SetText: func(e any, v *string) { e.(*model.DecisionModel).DynamicResponse = v },
			},
			{
				Name: "question", Kind: resource.KindEntity, Resource: "Question",
				GetRef: func(e any) any {
					d := e.(*model.DecisionModel)
					if d.Question == nil {
						return nil
					}
					return d.Question
				},
				SetRef: func(e any, ref any) {
					d := e.(*model.DecisionModel)
					if ref == nil {
						d.Question = nil
						d.QuestionID = nil
						return
					}
					q := ref.(*surveyModel.QuestionModel)
					d.Question = q
					id := q.IDQuestion
					d.QuestionID = &id
				},
			},
			{
				Name: "response", Kind: resource.KindEntity, Resource: "Response",
				GetRef: func(e any) any {
					d := e.(*model.DecisionModel)
					if d.Response == nil {
						return nil
					}
					return d.Response
				},
				SetRef: func(e any, ref any) {
					d := e.(*model.DecisionModel)
					if ref == nil {
						d.Response = nil
						d.ResponseID = nil
						return
					}
					r := ref.(*surveyModel.ResponseModel)
					d.Response = r
					id := r.IDResponse
					d.ResponseID = &id
				},
			},
		},
	}
}
