// internals/features/tests/form/test_form.go
package form

import (
	surveyModel "surveyku_backend/internals/features/surveys/model"
	model "surveyku_backend/internals/features/tests/model"
	"surveyku_backend/internals/resource"
)

// TestSchema: pengerjaan survey. Tidak ada constraint field — scoring
// nilai tersimpan, decisions boleh kosong.
func TestSchema() *resource.Schema {
	return &resource.Schema{
		Resource: "Test",
		IDColumn: "id_test",
		IDField:  "idTest",
		New:      func() any { return &model.TestModel{} },
		Slice:    func() any { return &[]*model.TestModel{} },
		Len:      func(list any) int { return len(*list.(*[]*model.TestModel)) },
		IDOf:     func(e any) int { return e.(*model.TestModel).IDTest },
		Preloads: []resource.Preload{
			{Name: "Decisions"},
		},
		Fields: []resource.FieldBinding{
			{
				Name: "survey", Kind: resource.KindEntity, Resource: "Survey",
				GetRef: func(e any) any {
					t := e.(*model.TestModel)
					if t.Survey == nil {
						return nil
					}
					return t.Survey
				},
				SetRef: func(e any, ref any) {
					t := e.(*model.TestModel)
					if ref == nil {
						t.Survey = nil
						t.SurveyID = nil
						return
					}
					s := ref.(*surveyModel.SurveyModel)
					t.Survey = s
					id := s.IDSurvey
					t.SurveyID = &id
				},
			},
			{
				Name: "scoring", Kind: resource.KindInteger,
				GetInt: func(e any) *int { return &e.(*model.TestModel).Scoring },
				SetInt: func(e any, v *int) {
					t := e.(*model.TestModel)
					if v == nil {
						t.Scoring = 0
						return
					}
					t.Scoring = *v
				},
			},
			{
				Name: "decisions", Kind: resource.KindCollection, Resource: "Decision", ParentField: "test",
				Items: func(owner any) []any {
					t := owner.(*model.TestModel)
					out := make([]any, 0, len(t.Decisions))
					for _, d := range t.Decisions {
						out = append(out, d)
					}
					return out
				},
				ItemID: func(item any) int { return item.(*model.DecisionModel).IDDecision },
				Add: func(owner, item any) {
					t := owner.(*model.TestModel)
					d := item.(*model.DecisionModel)
					t.Decisions = append(t.Decisions, d)
					d.Test = t
					if t.IDTest != 0 {
						id := t.IDTest
						d.TestID = &id
					}
				},
				Remove: func(owner, item any) {
					t := owner.(*model.TestModel)
					d := item.(*model.DecisionModel)
					for i, cur := range t.Decisions {
						if cur == d {
							t.Decisions = append(t.Decisions[:i], t.Decisions[i+1:]...)
							break
						}
					}
					d.Test = nil
					d.TestID = nil
				},
			},
		},
	}
}

func RegisterSchemas(reg *resource.Registry) {
	reg.Register(TestSchema())
	reg.Register(DecisionSchema())
}
