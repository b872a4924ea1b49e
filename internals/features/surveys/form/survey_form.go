// internals/features/surveys/form/survey_form.go
package form

import (
	model "surveyku_backend/internals/features/surveys/model"
	"surveyku_backend/internals/resource"
)

// SurveySchema: definisi form resource "Survey". titleSurvey,
// description, dan durationSurvey wajib; questions adalah collection
// sub-form yang divalidasi dalam.
func SurveySchema() *resource.Schema {
	return &resource.Schema{
		Resource: "Survey",
		IDColumn: "id_survey",
		IDField:  "idSurvey",
		New:      func() any { return &model.SurveyModel{} },
		Slice:    func() any { return &[]*model.SurveyModel{} },
		Len:      func(list any) int { return len(*list.(*[]*model.SurveyModel)) },
		IDOf:     func(e any) int { return e.(*model.SurveyModel).IDSurvey },
		Preloads: []resource.Preload{
			{Name: "Questions", Order: `"order"`},
			{Name: "Questions.Responses", Order: `"order"`},
		},
		Fields: []resource.FieldBinding{
			{
				Name: "titleSurvey", Kind: resource.KindText, NotBlank: true,
				GetText: func(e any) *string {
					s := e.(*model.SurveyModel)
					if s.TitleSurvey == "" {
						return nil
					}
					return &s.TitleSurvey
				},
				SetText: func(e any, v *string) {
					s := e.(*model.SurveyModel)
					if v == nil {
						s.TitleSurvey = ""
						return
					}
					s.TitleSurvey = *v
				},
			},
			{
				Name: "description", Kind: resource.KindText, NotBlank: true,
				GetText: func(e any) *string { return e.(*model.SurveyModel).Description },
				SetText: func(e any, v *string) { e.(*model.SurveyModel).Description = v },
			},
			{
				Name: "durationSurvey", Kind: resource.KindInteger, NotBlank: true,
				GetInt: func(e any) *int { return e.(*model.SurveyModel).DurationSurvey },
				SetInt: func(e any, v *int) { e.(*model.SurveyModel).DurationSurvey = v },
			},
			{
				Name: "active", Kind: resource.KindBoolean,
				GetBool: func(e any) *bool { return &e.(*model.SurveyModel).Active },
				SetBool: func(e any, v *bool) {
					s := e.(*model.SurveyModel)
					if v == nil {
						s.Active = false
						return
					}
					s.Active = *v
				},
			},
			{
				Name: "questions", Kind: resource.KindCollection, Resource: "Question", ParentField: "survey",
				Items: func(owner any) []any {
					s := owner.(*model.SurveyModel)
					out := make([]any, 0, len(s.Questions))
					for _, q := range s.Questions {
						out = append(out, q)
					}
					return out
				},
				ItemID: func(item any) int { return item.(*model.QuestionModel).IDQuestion },
				Add: func(owner, item any) {
					s := owner.(*model.SurveyModel)
					q := item.(*model.QuestionModel)
					s.Questions = append(s.Questions, q)
					q.Survey = s
					if s.IDSurvey != 0 {
						id := s.IDSurvey
						q.SurveyID = &id
					}
				},
				Remove: func(owner, item any) {
					s := owner.(*model.SurveyModel)
					q := item.(*model.QuestionModel)
					for i, cur := range s.Questions {
						if cur == q {
							s.Questions = append(s.Questions[:i], s.Questions[i+1:]...)
							break
						}
					}
					q.Survey = nil
					q.SurveyID = nil
				},
			},
		},
	}
}
