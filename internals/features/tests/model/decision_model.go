// internals/features/tests/model/decision_model.go
package model

import (
	surveyModel "surveyku_backend/internals/features/surveys/model"
)

// Decision: jawaban satu pertanyaan dalam satu Test. Response nullable —
// jawaban bebas (format TEXT) masuk ke DynamicResponse, bukan ke
// Response yang sudah terdefinisi.
type DecisionModel struct {
	IDDecision int `gorm:"column:id_decision;primaryKey;autoIncrement" json:"idDecision"`

	TestID *int       `gorm:"column:id_test" json:"test,omitempty"`
	Test   *TestModel `gorm:"-" json:"-"`

	QuestionID *int                       `gorm:"column:id_question" json:"question,omitempty"`
	Question   *surveyModel.QuestionModel `gorm:"-" json:"-"`

	ResponseID *int                       `gorm:"column:id_response" json:"response,omitempty"`
	Response   *surveyModel.ResponseModel `gorm:"-" json:"-"`

	DynamicResponse *string `gorm:"column:dynamic_response;type:varchar(255)" json:"dynamicResponse,omitempty"`

	surveyModel.Timestamps
}

func (DecisionModel) TableName() string { return "decision" }
