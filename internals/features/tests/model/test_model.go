// internals/features/tests/model/test_model.go
package model

import (
	surveyModel "surveyku_backend/internals/features/surveys/model"
)

// TestModel merekam pengerjaan satu survey oleh user: kumpulan Decision
// plus skor akhir. Scoring di sini nilai tersimpan, bukan hasil hitung.
type TestModel struct {
	IDTest int `gorm:"column:id_test;primaryKey;autoIncrement" json:"idTest"`

	SurveyID *int                     `gorm:"column:id_survey" json:"survey,omitempty"`
	Survey   *surveyModel.SurveyModel `gorm:"-" json:"-"`

	Scoring int `gorm:"column:scoring" json:"scoring"`

	Decisions []*DecisionModel `gorm:"foreignKey:TestID;references:IDTest;constraint:OnDelete:CASCADE" json:"decisions"`

	surveyModel.Timestamps
}

func (TestModel) TableName() string { return "test" }
