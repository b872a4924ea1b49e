// internals/features/surveys/model/question_model.go
package model

import (
	referentialModel "surveyku_backend/internals/features/referentials/model"
)

// Question milik tepat satu Survey (nullable saat dilepas) dan punya
// format referensi (CHECKBOX/RADIO/TEXT). Responses dimiliki Question:
// cascade delete, dibaca ascending "order".
//
// Back-reference (Survey, Format) tidak di-serialize — cukup id-nya —
// supaya JSON tidak berputar Survey→Question→Survey.
type QuestionModel struct {
	IDQuestion int `gorm:"column:id_question;primaryKey;autoIncrement" json:"idQuestion"`

	TitleQuestion string `gorm:"column:title_question;type:varchar(255);not null" json:"titleQuestion"`

	FormatID *int                                  `gorm:"column:id_format" json:"format,omitempty"`
	Format   *referentialModel.QuestionFormatModel `gorm:"-" json:"-"`

	SurveyID *int         `gorm:"column:id_survey" json:"survey,omitempty"`
	Survey   *SurveyModel `gorm:"-" json:"-"`

	Responses []*ResponseModel `gorm:"foreignKey:QuestionID;references:IDQuestion;constraint:OnDelete:CASCADE" json:"responses"`

	BaseEntity
	Timestamps
}

func (QuestionModel) TableName() string { return "question" }
