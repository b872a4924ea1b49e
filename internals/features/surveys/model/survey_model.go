// internals/features/surveys/model/survey_model.go
package model

// NOTE:
// - duration_survey & description nullable di level validasi (pointer),
//   constraint NotBlank-nya dicek pipeline form sebelum flush
// - Questions dimiliki Survey: cascade delete, dibaca ascending "order"
type SurveyModel struct {
	IDSurvey int `gorm:"column:id_survey;primaryKey;autoIncrement" json:"idSurvey"`

	TitleSurvey string  `gorm:"column:title_survey;type:varchar(255);not null" json:"titleSurvey"`
	Description *string `gorm:"column:description_survey;type:varchar(255)" json:"description"`

	DurationSurvey *int `gorm:"column:duration_survey" json:"durationSurvey"`
	Active         bool `gorm:"column:is_active;not null;default:false" json:"active"`

	Questions []*QuestionModel `gorm:"foreignKey:SurveyID;references:IDSurvey;constraint:OnDelete:CASCADE" json:"questions"`

	Timestamps
}

func (SurveyModel) TableName() string { return "survey" }
