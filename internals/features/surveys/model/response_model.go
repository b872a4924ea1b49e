// internals/features/surveys/model/response_model.go
package model

type ResponseModel struct {
	IDResponse int `gorm:"column:id_response;primaryKey;autoIncrement" json:"idResponse"`

	ContentResponse string `gorm:"column:content_response;type:varchar(255);not null" json:"contentResponse"`

	QuestionID *int           `gorm:"column:id_question" json:"question,omitempty"`
	Question   *QuestionModel `gorm:"-" json:"-"`

	// keduanya wajib; pointer supaya "belum diisi" kelihatan saat validasi
	IsGoodResponse *bool `gorm:"column:is_good_response" json:"isGoodResponse"`
	Scoring        *int  `gorm:"column:scoring" json:"scoring"`

	BaseEntity
	Timestamps
}

func (ResponseModel) TableName() string { return "response" }
