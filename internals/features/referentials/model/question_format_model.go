// internals/features/referentials/model/question_format_model.go
package model

// QuestionFormatModel: data referensi statis (keluarga "Referential").
// Di-seed sekali, tidak dibuat lewat pipeline CRUD generik.
type QuestionFormatModel struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Code string `gorm:"column:code;type:varchar(50);not null;uniqueIndex" json:"code"`
}

func (QuestionFormatModel) TableName() string { return "question_format" }
