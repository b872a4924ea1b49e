package referentials

import (
	"log"

	"gorm.io/gorm"

	model "surveyku_backend/internals/features/referentials/model"
)

// SeedQuestionFormats mengisi lookup format pertanyaan. Idempoten:
// dipanggil berkali-kali tidak bikin baris ganda.
func SeedQuestionFormats(db *gorm.DB) {
	formats := []model.QuestionFormatModel{
		{Name: "CHECKBOX", Code: "checkbox"},
		{Name: "RADIO", Code: "radio"},
		{Name: "TEXT", Code: "text"},
	}

	for _, f := range formats {
		var existing model.QuestionFormatModel
		err := db.Where("code = ?", f.Code).FirstOrCreate(&existing, f).Error
		if err != nil {
			log.Printf("❌ Gagal seed question_format %s: %v", f.Code, err)
			continue
		}
	}
	log.Println("✅ Seed question_format selesai.")
}
