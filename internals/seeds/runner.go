package seeds

import (
	"gorm.io/gorm"

	referentials "surveyku_backend/internals/seeds/referentials"
)

func RunAllSeeds(db *gorm.DB) {
	//* Referential
	referentials.SeedQuestionFormats(db)
}
