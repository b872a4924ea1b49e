// cmd/seeder: jalankan migrasi + seed referential tanpa menyalakan
// server. Dipakai sekali-sekali di CLI (deploy awal, reset data dev).
package main

import (
	"log"

	"surveyku_backend/internals/configs"
	database "surveyku_backend/internals/databases"
	"surveyku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	db := configs.InitSeederDB()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	seeds.RunAllSeeds(db)

	log.Println("✅ Seeder selesai.")
}
