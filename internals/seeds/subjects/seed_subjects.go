package subjects

import (
	"encoding/json"
	"log"
	"os"

	"schoolku_backend/internals/features/school/subjects/model"

	"gorm.io/gorm"
)

type SubjectSeed struct {
	Name string `json:"name"`
}

func SeedSubjectsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file subject:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []SubjectSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.SubjectModel
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Subject '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		if err := db.Create(&model.SubjectModel{Name: data.Name}).Error; err != nil {
			log.Printf("❌ Gagal insert subject '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Subject '%s' berhasil ditambahkan.", data.Name)
	}
}
