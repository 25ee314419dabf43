package users

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"schoolku_backend/internals/features/users/user/model"
	authService "schoolku_backend/internals/features/users/auth/service"

	"gorm.io/gorm"
)

type UserSeed struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Birthday  string `json:"birthday"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		birthday, err := time.Parse("2006-01-02", data.Birthday)
		if err != nil {
			log.Printf("❌ Format birthday tidak valid untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			FirstName:    data.FirstName,
			LastName:     data.LastName,
			Email:        data.Email,
			Phone:        data.Phone,
			PasswordHash: hashed,
			Role:         data.Role,
			Birthday:     birthday,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' berhasil ditambahkan.", data.Email)
	}
}
