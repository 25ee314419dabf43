package database

import (
	"log"

	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/school/classes/model"
	reportModel "schoolku_backend/internals/features/school/reports/model"
	schoolModel "schoolku_backend/internals/features/school/schools/model"
	scoreModel "schoolku_backend/internals/features/school/scores/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	taskModel "schoolku_backend/internals/features/tasks/model"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// AutoMigrate membuat semua tabel inti + tabel relasi many2many.
// Urutan penting: tabel yang direferensikan FK harus duluan.
func AutoMigrate(db *gorm.DB) error {
	log.Println("[INFO] Running AutoMigrate...")
	return db.AutoMigrate(
		&userModel.UserModel{},
		&subjectModel.SubjectModel{},
		&classModel.ClassModel{},
		&schoolModel.SchoolModel{},
		&scoreModel.ScoreModel{},
		&reportModel.ReportModel{},
		&authModel.RevokedTokenModel{},
		&taskModel.TaskModel{},
	)
}
