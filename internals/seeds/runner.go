package seeds

import (
	subjects "schoolku_backend/internals/seeds/subjects"
	users "schoolku_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal (hanya dipanggil saat RUN_SEEDS=true)
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	subjects.SeedSubjectsFromJSON(db, "internals/seeds/subjects/data_subjects.json")
}
