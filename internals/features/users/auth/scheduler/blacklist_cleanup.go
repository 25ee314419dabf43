package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authModel "schoolku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus entri revoked_tokens yang
// sudah lewat masa hidup tokennya (token expired tidak butuh blacklist).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().UTC().Add(-(configs.AccessTokenTTL + 24*time.Hour))
			res := db.Where("date_revoked < ?", cutoff).Delete(&authModel.RevokedTokenModel{})
			if res.Error != nil {
				log.Println("[ERROR] blacklist cleanup:", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup: %d entri dihapus", res.RowsAffected)
			}
		}
	}()
}
