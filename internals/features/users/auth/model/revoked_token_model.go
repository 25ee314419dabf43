package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevokedTokenModel menyimpan jti dari token yang sudah di-logout.
// Token yang jti-nya ada di sini ditolak walau signature/expiry valid.
type RevokedTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Jti         string    `gorm:"size:120;index;not null" json:"jti"`
	DateRevoked time.Time `gorm:"autoCreateTime" json:"date_revoked"`
}

func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}

func (r *RevokedTokenModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsJtiBlacklisted mengecek apakah jti ada di tabel revoked_tokens
func IsJtiBlacklisted(db *gorm.DB, jti string) (bool, error) {
	var count int64
	if err := db.Model(&RevokedTokenModel{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
