package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "schoolku_backend/internals/features/users/user/model"
)

// ReportModel merepresentasikan tabel reports di database.
// Catatan skema lama: session di sini integer (tahun), sedangkan
// session di scores string — dipertahankan apa adanya.
type ReportModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	URL       string    `gorm:"size:150;not null" json:"url"`
	Term      string    `gorm:"type:varchar(10);not null" json:"term"`
	Session   int       `gorm:"not null" json:"session"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	GeneratorID *uuid.UUID           `gorm:"type:uuid;index" json:"generator_id,omitempty"`
	Generator   *userModel.UserModel `gorm:"foreignKey:GeneratorID" json:"-"`

	// tabel relasi: student_reports
	Students []userModel.UserModel `gorm:"many2many:student_reports;joinForeignKey:ReportID;joinReferences:UserID" json:"students,omitempty"`
}

func (ReportModel) TableName() string {
	return "reports"
}

func (r *ReportModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
