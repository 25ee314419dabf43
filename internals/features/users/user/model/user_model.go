package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "schoolku_backend/internals/features/school/subjects/model"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string    `gorm:"size:50;not null" json:"first_name"`
	LastName     string    `gorm:"size:50;not null" json:"last_name"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'others'" json:"role"`
	Birthday     time.Time `gorm:"not null" json:"birthday"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// mapel yang diambil user (students), tabel relasi: users_subjects
	Subjects []subjectModel.SubjectModel `gorm:"many2many:users_subjects;joinForeignKey:UserID;joinReferences:SubjectID" json:"subjects,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = "others"
	}
	return nil
}
