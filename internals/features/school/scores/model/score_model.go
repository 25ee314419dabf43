package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/school/classes/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// ScoreModel adalah fact entity tiga arah: satu nilai milik
// kombinasi (class, subject, student). Kombinasi itu unik —
// submit ulang utk triple yang sama ditolak 409, bukan di-upsert.
type ScoreModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Score   int       `gorm:"not null" json:"score"`
	Term    string    `gorm:"type:varchar(10);not null" json:"term"`
	Session string    `gorm:"size:100;not null" json:"session"`
	Type    string    `gorm:"type:varchar(20);not null" json:"type"`

	ClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_scores_class_subject_student" json:"class_id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_scores_class_subject_student" json:"subject_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_scores_class_subject_student" json:"student_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Class   *classModel.ClassModel     `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Subject *subjectModel.SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Student *userModel.UserModel       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (ScoreModel) TableName() string {
	return "scores"
}

func (s *ScoreModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
