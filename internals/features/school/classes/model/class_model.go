package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// ClassModel merepresentasikan tabel classes di database
type ClassModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:250" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// tabel relasi: class_subjects, students_classes
	Subjects []subjectModel.SubjectModel `gorm:"many2many:class_subjects;joinForeignKey:ClassID;joinReferences:SubjectID" json:"subjects,omitempty"`
	Students []userModel.UserModel       `gorm:"many2many:students_classes;joinForeignKey:ClassID;joinReferences:StudentID" json:"students,omitempty"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (cl *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return nil
}
