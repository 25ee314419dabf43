package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/school/classes/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// SchoolModel merepresentasikan tabel schools di database
type SchoolModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Address   string    `gorm:"size:100;not null" json:"address"`
	Phone     string    `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email     string    `gorm:"size:250;uniqueIndex;not null" json:"email"`
	Color     string    `gorm:"size:100;default:'blue'" json:"color"`
	Logo      string    `gorm:"size:100;default:'default.png'" json:"logo"`
	Motto     string    `gorm:"size:100;default:'Education for all'" json:"motto"`
	City      string    `gorm:"size:100;not null;default:'Lagos'" json:"city"`
	State     string    `gorm:"size:100;not null;default:'Lagos'" json:"state"`
	Country   string    `gorm:"size:100;default:'Nigeria'" json:"country"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	OwnerID *uuid.UUID           `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Owner   *userModel.UserModel `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	// tabel relasi: school_students, school_teachers, schools_subjects, school_classes
	Students []userModel.UserModel       `gorm:"many2many:school_students;joinForeignKey:SchoolID;joinReferences:StudentID" json:"students,omitempty"`
	Teachers []userModel.UserModel       `gorm:"many2many:school_teachers;joinForeignKey:SchoolID;joinReferences:TeacherID" json:"teachers,omitempty"`
	Subjects []subjectModel.SubjectModel `gorm:"many2many:schools_subjects;joinForeignKey:SchoolID;joinReferences:SubjectID" json:"subjects,omitempty"`
	Classes  []classModel.ClassModel     `gorm:"many2many:school_classes;joinForeignKey:SchoolID;joinReferences:ClassID" json:"classes,omitempty"`
}

func (SchoolModel) TableName() string {
	return "schools"
}

func (s *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
