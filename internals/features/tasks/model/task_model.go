package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "schoolku_backend/internals/features/users/user/model"
)

// TaskModel mencatat background job yang di-enqueue ke JobStore.
// task_id adalah job id dari queue eksternal, bukan PK tabel ini.
type TaskModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID      string            `gorm:"size:36;index;not null" json:"task_id"`
	Name        string            `gorm:"size:128;index;not null" json:"name"`
	Description string            `gorm:"size:128" json:"description"`
	Kwargs      datatypes.JSONMap `json:"kwargs,omitempty"`
	Complete    bool              `gorm:"not null;default:false" json:"complete"`

	UserID uuid.UUID            `gorm:"type:uuid;index;not null" json:"user_id"`
	User   *userModel.UserModel `gorm:"foreignKey:UserID" json:"-"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

func (t *TaskModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
