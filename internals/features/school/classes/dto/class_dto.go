package dto

import (
	"strings"

	cModel "schoolku_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=250"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateClassRequest) ToModel() *cModel.ClassModel {
	return &cModel.ClassModel{
		Name:        r.Name,
		Description: r.Description,
	}
}

// UpdateClassRequest — partial update
type UpdateClassRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=250"`
}

func (r *UpdateClassRequest) ApplyToModel(m *cModel.ClassModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
}
