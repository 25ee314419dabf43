package dto

import (
	"strings"

	sModel "schoolku_backend/internals/features/school/subjects/model"
)

type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=250"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateSubjectRequest) ToModel() *sModel.SubjectModel {
	return &sModel.SubjectModel{
		Name:        r.Name,
		Description: r.Description,
	}
}

// UpdateSubjectRequest — partial update
type UpdateSubjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=250"`
}

func (r *UpdateSubjectRequest) ApplyToModel(m *sModel.SubjectModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
}
