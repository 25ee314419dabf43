package dto

import (
	"strings"
)

type LaunchTaskRequest struct {
	Name        string         `json:"name" validate:"required,max=128"`
	Description string         `json:"description" validate:"omitempty,max=128"`
	Kwargs      map[string]any `json:"kwargs,omitempty"`
}

func (r *LaunchTaskRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}
