package dto

import (
	"github.com/google/uuid"

	sModel "schoolku_backend/internals/features/school/scores/model"
)

type CreateScoreRequest struct {
	Score     int       `json:"score" validate:"min=0,max=100"`
	Term      string    `json:"term" validate:"required,oneof=first second third"`
	Session   string    `json:"session" validate:"required,max=100"`
	Type      string    `json:"type" validate:"required,oneof=CA exam test assignment project others"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

func (r *CreateScoreRequest) ToModel() *sModel.ScoreModel {
	return &sModel.ScoreModel{
		Score:     r.Score,
		Term:      r.Term,
		Session:   r.Session,
		Type:      r.Type,
		ClassID:   r.ClassID,
		SubjectID: r.SubjectID,
		StudentID: r.StudentID,
	}
}

// UpdateScoreRequest — partial update; identitas (class/subject/student)
// tidak bisa diganti lewat update, hanya payload nilainya.
type UpdateScoreRequest struct {
	Score   *int    `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	Term    *string `json:"term,omitempty" validate:"omitempty,oneof=first second third"`
	Session *string `json:"session,omitempty" validate:"omitempty,max=100"`
	Type    *string `json:"type,omitempty" validate:"omitempty,oneof=CA exam test assignment project others"`
}

func (r *UpdateScoreRequest) ApplyToModel(m *sModel.ScoreModel) {
	if r.Score != nil {
		m.Score = *r.Score
	}
	if r.Term != nil {
		m.Term = *r.Term
	}
	if r.Session != nil {
		m.Session = *r.Session
	}
	if r.Type != nil {
		m.Type = *r.Type
	}
}
