package dto

import (
	"github.com/google/uuid"

	rModel "schoolku_backend/internals/features/school/reports/model"
)

type CreateReportRequest struct {
	URL        string      `json:"url" validate:"required,max=150"`
	Term       string      `json:"term" validate:"required,oneof=first second third"`
	Session    int         `json:"session" validate:"required"`
	Comment    string      `json:"comment" validate:"omitempty"`
	StudentIDs []uuid.UUID `json:"student_ids" validate:"omitempty,dive,required"`
}

func (r *CreateReportRequest) ToModel() *rModel.ReportModel {
	return &rModel.ReportModel{
		URL:     r.URL,
		Term:    r.Term,
		Session: r.Session,
		Comment: r.Comment,
	}
}

// UpdateReportRequest — partial update
type UpdateReportRequest struct {
	URL     *string `json:"url,omitempty" validate:"omitempty,max=150"`
	Term    *string `json:"term,omitempty" validate:"omitempty,oneof=first second third"`
	Session *int    `json:"session,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

func (r *UpdateReportRequest) ApplyToModel(m *rModel.ReportModel) {
	if r.URL != nil {
		m.URL = *r.URL
	}
	if r.Term != nil {
		m.Term = *r.Term
	}
	if r.Session != nil {
		m.Session = *r.Session
	}
	if r.Comment != nil {
		m.Comment = *r.Comment
	}
}
