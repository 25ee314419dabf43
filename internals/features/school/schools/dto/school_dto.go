package dto

import (
	"strings"

	"github.com/google/uuid"

	sModel "schoolku_backend/internals/features/school/schools/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateSchoolRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,min=7,max=20"`
	Email   string `json:"email" validate:"required,email,max=250"`
	Color   string `json:"color" validate:"omitempty,max=100"`
	Logo    string `json:"logo" validate:"omitempty,max=100"`
	Motto   string `json:"motto" validate:"omitempty,max=100"`
	City    string `json:"city" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=100"`
	Country string `json:"country" validate:"omitempty,max=100"`
}

func (r *CreateSchoolRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

func (r *CreateSchoolRequest) ToModel() *sModel.SchoolModel {
	return &sModel.SchoolModel{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Color:   r.Color,
		Logo:    r.Logo,
		Motto:   r.Motto,
		City:    r.City,
		State:   r.State,
		Country: r.Country,
	}
}

// UpdateSchoolRequest — partial update, hanya field non-nil yang dipakai
type UpdateSchoolRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email,max=250"`
	Color   *string `json:"color,omitempty" validate:"omitempty,max=100"`
	Logo    *string `json:"logo,omitempty" validate:"omitempty,max=100"`
	Motto   *string `json:"motto,omitempty" validate:"omitempty,max=100"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateSchoolRequest) ApplyToModel(m *sModel.SchoolModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Address != nil {
		m.Address = strings.TrimSpace(*r.Address)
	}
	if r.Phone != nil {
		m.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.Email != nil {
		m.Email = strings.TrimSpace(strings.ToLower(*r.Email))
	}
	if r.Color != nil {
		m.Color = *r.Color
	}
	if r.Logo != nil {
		m.Logo = *r.Logo
	}
	if r.Motto != nil {
		m.Motto = *r.Motto
	}
	if r.City != nil {
		m.City = *r.City
	}
	if r.State != nil {
		m.State = *r.State
	}
	if r.Country != nil {
		m.Country = *r.Country
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type SchoolResponse struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	Address string     `json:"address"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Color   string     `json:"color"`
	Logo    string     `json:"logo"`
	Motto   string     `json:"motto"`
	City    string     `json:"city"`
	State   string     `json:"state"`
	Country string     `json:"country"`
	OwnerID *uuid.UUID `json:"owner_id,omitempty"`
}

func ToSchoolResponse(m *sModel.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:      m.ID,
		Name:    m.Name,
		Address: m.Address,
		Phone:   m.Phone,
		Email:   m.Email,
		Color:   m.Color,
		Logo:    m.Logo,
		Motto:   m.Motto,
		City:    m.City,
		State:   m.State,
		Country: m.Country,
		OwnerID: m.OwnerID,
	}
}

func ToSchoolResponses(ms []sModel.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToSchoolResponse(&ms[i]))
	}
	return out
}
