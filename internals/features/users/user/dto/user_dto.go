package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "schoolku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — untuk register / create by admin
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Email     string `json:"email" validate:"required,email,max=120"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"omitempty,oneof=super_admin admin student teacher parent others"`
	Birthday  string `json:"birthday" validate:"required"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateUserRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Role = strings.TrimSpace(r.Role)
}

// ToModel — konversi ke model (hash password di controller!)
func (r *CreateUserRequest) ToModel() (*uModel.UserModel, error) {
	bd, err := ParseBirthday(r.Birthday)
	if err != nil {
		return nil, err
	}
	return &uModel.UserModel{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role,
		Birthday:  bd,
	}, nil
}

// UpdateUserRequest — partial update (pointer agar bisa bedakan omit vs isi)
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=super_admin admin student teacher parent others"`
	Birthday  *string `json:"birthday,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.FirstName != nil {
		v := strings.TrimSpace(*r.FirstName)
		r.FirstName = &v
	}
	if r.LastName != nil {
		v := strings.TrimSpace(*r.LastName)
		r.LastName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(*r.Role)
		r.Role = &v
	}
}

// ApplyToModel — terapkan perubahan parsial ke model existing.
// Field yang nil tidak disentuh. Birthday dipersempit ke tanggal saja.
func (r *UpdateUserRequest) ApplyToModel(m *uModel.UserModel) error {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.Birthday != nil {
		bd, err := ParseBirthday(*r.Birthday)
		if err != nil {
			return err
		}
		m.Birthday = bd
	}
	return nil
}

// ParseBirthday menerima "2006-01-02" atau RFC3339 dan membuang
// komponen jamnya (narrowing ke date, seperti perilaku lama).
func ParseBirthday(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, errors.New("birthday harus format YYYY-MM-DD")
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse — tanpa password hash dan tanpa timestamps
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Birthday  string    `json:"birthday"`
}

func ToUserResponse(m *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		Birthday:  m.Birthday.Format("2006-01-02"),
	}
}

func ToUserResponses(ms []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToUserResponse(&ms[i]))
	}
	return out
}
