package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uModel "schoolku_backend/internals/features/users/user/model"
)

func TestParseBirthday_DateOnly(t *testing.T) {
	got, err := ParseBirthday("1995-04-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC), got)
}

func TestParseBirthday_RFC3339NarrowedToDate(t *testing.T) {
	got, err := ParseBirthday("1995-04-12T15:30:45+01:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC), got)
}

func TestParseBirthday_Garbage(t *testing.T) {
	_, err := ParseBirthday("12/04/1995")
	assert.Error(t, err)
}

func TestCreateUserRequest_NormalizeLowercasesEmail(t *testing.T) {
	req := CreateUserRequest{
		FirstName: "  Amina ",
		Email:     " Amina@Example.COM ",
	}
	req.Normalize()
	assert.Equal(t, "Amina", req.FirstName)
	assert.Equal(t, "amina@example.com", req.Email)
}

func TestUpdateUserRequest_ApplyToModelSkipsNil(t *testing.T) {
	user := mustUser(t)
	name := "Changed"
	req := UpdateUserRequest{FirstName: &name}
	require.NoError(t, req.ApplyToModel(user))

	assert.Equal(t, "Changed", user.FirstName)
	assert.Equal(t, "keep@example.com", user.Email)
}

func mustUser(t *testing.T) *uModel.UserModel {
	t.Helper()
	req := CreateUserRequest{
		FirstName: "Keep",
		LastName:  "Me",
		Email:     "keep@example.com",
		Phone:     "+2348000000000",
		Birthday:  "2000-01-01",
	}
	u, err := req.ToModel()
	require.NoError(t, err)
	return u
}
