package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Term  string `validate:"required,oneof=first second third"`
}

func TestValidationErrorMap_PerFieldMessages(t *testing.T) {
	err := Validate().Struct(&sampleRequest{Email: "not-an-email", Term: "fourth"})
	require.Error(t, err)

	got := ValidationErrorMap(err)
	require.Contains(t, got, "Email")
	require.Contains(t, got, "Term")
	assert.Equal(t, []string{"Format email tidak valid."}, got["Email"])
	assert.Equal(t, []string{"Term harus salah satu dari: first second third."}, got["Term"])
}

func TestValidationErrorMap_RequiredFields(t *testing.T) {
	err := Validate().Struct(&sampleRequest{})
	require.Error(t, err)

	got := ValidationErrorMap(err)
	assert.Equal(t, []string{"Email wajib diisi."}, got["Email"])
	assert.Equal(t, []string{"Term wajib diisi."}, got["Term"])
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "TOO_MANY_REQUESTS", statusToErrorCode(429))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(503))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
