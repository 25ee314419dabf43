package helper

import (
	"github.com/go-playground/validator/v10"
)

// shared validator instance untuk semua DTO
var validate = validator.New()

func Validate() *validator.Validate {
	return validate
}

// ValidationErrorMap mengubah error validator.v10 jadi map field → pesan
func ValidationErrorMap(err error) map[string][]string {
	out := make(map[string][]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " harus minimal " + fe.Param() + " karakter."
		case "max":
			msg = field + " harus kurang dari " + fe.Param() + " karakter."
		case "oneof":
			msg = field + " harus salah satu dari: " + fe.Param() + "."
		case "uuid":
			msg = field + " harus berupa UUID."
		default:
			msg = "Format tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
