package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// UserResolver dipakai middleware untuk menukar sub claim jadi user record.
// Dependensi ini di-inject dari route setup, bukan hook global.
type UserResolver func(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)

// DBUserResolver adalah resolver default yang membaca tabel users.
func DBUserResolver(db *gorm.DB) UserResolver {
	return func(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
		var user userModel.UserModel
		if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get("Authorization"))
	if h == "" {
		return "", errors.New("Authorization header kosong")
	}
	if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return "", errors.New("Authorization harus Bearer token")
	}
	return strings.TrimSpace(h[len("bearer "):]), nil
}

// AuthMiddleware memverifikasi bearer token + blacklist, lalu resolve user.
func AuthMiddleware(db *gorm.DB, resolve UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims, err := authService.VerifyAccessToken(db, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, authService.ErrTokenExpired):
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
			case errors.Is(err, authService.ErrTokenRevoked):
				log.Println("[WARNING] Token ditemukan di blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token has been revoked")
			case errors.Is(err, authService.ErrTokenInvalid):
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid")
			default:
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
		}

		userID, err := authService.SubjectFromClaims(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		user, err := resolve(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Println("[ERROR] resolve user:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		jti, _ := claims["jti"].(string)
		c.Locals("user_id", user.ID.String())
		c.Locals("user_role", user.Role)
		c.Locals("current_user", user)
		c.Locals("jti", jti)
		c.Locals("access_token", tokenString)
		return c.Next()
	}
}

// CurrentUser mengambil user hasil resolve dari Locals.
func CurrentUser(c *fiber.Ctx) (*userModel.UserModel, bool) {
	u, ok := c.Locals("current_user").(*userModel.UserModel)
	return u, ok
}
