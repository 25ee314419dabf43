package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles menolak request kalau role user tidak ada di daftar.
// Dipasang SETELAH AuthMiddleware (butuh Locals "user_role").
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Forbidden - Role tidak diizinkan")
	}
}
