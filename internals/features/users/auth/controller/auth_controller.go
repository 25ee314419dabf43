package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "schoolku_backend/internals/features/users/auth/service"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	user, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.PasswordHash = hash

	if err := ac.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or phone already registered")
		}
		log.Println("[ERROR] create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created successfully", userDTO.ToUserResponse(user))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "email = ?", input.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := authService.CheckPassword(user.PasswordHash, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := authService.IssueAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"user":         userDTO.ToUserResponse(&user),
	})
}

// DELETE /api/auth/logout — revoke jti token yang sedang dipakai
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("access_token").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := authService.RevokeToken(ac.DB, tokenString); err != nil {
		log.Println("[ERROR] revoke token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}
	return helper.JsonOK(c, "Access token revoked", nil)
}
