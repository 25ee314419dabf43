package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/user/dto"
	"schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	authMw "schoolku_backend/internals/middlewares/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users/
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := uc.DB.Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}
	if len(users) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No users found")
	}
	return helper.JsonOK(c, "Users fetched successfully", dto.ToUserResponses(users))
}

// GET /api/users/profile — profil user dari JWT
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user, ok := authMw.CurrentUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "User profile fetched successfully", dto.ToUserResponse(user))
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "User fetched successfully", dto.ToUserResponse(&user))
}

// GET /api/users/role/:role
func (uc *UserController) GetUsersByRole(c *fiber.Ctx) error {
	role := strings.ToLower(c.Params("role"))

	var users []model.UserModel
	if err := uc.DB.Where("role = ?", role).Find(&users).Error; err != nil {
		log.Println("[ERROR] fetch users by role:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}
	if len(users) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No users found with that role")
	}
	return helper.JsonOK(c, "Users fetched successfully", dto.ToUserResponses(users))
}

// PUT /api/users/:id — partial update, field yang tidak dikirim dibiarkan
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := req.ApplyToModel(&user); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or phone already in use")
		}
		log.Println("[ERROR] update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "User updated successfully", dto.ToUserResponse(&user))
}

// DELETE /api/users/:id — hapus user + semua baris relasinya.
// Cascade dilakukan eksplisit dalam satu transaksi supaya tidak ada
// baris join yang menggantung.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM scores WHERE student_id = ?", id).Error; err != nil {
			return err
		}
		for _, stmt := range []string{
			"DELETE FROM users_subjects WHERE user_id = ?",
			"DELETE FROM school_students WHERE student_id = ?",
			"DELETE FROM school_teachers WHERE teacher_id = ?",
			"DELETE FROM students_classes WHERE student_id = ?",
			"DELETE FROM student_reports WHERE user_id = ?",
		} {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		// report yang dia generate tetap ada, hanya dilepas dari user;
		// record task miliknya ikut terhapus (FK tasks.user_id NOT NULL)
		if err := tx.Exec("UPDATE reports SET generator_id = NULL WHERE generator_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tasks WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		// sekolah yang dimiliki user ikut terhapus (cascade ke relasinya)
		var ownedIDs []uuid.UUID
		if err := tx.Table("schools").Where("owner_id = ?", id).Pluck("id", &ownedIDs).Error; err != nil {
			return err
		}
		for _, sid := range ownedIDs {
			if err := deleteSchoolCascade(tx, sid); err != nil {
				return err
			}
		}
		return tx.Delete(&model.UserModel{}, "id = ?", id).Error
	})
	if err != nil {
		log.Println("[ERROR] delete user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "User deleted successfully", dto.ToUserResponse(&user))
}

// deleteSchoolCascade membersihkan baris relasi sekolah lalu sekolahnya.
func deleteSchoolCascade(tx *gorm.DB, schoolID uuid.UUID) error {
	for _, stmt := range []string{
		"DELETE FROM school_students WHERE school_id = ?",
		"DELETE FROM school_teachers WHERE school_id = ?",
		"DELETE FROM schools_subjects WHERE school_id = ?",
		"DELETE FROM school_classes WHERE school_id = ?",
	} {
		if err := tx.Exec(stmt, schoolID).Error; err != nil {
			return err
		}
	}
	return tx.Exec("DELETE FROM schools WHERE id = ?", schoolID).Error
}
