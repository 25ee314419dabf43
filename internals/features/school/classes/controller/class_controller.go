package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/classes/dto"
	"schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// POST /api/classes/
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	class := req.ToModel()
	if err := cc.DB.Create(class).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Class name already exists")
		}
		log.Println("[ERROR] create class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created successfully", class)
}

// GET /api/classes/
func (cc *ClassController) GetClasses(c *fiber.Ctx) error {
	var classes []model.ClassModel
	if err := cc.DB.Find(&classes).Error; err != nil {
		log.Println("[ERROR] fetch classes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve classes")
	}
	if len(classes) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No classes found")
	}
	return helper.JsonOK(c, "Classes fetched successfully", classes)
}

// GET /api/classes/:id
func (cc *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID format")
	}

	var class model.ClassModel
	if err := cc.DB.First(&class, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonOK(c, "Class fetched successfully", class)
}

// PUT /api/classes/:id — partial update.
// Balas 201, bukan 200 — perilaku API lama dipertahankan.
func (cc *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID format")
	}

	var class model.ClassModel
	if err := cc.DB.First(&class, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	req.ApplyToModel(&class)

	if err := cc.DB.Save(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Class name already exists")
		}
		log.Println("[ERROR] update class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.JsonWithCode(c, fiber.StatusCreated, "Class updated successfully", class)
}

// DELETE /api/classes/:id — balas 201 (perilaku lama), cascade relasi + scores
func (cc *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID format")
	}

	var class model.ClassModel
	if err := cc.DB.First(&class, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM scores WHERE class_id = ?",
			"DELETE FROM class_subjects WHERE class_id = ?",
			"DELETE FROM students_classes WHERE class_id = ?",
			"DELETE FROM school_classes WHERE class_id = ?",
		} {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.ClassModel{}, "id = ?", id).Error
	})
	if err != nil {
		log.Println("[ERROR] delete class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	return helper.JsonWithCode(c, fiber.StatusCreated, "Class deleted successfully", nil)
}
