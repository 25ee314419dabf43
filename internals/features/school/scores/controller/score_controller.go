package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/scores/dto"
	"schoolku_backend/internals/features/school/scores/model"
	helper "schoolku_backend/internals/helpers"
)

type ScoreController struct {
	DB *gorm.DB
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{DB: db}
}

// POST /api/scores/ — submit nilai utk (class, subject, student).
// Triple yang sama tidak boleh dua kali: kena unique index → 409.
func (sc *ScoreController) SubmitScore(c *fiber.Ctx) error {
	var req dto.CreateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	score := req.ToModel()
	if err := sc.DB.Create(score).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Score already submitted for this class, subject and student")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown class, subject or student")
		}
		log.Println("[ERROR] submit score:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit score")
	}
	return helper.JsonCreated(c, "Score succesfully submitted", score)
}

// GET /api/scores/
func (sc *ScoreController) GetScores(c *fiber.Ctx) error {
	var scores []model.ScoreModel
	if err := sc.DB.Find(&scores).Error; err != nil {
		log.Println("[ERROR] fetch scores:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve scores")
	}
	return helper.JsonOK(c, "Scores fetched successfully", scores)
}

// GET /api/scores/:id
func (sc *ScoreController) GetScore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid score ID format")
	}

	var score model.ScoreModel
	if err := sc.DB.First(&score, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No score found")
	}
	return helper.JsonOK(c, "Score fetched successfully", score)
}

// PUT /api/scores/:id — partial update payload nilai.
// Balas 201, bukan 200 — perilaku API lama dipertahankan.
func (sc *ScoreController) UpdateScore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid score ID format")
	}

	var score model.ScoreModel
	if err := sc.DB.First(&score, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Score not found")
	}

	var req dto.UpdateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	req.ApplyToModel(&score)

	if err := sc.DB.Save(&score).Error; err != nil {
		log.Println("[ERROR] update score:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update score")
	}
	return helper.JsonWithCode(c, fiber.StatusCreated, "Score succesfully updated", score)
}

// DELETE /api/scores/:id — balas 201 (perilaku lama)
func (sc *ScoreController) DeleteScore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid score ID format")
	}

	var score model.ScoreModel
	if err := sc.DB.First(&score, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Score not found")
	}

	if err := sc.DB.Delete(&model.ScoreModel{}, "id = ?", id).Error; err != nil {
		log.Println("[ERROR] delete score:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete score")
	}
	return helper.JsonWithCode(c, fiber.StatusCreated, "Score succesfully deleted", nil)
}
