package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoreController "schoolku_backend/internals/features/school/scores/controller"
)

func ScoreRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := scoreController.NewScoreController(db)

	grp := api.Group("/scores")
	grp.Post("/", ctrl.SubmitScore)
	grp.Get("/", ctrl.GetScores)
	grp.Get("/:id", ctrl.GetScore)
	grp.Put("/:id", ctrl.UpdateScore)
	grp.Delete("/:id", ctrl.DeleteScore)
}
