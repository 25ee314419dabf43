package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "schoolku_backend/internals/features/school/classes/route"
	dashboardRoute "schoolku_backend/internals/features/school/dashboard/route"
	reportRoute "schoolku_backend/internals/features/school/reports/route"
	schoolRoute "schoolku_backend/internals/features/school/schools/route"
	scoreRoute "schoolku_backend/internals/features/school/scores/route"
	subjectRoute "schoolku_backend/internals/features/school/subjects/route"
	taskRoute "schoolku_backend/internals/features/tasks/route"
	taskService "schoolku_backend/internals/features/tasks/service"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	userRoute "schoolku_backend/internals/features/users/user/route"
	authMw "schoolku_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes memasang semua route. Selain register/login, semua
// endpoint /api/* lewat AuthMiddleware (bearer token + blacklist).
func SetupRoutes(app *fiber.App, db *gorm.DB, store taskService.JobStore) {
	startTime = time.Now()

	BaseRoutes(app, db)

	resolve := authMw.DBUserResolver(db)
	api := app.Group("/api")

	// ===================== AUTH (public + rate limited) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db, resolve)

	// ===================== PROTECTED =====================
	log.Println("[INFO] Setting up protected routes...")
	protected := api.Group("", authMw.AuthMiddleware(db, resolve))

	userRoute.UserRoutes(protected, db)
	schoolRoute.SchoolRoutes(protected, db)
	classRoute.ClassRoutes(protected, db)
	subjectRoute.SubjectRoutes(protected, db)
	scoreRoute.ScoreRoutes(protected, db)
	reportRoute.ReportRoutes(protected, db)
	dashboardRoute.DashboardRoutes(protected, db)
	taskRoute.TaskRoutes(protected, db, store)
}
