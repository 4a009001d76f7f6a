package routes

import (
	"absensi-rfid-backend/config"
	"absensi-rfid-backend/internal/ai"
	"absensi-rfid-backend/internal/handler"
	"absensi-rfid-backend/internal/middleware"
	"absensi-rfid-backend/internal/notification"
	"absensi-rfid-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewReportHandler(
		repository.NewAttendanceRepository(db),
		repository.NewStudentRepository(db),
		repository.NewPicketTeacherRepository(db),
		ai.NewClient(config.AIEndpoint(), config.AIAPIKey()),
		notification.NewReportMailer(config.SMTP()),
	)

	api := app.Group("/api/laporan", middleware.Auth)

	api.Get("/periode", hdl.GetRange)
	api.Get("/periode/export", hdl.ExportRangeCSV)
	api.Get("/leaderboard", hdl.GetLeaderboard)
	api.Post("/ai", hdl.GenerateAIReport)
	api.Post("/email", hdl.EmailReport)
}
