package routes

import (
	"absensi-rfid-backend/config"
	"absensi-rfid-backend/internal/handler"
	"absensi-rfid-backend/internal/middleware"
	"absensi-rfid-backend/internal/notification"
	"absensi-rfid-backend/internal/repository"
	"absensi-rfid-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPresensiRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	uc := usecase.NewAttendanceUsecase(attendanceRepo)
	notifier := notification.NewWhatsAppNotifier(config.WhatsAppGatewayURL())
	hdl := handler.NewAttendanceHandler(uc, attendanceRepo, studentRepo, settingsRepo, notifier)

	api := app.Group("/api/presensi", middleware.Auth)

	api.Post("/scan", hdl.Scan)
	api.Get("/hari-ini", hdl.GetToday)
	api.Get("/riwayat", hdl.GetHistory)
	api.Get("/:id/wa-link", hdl.GetChatLink)
}
