package routes

import (
	"absensi-rfid-backend/internal/handler"
	"absensi-rfid-backend/internal/middleware"
	"absensi-rfid-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewDashboardHandler(
		repository.NewAttendanceRepository(db),
		repository.NewStudentRepository(db),
	)

	api := app.Group("/api/dashboard", middleware.Auth)
	api.Get("/stats", hdl.GetStats)
}
