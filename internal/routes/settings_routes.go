package routes

import (
	"absensi-rfid-backend/internal/handler"
	"absensi-rfid-backend/internal/middleware"
	"absensi-rfid-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSettingsRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewSettingsHandler(repository.NewSettingsRepository(db))

	api := app.Group("/api/pengaturan", middleware.Auth)
	api.Get("/", hdl.Get)
	api.Put("/", hdl.Update)
}
