package routes

import (
	"absensi-rfid-backend/internal/handler"
	"absensi-rfid-backend/internal/repository"
	"absensi-rfid-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	teacherRepo := repository.NewPicketTeacherRepository(db)
	uc := usecase.NewAuthUsecase(teacherRepo)
	hdl := handler.NewAuthHandler(uc)

	app.Post("/api/auth/login", hdl.Login)
}
