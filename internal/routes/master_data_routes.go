package routes

import (
	"absensi-rfid-backend/internal/handler"
	"absensi-rfid-backend/internal/middleware"
	"absensi-rfid-backend/internal/repository"
	"absensi-rfid-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMasterDataRoutes(app *fiber.App, db *gorm.DB) {
	studentHdl := handler.NewStudentHandler(repository.NewStudentRepository(db))
	classHdl := handler.NewClassHandler(repository.NewClassRepository(db))
	teacherHdl := handler.NewPicketTeacherHandler(repository.NewPicketTeacherRepository(db))

	siswa := app.Group("/api/siswa", middleware.Auth)
	siswa.Get("/", studentHdl.GetAll)
	siswa.Get("/export", studentHdl.ExportCSV)
	siswa.Get("/template", studentHdl.TemplateCSV)
	siswa.Post("/import", studentHdl.ImportCSV)
	siswa.Post("/", studentHdl.Create)
	siswa.Post("/:id/foto", studentHdl.UploadPhoto)
	siswa.Put("/:id", studentHdl.Update)
	siswa.Delete("/:id", studentHdl.Delete)

	kelas := app.Group("/api/kelas", middleware.Auth)
	kelas.Get("/", classHdl.GetAll)
	kelas.Post("/", classHdl.Create)
	kelas.Put("/:id", classHdl.Update)
	kelas.Delete("/:id", classHdl.Delete)

	// Kelola akun guru piket khusus admin.
	guru := app.Group("/api/guru-piket", middleware.Auth, middleware.Role(usecase.RoleAdmin))
	guru.Get("/", teacherHdl.GetAll)
	guru.Post("/", teacherHdl.Create)
	guru.Put("/:id", teacherHdl.Update)
	guru.Delete("/:id", teacherHdl.Delete)
}
