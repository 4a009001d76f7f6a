package handler

import (
	"fmt"
	"time"

	"absensi-rfid-backend/internal/repository"
	"absensi-rfid-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
}

func NewDashboardHandler(attendanceRepo repository.AttendanceRepository, studentRepo repository.StudentRepository) *DashboardHandler {
	return &DashboardHandler{attendanceRepo: attendanceRepo, studentRepo: studentRepo}
}

// GetStats menyajikan angka dashboard hari ini: total siswa, hadir (unik),
// terlambat, belum hadir, persentase, plus data chart per jam dan pie.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	records, err := h.attendanceRepo.GetByDate(today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}

	total, err := h.studentRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}

	present := usecase.PresentCount(records, today)
	late := usecase.LateCount(records, today)
	absent := usecase.AbsentCount(int(total), present)

	percentage := "0.0"
	if total > 0 {
		percentage = fmt.Sprintf("%.1f", float64(present)/float64(total)*100)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data": fiber.Map{
			"total_siswa":  total,
			"hadir":        present,
			"terlambat":    late,
			"belum_hadir":  absent,
			"persentase":   percentage,
			"grafik_jam":   usecase.HourlyHistogram(records, today),
			"grafik_pie":   []fiber.Map{
				{"name": "Hadir", "value": present},
				{"name": "Belum Hadir", "value": absent},
			},
		},
	})
}
