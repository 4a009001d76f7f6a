package handler

import (
	"fmt"

	"absensi-rfid-backend/internal/ai"
	"absensi-rfid-backend/internal/notification"
	"absensi-rfid-backend/internal/repository"
	"absensi-rfid-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
	teacherRepo    repository.PicketTeacherRepository
	aiClient       *ai.Client
	mailer         *notification.ReportMailer
}

func NewReportHandler(attendanceRepo repository.AttendanceRepository, studentRepo repository.StudentRepository, teacherRepo repository.PicketTeacherRepository, aiClient *ai.Client, mailer *notification.ReportMailer) *ReportHandler {
	return &ReportHandler{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		teacherRepo:    teacherRepo,
		aiClient:       aiClient,
		mailer:         mailer,
	}
}

// GetRange mengembalikan laporan absensi untuk rentang tanggal + filter.
func (h *ReportHandler) GetRange(c *fiber.Ctx) error {
	records, err := h.attendanceRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data laporan"})
	}

	filtered := usecase.FilterRecords(records, usecase.RecordFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Jenis:     c.Query("jenis"),
		Status:    c.Query("status"),
	})

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil laporan",
		"data":    filtered,
	})
}

// ExportRangeCSV mengunduh laporan rentang tanggal sebagai file CSV.
func (h *ReportHandler) ExportRangeCSV(c *fiber.Ctx) error {
	records, err := h.attendanceRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data laporan"})
	}
	students, err := h.studentRepo.GetAll("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data siswa"})
	}

	start := c.Query("start_date")
	end := c.Query("end_date")
	filtered := usecase.FilterRecords(records, usecase.RecordFilter{
		StartDate: start,
		EndDate:   end,
		Jenis:     c.Query("jenis"),
		Status:    c.Query("status"),
	})

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="Laporan_Absensi_%s_%s.csv"`, start, end))
	return c.SendString(usecase.ReportCSV(filtered, students))
}

// GetLeaderboard menyajikan peringkat siswa rajin/malas dalam rentang tanggal.
func (h *ReportHandler) GetLeaderboard(c *fiber.Ctx) error {
	mode := c.Query("mode", usecase.LeaderboardRajin)
	if mode != usecase.LeaderboardRajin && mode != usecase.LeaderboardMalas {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mode harus rajin atau malas"})
	}

	students, err := h.studentRepo.GetAll("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data siswa"})
	}
	records, err := h.attendanceRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}

	scores := usecase.Leaderboard(students, records, mode, c.Query("start_date"), c.Query("end_date"), c.Query("class"))

	return c.JSON(fiber.Map{
		"message": "Berhasil menghitung leaderboard",
		"mode":    mode,
		"data":    scores,
	})
}

// GenerateAIReport meminta ringkasan naratif ke layanan teks generatif.
// Tanpa retry; gagal = laporan kosong plus pesan error.
func (h *ReportHandler) GenerateAIReport(c *fiber.Ctx) error {
	records, err := h.attendanceRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}
	students, err := h.studentRepo.GetAll("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data siswa"})
	}

	report, err := h.aiClient.GenerateAttendanceReport(records, students)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Gagal membuat laporan AI"})
	}

	return c.JSON(fiber.Map{
		"message": "Laporan AI berhasil dibuat",
		"report":  report,
	})
}

type EmailReportRequest struct {
	To        string `json:"to"` // opsional; default email guru piket yang login
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Jenis     string `json:"jenis"`
	Status    string `json:"status"`
}

// EmailReport mengirim laporan rentang tanggal (lampiran CSV) lewat email.
func (h *ReportHandler) EmailReport(c *fiber.Ctx) error {
	var req EmailReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	to := req.To
	if to == "" {
		if username, ok := c.Locals("username").(string); ok {
			if teacher, err := h.teacherRepo.FindByUsername(username); err == nil {
				to = teacher.Email
			}
		}
	}
	if to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Alamat email tujuan tidak ditemukan"})
	}

	records, err := h.attendanceRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data laporan"})
	}
	students, err := h.studentRepo.GetAll("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data siswa"})
	}

	filtered := usecase.FilterRecords(records, usecase.RecordFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Jenis:     req.Jenis,
		Status:    req.Status,
	})

	subject := fmt.Sprintf("Laporan Absensi %s s/d %s", req.StartDate, req.EndDate)
	body := fmt.Sprintf("Terlampir laporan absensi periode %s s/d %s (%d record).", req.StartDate, req.EndDate, len(filtered))
	filename := fmt.Sprintf("Laporan_Absensi_%s_%s.csv", req.StartDate, req.EndDate)

	if err := h.mailer.SendReport(to, subject, body, filename, usecase.ReportCSV(filtered, students)); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Gagal mengirim email laporan"})
	}

	return c.JSON(fiber.Map{"message": "Laporan terkirim ke " + to})
}
