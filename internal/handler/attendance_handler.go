package handler

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"absensi-rfid-backend/internal/notification"
	"absensi-rfid-backend/internal/repository"
	"absensi-rfid-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	usecase      *usecase.AttendanceUsecase
	repo         repository.AttendanceRepository
	studentRepo  repository.StudentRepository
	settingsRepo repository.SettingsRepository
	notifier     *notification.WhatsAppNotifier
}

func NewAttendanceHandler(uc *usecase.AttendanceUsecase, repo repository.AttendanceRepository, studentRepo repository.StudentRepository, settingsRepo repository.SettingsRepository, notifier *notification.WhatsAppNotifier) *AttendanceHandler {
	return &AttendanceHandler{usecase: uc, repo: repo, studentRepo: studentRepo, settingsRepo: settingsRepo, notifier: notifier}
}

type ScanRequest struct {
	RFIDCode       string `json:"rfid_code"`
	Mode           string `json:"mode"`            // masuk / pulang / izin
	PermissionType string `json:"permission_type"` // Izin / Sakit / Alpha (mode izin)
	Description    string `json:"description"`
}

// Scan menerima event dari RFID reader (atau input manual) dan menjalankan
// aturan admisi. Notifikasi WA dikirim setelah record tertulis; gagal kirim
// tidak mempengaruhi hasil scan, hanya muncul sebagai warning.
func (h *AttendanceHandler) Scan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	code := strings.TrimSpace(req.RFIDCode)
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kode RFID kosong"})
	}

	student, err := h.studentRepo.FindByRFID(code)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kartu tidak dikenal (" + code + ")"})
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membaca pengaturan"})
	}

	now := time.Now()
	status, err := usecase.ResolveStatus(req.Mode, req.PermissionType, now, *settings)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := h.usecase.Scan(*student, status, req.Description, now)
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadyRecorded) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sudah Absen: " + student.Name})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan absensi"})
	}

	response := fiber.Map{
		"message": "Berhasil: " + student.Name,
		"status":  status,
		"waktu":   record.TimeStr,
		"data":    record,
	}

	if err := h.notifier.Send(settings.WhatsappToken, *student, *record); err != nil {
		log.Println("Gagal mengirim notifikasi WA:", err)
		if errors.Is(err, notification.ErrDeviceDisconnected) {
			response["wa_warning"] = err.Error()
		}
	}

	return c.JSON(response)
}

// GetToday mengembalikan seluruh absensi hari ini, terbaru dulu.
func (h *AttendanceHandler) GetToday(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")
	records, err := h.repo.GetByDate(today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data hari ini",
		"data":    records,
	})
}

// GetHistory mengembalikan riwayat absensi dengan filter rentang tanggal
// (inklusif dua sisi), jenis, dan status lewat query param.
func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	records, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data riwayat"})
	}

	filtered := usecase.FilterRecords(records, usecase.RecordFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Jenis:     c.Query("jenis"),
		Status:    c.Query("status"),
	})

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat",
		"data":    filtered,
	})
}

// GetChatLink membangun URL wa.me untuk chat manual ke wali murid dari satu
// record absensi. Dibuka operator di tab baru, bukan dikirim otomatis.
func (h *AttendanceHandler) GetChatLink(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	record, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record absensi tidak ditemukan"})
	}

	student, err := h.studentRepo.FindByID(record.StudentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data siswa tidak ditemukan"})
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membaca pengaturan"})
	}

	link, err := notification.BuildChatLink(settings.WaTemplate, *student, *record)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nomor HP Wali Murid tidak ditemukan"})
	}

	return c.JSON(fiber.Map{
		"message": "Link chat berhasil dibuat",
		"url":     link,
	})
}
