package handler

import (
	"absensi-rfid-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	repo repository.SettingsRepository
}

func NewSettingsHandler(repo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.repo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membaca pengaturan"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil pengaturan",
		"data":    settings,
	})
}

type SettingsRequest struct {
	AppName       string `json:"app_name"`
	AppLogo       string `json:"app_logo"`
	CheckInTime   string `json:"check_in_time"`
	CheckOutTime  string `json:"check_out_time"`
	WaTemplate    string `json:"wa_template"`
	WhatsappToken string `json:"whatsapp_token"`
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	settings, err := h.repo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membaca pengaturan"})
	}

	var req SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	settings.AppName = req.AppName
	settings.AppLogo = req.AppLogo
	settings.CheckInTime = req.CheckInTime
	settings.CheckOutTime = req.CheckOutTime
	settings.WaTemplate = req.WaTemplate
	settings.WhatsappToken = req.WhatsappToken

	if err := h.repo.Update(settings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan pengaturan"})
	}

	return c.JSON(fiber.Map{
		"message": "Pengaturan tersimpan",
		"data":    settings,
	})
}
