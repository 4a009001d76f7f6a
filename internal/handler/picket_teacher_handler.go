package handler

import (
	"strconv"

	"absensi-rfid-backend/internal/model"
	"absensi-rfid-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PicketTeacherHandler struct {
	repo repository.PicketTeacherRepository
}

func NewPicketTeacherHandler(repo repository.PicketTeacherRepository) *PicketTeacherHandler {
	return &PicketTeacherHandler{repo: repo}
}

func (h *PicketTeacherHandler) GetAll(c *fiber.Ctx) error {
	teachers, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data guru piket"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data guru piket",
		"data":    teachers,
	})
}

type TeacherRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *PicketTeacherHandler) Create(c *fiber.Ctx) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username dan password wajib diisi"})
	}

	teacher := model.PicketTeacher{Username: req.Username, Email: req.Email, Password: req.Password}
	if err := h.repo.Create(&teacher); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gagal menyimpan: username sudah dipakai"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Akun guru piket tersimpan",
		"data":    teacher,
	})
}

func (h *PicketTeacherHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	teacher, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Akun guru piket tidak ditemukan"})
	}

	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username wajib diisi"})
	}

	teacher.Username = req.Username
	teacher.Email = req.Email
	if req.Password != "" {
		teacher.Password = req.Password
	}
	if err := h.repo.Update(teacher); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan perubahan"})
	}

	return c.JSON(fiber.Map{
		"message": "Perubahan tersimpan",
		"data":    teacher,
	})
}

func (h *PicketTeacherHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus akun guru piket"})
	}

	return c.JSON(fiber.Map{"message": "Akun guru piket terhapus"})
}
