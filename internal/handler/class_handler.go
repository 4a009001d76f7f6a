package handler

import (
	"strconv"

	"absensi-rfid-backend/internal/model"
	"absensi-rfid-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ClassHandler struct {
	repo repository.ClassRepository
}

func NewClassHandler(repo repository.ClassRepository) *ClassHandler {
	return &ClassHandler{repo: repo}
}

func (h *ClassHandler) GetAll(c *fiber.Ctx) error {
	classes, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kelas"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data kelas",
		"data":    classes,
	})
}

type ClassRequest struct {
	Name            string `json:"name"`
	HomeroomTeacher string `json:"homeroom_teacher"`
}

func (h *ClassHandler) Create(c *fiber.Ctx) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama kelas wajib diisi"})
	}

	class := model.ClassRoom{Name: req.Name, HomeroomTeacher: req.HomeroomTeacher}
	if err := h.repo.Create(&class); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gagal menyimpan: nama kelas sudah ada"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Data kelas tersimpan",
		"data":    class,
	})
}

// Update mengganti data kelas. Catatan: siswa dan record absensi mereferensi
// kelas by name, jadi rename tidak ikut mengubah data lama (drift disengaja,
// mengikuti perilaku aplikasi sebelumnya).
func (h *ClassHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	class, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data kelas tidak ditemukan"})
	}

	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama kelas wajib diisi"})
	}

	class.Name = req.Name
	class.HomeroomTeacher = req.HomeroomTeacher
	if err := h.repo.Update(class); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan perubahan"})
	}

	return c.JSON(fiber.Map{
		"message": "Perubahan tersimpan",
		"data":    class,
	})
}

func (h *ClassHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus data kelas"})
	}

	return c.JSON(fiber.Map{"message": "Data kelas terhapus"})
}
