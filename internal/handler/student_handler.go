package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"absensi-rfid-backend/internal/model"
	"absensi-rfid-backend/internal/repository"
	"absensi-rfid-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type StudentHandler struct {
	repo repository.StudentRepository
}

func NewStudentHandler(repo repository.StudentRepository) *StudentHandler {
	return &StudentHandler{repo: repo}
}

func (h *StudentHandler) GetAll(c *fiber.Ctx) error {
	students, err := h.repo.GetAll(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data siswa"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data siswa",
		"data":    students,
	})
}

type StudentRequest struct {
	RFIDCode      string `json:"rfid_code"`
	NIS           string `json:"nis"`
	Name          string `json:"name"`
	ClassName     string `json:"class_name"`
	Gender        string `json:"gender"`
	StudentPhone  string `json:"student_phone"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	PhotoURL      string `json:"photo_url"`
}

func (r StudentRequest) validate() error {
	if r.RFIDCode == "" || r.Name == "" || r.ClassName == "" {
		return fmt.Errorf("RFID, nama, dan kelas wajib diisi")
	}
	return nil
}

func (r StudentRequest) apply(s *model.Student) {
	s.RFIDCode = r.RFIDCode
	s.NIS = r.NIS
	s.Name = r.Name
	s.ClassName = r.ClassName
	if r.Gender == "P" {
		s.Gender = "P"
	} else {
		s.Gender = "L"
	}
	s.StudentPhone = r.StudentPhone
	s.GuardianName = r.GuardianName
	s.GuardianPhone = r.GuardianPhone
	s.PhotoURL = r.PhotoURL
}

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := req.validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var student model.Student
	req.apply(&student)
	if err := h.repo.Create(&student); err != nil {
		// Kemungkinan besar RFID sudah terpakai (kolom unique)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gagal menyimpan: kode RFID sudah terdaftar"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Data siswa tersimpan",
		"data":    student,
	})
}

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	student, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data siswa tidak ditemukan"})
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := req.validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	req.apply(student)
	if err := h.repo.Update(student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan perubahan"})
	}

	return c.JSON(fiber.Map{
		"message": "Perubahan tersimpan",
		"data":    student,
	})
}

func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	// Record absensi siswa ini dibiarkan; riwayat tetap terbaca lewat snapshot.
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus data siswa"})
	}

	return c.JSON(fiber.Map{"message": "Data siswa terhapus"})
}

// UploadPhoto menyimpan foto siswa ke folder uploads dan mengisi photo_url.
func (h *StudentHandler) UploadPhoto(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	student, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data siswa tidak ditemukan"})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File foto tidak ditemukan"})
	}

	uploadDir := "./uploads/siswa"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	filename := fmt.Sprintf("%d_%d_%s", student.ID, time.Now().Unix(), filepath.Base(file.Filename))
	pathFile := fmt.Sprintf("uploads/siswa/%s", filename)
	if err := c.SaveFile(file, pathFile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan file"})
	}

	student.PhotoURL = "/" + pathFile
	if err := h.repo.Update(student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan perubahan"})
	}

	return c.JSON(fiber.Map{
		"message": "Foto tersimpan",
		"data":    student,
	})
}

// ImportCSV menerima file CSV siswa dan menggabungkan baris yang valid ke
// direktori. Baris gagal dihitung tapi tidak menghentikan import.
func (h *StudentHandler) ImportCSV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File CSV tidak ditemukan"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gagal membaca file. Pastikan format .csv benar."})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gagal membaca file. Pastikan format .csv benar."})
	}

	result := usecase.ParseStudentCSV(string(data))
	if len(result.Students) > 0 {
		if err := h.repo.CreateMany(result.Students); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data import"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Import Selesai",
		"success": result.Success,
		"failed":  result.Failed,
	})
}

func (h *StudentHandler) ExportCSV(c *fiber.Ctx) error {
	students, err := h.repo.GetAll("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data siswa"})
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="data_siswa.csv"`)
	return c.SendString(usecase.StudentsCSV(students))
}

func (h *StudentHandler) TemplateCSV(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="template_import_siswa.csv"`)
	return c.SendString(usecase.StudentTemplateCSV())
}
