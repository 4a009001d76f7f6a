package repository

import (
	"absensi-rfid-backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository interface {
	FindByRFID(code string) (*model.Student, error)
	FindByID(id uint) (*model.Student, error)
	GetAll(search string) ([]model.Student, error)
	Create(student *model.Student) error
	CreateMany(students []model.Student) error
	Update(student *model.Student) error
	Delete(id uint) error
	Count() (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db}
}

func (r *studentRepository) FindByRFID(code string) (*model.Student, error) {
	var student model.Student
	err := r.db.Where("rfid_code = ?", code).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	err := r.db.First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) GetAll(search string) ([]model.Student, error) {
	var students []model.Student
	q := r.db.Order("class_name asc, name asc")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR nis LIKE ? OR rfid_code LIKE ? OR class_name LIKE ?", like, like, like, like)
	}
	err := q.Find(&students).Error
	return students, err
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) CreateMany(students []model.Student) error {
	return r.db.Create(&students).Error
}

func (r *studentRepository) Update(student *model.Student) error {
	return r.db.Save(student).Error
}

func (r *studentRepository) Delete(id uint) error {
	// Tanpa cascade: record absensi siswa ini tetap ada (weak reference).
	return r.db.Delete(&model.Student{}, id).Error
}

func (r *studentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Student{}).Count(&count).Error
	return count, err
}
