package repository

import (
	"absensi-rfid-backend/internal/model"

	"gorm.io/gorm"
)

type PicketTeacherRepository interface {
	GetAll() ([]model.PicketTeacher, error)
	FindByID(id uint) (*model.PicketTeacher, error)
	FindByUsername(username string) (*model.PicketTeacher, error)
	Create(teacher *model.PicketTeacher) error
	Update(teacher *model.PicketTeacher) error
	Delete(id uint) error
}

type picketTeacherRepository struct {
	db *gorm.DB
}

func NewPicketTeacherRepository(db *gorm.DB) PicketTeacherRepository {
	return &picketTeacherRepository{db}
}

func (r *picketTeacherRepository) GetAll() ([]model.PicketTeacher, error) {
	var teachers []model.PicketTeacher
	err := r.db.Order("username asc").Find(&teachers).Error
	return teachers, err
}

func (r *picketTeacherRepository) FindByID(id uint) (*model.PicketTeacher, error) {
	var teacher model.PicketTeacher
	err := r.db.First(&teacher, id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *picketTeacherRepository) FindByUsername(username string) (*model.PicketTeacher, error) {
	var teacher model.PicketTeacher
	err := r.db.Where("username = ?", username).First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *picketTeacherRepository) Create(teacher *model.PicketTeacher) error {
	return r.db.Create(teacher).Error
}

func (r *picketTeacherRepository) Update(teacher *model.PicketTeacher) error {
	return r.db.Save(teacher).Error
}

func (r *picketTeacherRepository) Delete(id uint) error {
	return r.db.Delete(&model.PicketTeacher{}, id).Error
}
