package repository

import (
	"absensi-rfid-backend/internal/model"

	"gorm.io/gorm"
)

type ClassRepository interface {
	GetAll() ([]model.ClassRoom, error)
	FindByID(id uint) (*model.ClassRoom, error)
	Create(class *model.ClassRoom) error
	Update(class *model.ClassRoom) error
	Delete(id uint) error
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db}
}

func (r *classRepository) GetAll() ([]model.ClassRoom, error) {
	var classes []model.ClassRoom
	err := r.db.Order("name asc").Find(&classes).Error
	return classes, err
}

func (r *classRepository) FindByID(id uint) (*model.ClassRoom, error) {
	var class model.ClassRoom
	err := r.db.First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) Create(class *model.ClassRoom) error {
	return r.db.Create(class).Error
}

func (r *classRepository) Update(class *model.ClassRoom) error {
	return r.db.Save(class).Error
}

func (r *classRepository) Delete(id uint) error {
	return r.db.Delete(&model.ClassRoom{}, id).Error
}
