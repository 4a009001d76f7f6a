package repository

import (
	"errors"

	"absensi-rfid-backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get() (*model.AppSettings, error)
	Update(settings *model.AppSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db}
}

// Get mengembalikan baris settings tunggal, membuatnya dengan nilai default
// kalau belum ada (key absen = seed default, sama seperti versi lama).
func (r *settingsRepository) Get() (*model.AppSettings, error) {
	var settings model.AppSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.DefaultSettings()
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(settings *model.AppSettings) error {
	return r.db.Save(settings).Error
}
