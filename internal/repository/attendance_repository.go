package repository

import (
	"absensi-rfid-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(record *model.AttendanceRecord) error
	FindByID(id uint) (*model.AttendanceRecord, error)
	GetByStudentAndDate(studentID uint, date string) ([]model.AttendanceRecord, error)
	GetByDate(date string) ([]model.AttendanceRecord, error)
	GetAll() ([]model.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(record *model.AttendanceRecord) error {
	return r.db.Create(record).Error
}

func (r *attendanceRepository) FindByID(id uint) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByStudentAndDate dipakai untuk validasi double scan di hari yang sama.
func (r *attendanceRepository) GetByStudentAndDate(studentID uint, date string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Where("student_id = ? AND date_str = ?", studentID, date).Find(&records).Error
	return records, err
}

func (r *attendanceRepository) GetByDate(date string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Where("date_str = ?", date).Order("timestamp desc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) GetAll() ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Order("timestamp desc").Find(&records).Error
	return records, err
}
