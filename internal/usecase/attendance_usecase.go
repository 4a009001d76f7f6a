package usecase

import (
	"errors"
	"time"

	"absensi-rfid-backend/internal/model"
	"absensi-rfid-backend/internal/repository"
)

// Mode scan yang dikirim klien (RFID reader mode keyboard-wedge).
const (
	ModeMasuk  = "masuk"
	ModePulang = "pulang"
	ModeIzin   = "izin"
)

var (
	ErrAlreadyRecorded = errors.New("sudah melakukan absensi hari ini")
	ErrUnknownMode     = errors.New("mode scan tidak dikenal")
	ErrInvalidStatus   = errors.New("status izin tidak valid")
)

// ResolveStatus menentukan status absensi dari konteks scan.
//   - masuk  : Hadir kalau masih sebelum jam masuk di settings, selain itu Terlambat.
//   - pulang : selalu Pulang.
//   - izin   : status dipilih operator (Izin/Sakit/Alpha).
//
// Batas Hadir/Terlambat diambil dari settings.CheckInTime, bukan jam hard-coded.
func ResolveStatus(mode, permissionType string, now time.Time, settings model.AppSettings) (string, error) {
	switch mode {
	case ModeMasuk:
		cutoff, err := time.Parse("15:04", settings.CheckInTime)
		if err != nil {
			cutoff, _ = time.Parse("15:04", model.DefaultSettings().CheckInTime)
		}
		batas := time.Date(now.Year(), now.Month(), now.Day(), cutoff.Hour(), cutoff.Minute(), 0, 0, now.Location())
		if now.Before(batas) {
			return model.StatusHadir, nil
		}
		return model.StatusTerlambat, nil
	case ModePulang:
		return model.StatusPulang, nil
	case ModeIzin:
		switch permissionType {
		case model.StatusIzin, model.StatusSakit, model.StatusAlpha:
			return permissionType, nil
		}
		return "", ErrInvalidStatus
	}
	return "", ErrUnknownMode
}

// CanAdmit memutuskan apakah scan boleh ditulis ke ledger. Scan ditolak
// hanya kalau di hari yang sama sudah ada record non-Pulang dan status
// yang diminta juga non-Pulang. Akibatnya urutan masuk lalu pulang lolos
// sekali sehari, masuk kedua / pengajuan izin kedua ditolak, dan Pulang
// tidak pernah ditolak (termasuk tanpa record masuk sama sekali).
func CanAdmit(existing []model.AttendanceRecord, requested string) bool {
	if requested == model.StatusPulang {
		return true
	}
	for _, r := range existing {
		if r.Status != model.StatusPulang {
			return false
		}
	}
	return true
}

// NewRecord membangun snapshot ledger untuk siswa yang discan sekarang.
// Nama dan kelas disalin dari data siswa saat ini dan tidak pernah
// diturunkan ulang dari join saat dibaca.
func NewRecord(student model.Student, status, description string, now time.Time) model.AttendanceRecord {
	return model.AttendanceRecord{
		StudentID:   student.ID,
		StudentName: student.Name,
		ClassName:   student.ClassName,
		Timestamp:   now.UnixMilli(),
		DateStr:     now.Format("2006-01-02"),
		TimeStr:     now.Format("15:04:05"),
		Status:      status,
		Description: description,
	}
}

type AttendanceUsecase struct {
	repo repository.AttendanceRepository
}

func NewAttendanceUsecase(repo repository.AttendanceRepository) *AttendanceUsecase {
	return &AttendanceUsecase{repo: repo}
}

// Scan menjalankan aturan admisi lalu menulis record baru kalau lolos.
// Pengecekan dan penulisan berjalan dalam satu request handler, jadi tidak
// ada interleaving antar scan untuk proses yang sama.
func (u *AttendanceUsecase) Scan(student model.Student, status, description string, now time.Time) (*model.AttendanceRecord, error) {
	existing, err := u.repo.GetByStudentAndDate(student.ID, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if !CanAdmit(existing, status) {
		return nil, ErrAlreadyRecorded
	}

	record := NewRecord(student, status, description, now)
	if err := u.repo.Create(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
