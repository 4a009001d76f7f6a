package model

import "gorm.io/gorm"

// Status absensi yang bisa tersimpan di ledger.
const (
	StatusHadir     = "Hadir"
	StatusTerlambat = "Terlambat"
	StatusIzin      = "Izin"
	StatusPulang    = "Pulang"
	StatusSakit     = "Sakit"
	StatusAlpha     = "Alpha"
)

// AttendanceRecord adalah entri ledger absensi. Append-only: tidak ada
// endpoint edit/hapus. Nama siswa dan kelas disnapshot saat scan supaya
// riwayat tetap terbaca walau data siswa berubah belakangan.
type AttendanceRecord struct {
	gorm.Model
	StudentID   uint   `json:"student_id"` // Weak reference, tanpa FK constraint
	StudentName string `json:"student_name"`
	ClassName   string `json:"class_name"`
	Timestamp   int64  `json:"timestamp"` // Unix millis, dipakai untuk ordering
	DateStr     string `json:"date_str"`  // Format 2006-01-02 (hari scan, waktu lokal)
	TimeStr     string `json:"time_str"`  // Format 15:04:05
	Status      string `json:"status"`
	Description string `json:"description"`
}

// ValidStatus memeriksa apakah sebuah status dikenal oleh sistem.
func ValidStatus(s string) bool {
	switch s {
	case StatusHadir, StatusTerlambat, StatusIzin, StatusPulang, StatusSakit, StatusAlpha:
		return true
	}
	return false
}
