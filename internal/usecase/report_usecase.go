package usecase

import (
	"sort"
	"strings"

	"absensi-rfid-backend/internal/model"
)

// Jenis absensi (klasifikasi kasar dari status) untuk filter dan tampilan.
const (
	JenisMasuk  = "Masuk"
	JenisPulang = "Pulang"
	JenisIzin   = "Izin"
)

// Jenis memetakan status ke klasifikasinya. Pemetaan ini dipakai konsisten
// di riwayat dan laporan, jadi mempengaruhi hasil filter, bukan cuma label.
func Jenis(status string) string {
	if status == model.StatusPulang {
		return JenisPulang
	}
	switch status {
	case model.StatusIzin, model.StatusSakit, model.StatusAlpha:
		return JenisIzin
	}
	return JenisMasuk
}

// RecordFilter adalah kriteria filter riwayat/laporan. String kosong atau
// "Semua" berarti kriteria itu tidak dipakai.
type RecordFilter struct {
	StartDate string // inklusif, format 2006-01-02
	EndDate   string // inklusif
	Jenis     string
	Status    string // nilai "Bolos" hanya cocok dengan record Alpha
}

func (f RecordFilter) match(r model.AttendanceRecord) bool {
	if f.StartDate != "" && r.DateStr < f.StartDate {
		return false
	}
	if f.EndDate != "" && r.DateStr > f.EndDate {
		return false
	}
	if f.Jenis != "" && f.Jenis != "Semua" && Jenis(r.Status) != f.Jenis {
		return false
	}
	if f.Status != "" && f.Status != "Semua" {
		// "Bolos" adalah alias filter lama untuk Alpha; tidak pernah
		// tersimpan sebagai status di ledger.
		if f.Status == "Bolos" {
			return r.Status == model.StatusAlpha
		}
		return r.Status == f.Status
	}
	return true
}

// FilterRecords mengembalikan record yang lolos filter, terurut menurun
// berdasarkan timestamp (terbaru dulu).
func FilterRecords(records []model.AttendanceRecord, f RecordFilter) []model.AttendanceRecord {
	result := make([]model.AttendanceRecord, 0)
	for _, r := range records {
		if f.match(r) {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp > result[j].Timestamp
	})
	return result
}

// PresentCount menghitung jumlah siswa unik yang Hadir/Terlambat pada satu
// tanggal. Siswa dengan record Hadir plus Pulang tetap dihitung satu.
func PresentCount(records []model.AttendanceRecord, date string) int {
	seen := make(map[uint]bool)
	for _, r := range records {
		if r.DateStr != date {
			continue
		}
		if r.Status == model.StatusHadir || r.Status == model.StatusTerlambat {
			seen[r.StudentID] = true
		}
	}
	return len(seen)
}

// LateCount menghitung siswa unik berstatus Terlambat pada satu tanggal.
func LateCount(records []model.AttendanceRecord, date string) int {
	seen := make(map[uint]bool)
	for _, r := range records {
		if r.DateStr == date && r.Status == model.StatusTerlambat {
			seen[r.StudentID] = true
		}
	}
	return len(seen)
}

// AbsentCount tidak pernah negatif walau record yatim membuat presentCount
// melebihi jumlah siswa di direktori.
func AbsentCount(totalStudents, presentCount int) int {
	if absent := totalStudents - presentCount; absent > 0 {
		return absent
	}
	return 0
}

type HourBucket struct {
	Name string `json:"name"` // label "07:00"
	Val  int    `json:"val"`
}

// HourlyHistogram mengelompokkan record Hadir/Terlambat satu tanggal per jam
// (diambil dari potongan jam TimeStr), terurut naik. Kalau kosong, dua bucket
// nol disintesis supaya chart tetap punya domain.
func HourlyHistogram(records []model.AttendanceRecord, date string) []HourBucket {
	counts := make(map[string]int)
	for _, r := range records {
		if r.DateStr != date {
			continue
		}
		if r.Status != model.StatusHadir && r.Status != model.StatusTerlambat {
			continue
		}
		hour, _, found := strings.Cut(r.TimeStr, ":")
		if !found {
			continue
		}
		counts[hour]++
	}

	if len(counts) == 0 {
		return []HourBucket{{Name: "07:00", Val: 0}, {Name: "08:00", Val: 0}}
	}

	hours := make([]string, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Strings(hours)

	buckets := make([]HourBucket, 0, len(hours))
	for _, h := range hours {
		buckets = append(buckets, HourBucket{Name: h + ":00", Val: counts[h]})
	}
	return buckets
}

// Mode penilaian leaderboard.
const (
	LeaderboardRajin = "rajin" // skor = jumlah Hadir
	LeaderboardMalas = "malas" // skor = jumlah Alpha/Bolos/Terlambat
)

type StudentScore struct {
	model.Student
	Score int `json:"score"`
}

// Leaderboard menghitung skor per siswa dalam rentang tanggal opsional,
// lalu mengurutkan menurun berdasarkan skor. Urutan siswa dengan skor sama
// mengikuti urutan input (stable sort). Status "Bolos" ikut dihitung di mode
// malas walaupun tidak pernah tersimpan; dibiarkan mengikuti perilaku lama.
func Leaderboard(students []model.Student, records []model.AttendanceRecord, mode, startDate, endDate, className string) []StudentScore {
	scores := make([]StudentScore, 0, len(students))
	for _, s := range students {
		if className != "" && className != "Semua" && s.ClassName != className {
			continue
		}

		score := 0
		for _, r := range records {
			if r.StudentID != s.ID {
				continue
			}
			if startDate != "" && r.DateStr < startDate {
				continue
			}
			if endDate != "" && r.DateStr > endDate {
				continue
			}
			if mode == LeaderboardRajin {
				if r.Status == model.StatusHadir {
					score++
				}
			} else {
				switch r.Status {
				case model.StatusAlpha, "Bolos", model.StatusTerlambat:
					score++
				}
			}
		}
		scores = append(scores, StudentScore{Student: s, Score: score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}
