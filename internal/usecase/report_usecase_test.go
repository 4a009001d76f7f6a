package usecase

import (
	"testing"

	"absensi-rfid-backend/internal/model"
)

func TestJenis(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{model.StatusPulang, JenisPulang},
		{model.StatusIzin, JenisIzin},
		{model.StatusSakit, JenisIzin},
		{model.StatusAlpha, JenisIzin},
		{model.StatusHadir, JenisMasuk},
		{model.StatusTerlambat, JenisMasuk},
	}
	for _, tt := range tests {
		if got := Jenis(tt.status); got != tt.want {
			t.Errorf("Jenis(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func rec(id uint, studentID uint, date, timeStr, status string, ts int64) model.AttendanceRecord {
	r := model.AttendanceRecord{
		StudentID: studentID,
		DateStr:   date,
		TimeStr:   timeStr,
		Status:    status,
		Timestamp: ts,
	}
	r.ID = id
	return r
}

func TestFilterRecordsRange(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, 1, "2026-08-09", "07:00:00", model.StatusHadir, 100),
		rec(2, 1, "2026-08-10", "07:00:00", model.StatusHadir, 200),
		rec(3, 1, "2026-08-15", "07:30:00", model.StatusTerlambat, 300),
		rec(4, 1, "2026-08-20", "07:00:00", model.StatusHadir, 400),
		rec(5, 1, "2026-08-21", "07:00:00", model.StatusHadir, 500),
	}

	got := FilterRecords(records, RecordFilter{StartDate: "2026-08-10", EndDate: "2026-08-20"})

	// Batas inklusif dua sisi: 10 dan 20 masuk, 09 dan 21 tidak.
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Urut menurun berdasarkan timestamp.
	if got[0].ID != 4 || got[1].ID != 3 || got[2].ID != 2 {
		t.Errorf("urutan = %d,%d,%d, want 4,3,2", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestFilterRecordsJenisAndStatus(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, 1, "2026-08-10", "07:00:00", model.StatusHadir, 100),
		rec(2, 1, "2026-08-10", "08:10:00", model.StatusTerlambat, 200),
		rec(3, 2, "2026-08-10", "07:05:00", model.StatusSakit, 300),
		rec(4, 3, "2026-08-10", "07:06:00", model.StatusAlpha, 400),
		rec(5, 1, "2026-08-10", "15:00:00", model.StatusPulang, 500),
	}

	masuk := FilterRecords(records, RecordFilter{Jenis: JenisMasuk})
	if len(masuk) != 2 {
		t.Errorf("jenis Masuk: len = %d, want 2", len(masuk))
	}

	izin := FilterRecords(records, RecordFilter{Jenis: JenisIzin})
	if len(izin) != 2 {
		t.Errorf("jenis Izin: len = %d, want 2", len(izin))
	}

	// "Bolos" hanya cocok dengan Alpha, bukan status lain.
	bolos := FilterRecords(records, RecordFilter{Status: "Bolos"})
	if len(bolos) != 1 || bolos[0].Status != model.StatusAlpha {
		t.Errorf("status Bolos: got %+v, want satu record Alpha", bolos)
	}

	sakit := FilterRecords(records, RecordFilter{Status: model.StatusSakit})
	if len(sakit) != 1 || sakit[0].ID != 3 {
		t.Errorf("status Sakit: len = %d, want 1", len(sakit))
	}

	semua := FilterRecords(records, RecordFilter{Jenis: "Semua", Status: "Semua"})
	if len(semua) != len(records) {
		t.Errorf("filter Semua: len = %d, want %d", len(semua), len(records))
	}
}

func TestPresentCountDistinct(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, 1, "2026-08-30", "06:50:00", model.StatusHadir, 100),
		rec(2, 1, "2026-08-30", "15:01:00", model.StatusPulang, 200), // tidak menambah
		rec(3, 2, "2026-08-30", "08:10:00", model.StatusTerlambat, 300),
		rec(4, 3, "2026-08-30", "07:00:00", model.StatusSakit, 400), // izin bukan hadir
		rec(5, 4, "2026-08-29", "07:00:00", model.StatusHadir, 500), // hari lain
	}

	if got := PresentCount(records, "2026-08-30"); got != 2 {
		t.Errorf("PresentCount = %d, want 2", got)
	}
	if got := LateCount(records, "2026-08-30"); got != 1 {
		t.Errorf("LateCount = %d, want 1", got)
	}
}

func TestAbsentCountNeverNegative(t *testing.T) {
	if got := AbsentCount(30, 2); got != 28 {
		t.Errorf("AbsentCount(30,2) = %d, want 28", got)
	}
	// Record yatim bisa membuat presentCount > total siswa.
	if got := AbsentCount(3, 5); got != 0 {
		t.Errorf("AbsentCount(3,5) = %d, want 0", got)
	}
}

func TestHourlyHistogram(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, 1, "2026-08-30", "07:10:00", model.StatusHadir, 100),
		rec(2, 2, "2026-08-30", "07:45:00", model.StatusHadir, 200),
		rec(3, 3, "2026-08-30", "08:05:00", model.StatusTerlambat, 300),
		rec(4, 1, "2026-08-30", "15:00:00", model.StatusPulang, 400), // bukan masuk
		rec(5, 4, "2026-08-30", "06:55:00", model.StatusHadir, 500),
	}

	got := HourlyHistogram(records, "2026-08-30")
	want := []HourBucket{{"06:00", 1}, {"07:00", 2}, {"08:00", 1}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHourlyHistogramEmpty(t *testing.T) {
	got := HourlyHistogram(nil, "2026-08-30")
	if len(got) != 2 || got[0].Val != 0 || got[1].Val != 0 {
		t.Fatalf("histogram kosong = %+v, want dua bucket nol", got)
	}
	if got[0].Name != "07:00" || got[1].Name != "08:00" {
		t.Errorf("label = %q,%q, want 07:00,08:00", got[0].Name, got[1].Name)
	}
}

func student(id uint, name, class string) model.Student {
	s := model.Student{Name: name, ClassName: class}
	s.ID = id
	return s
}

func TestLeaderboardRajin(t *testing.T) {
	students := []model.Student{
		student(1, "Budi", "X IPA 1"),
		student(2, "Siti", "X IPA 2"),
	}
	records := []model.AttendanceRecord{
		rec(1, 1, "2026-08-01", "06:50:00", model.StatusHadir, 100),
		rec(2, 1, "2026-08-02", "06:50:00", model.StatusHadir, 200),
		rec(3, 1, "2026-08-03", "06:50:00", model.StatusHadir, 300),
		rec(4, 1, "2026-08-04", "08:10:00", model.StatusTerlambat, 400), // tidak dihitung rajin
		rec(5, 2, "2026-08-01", "06:50:00", model.StatusHadir, 500),
		rec(6, 1, "2026-09-01", "06:50:00", model.StatusHadir, 600), // luar rentang
	}

	got := Leaderboard(students, records, LeaderboardRajin, "2026-08-01", "2026-08-31", "")
	if got[0].Name != "Budi" || got[0].Score != 3 {
		t.Errorf("peringkat 1 = %s skor %d, want Budi skor 3", got[0].Name, got[0].Score)
	}
	if got[1].Name != "Siti" || got[1].Score != 1 {
		t.Errorf("peringkat 2 = %s skor %d, want Siti skor 1", got[1].Name, got[1].Score)
	}
}

func TestLeaderboardMalas(t *testing.T) {
	students := []model.Student{student(1, "Budi", "X IPA 1")}
	records := []model.AttendanceRecord{
		rec(1, 1, "2026-08-01", "08:10:00", model.StatusTerlambat, 100),
		rec(2, 1, "2026-08-02", "07:00:00", model.StatusAlpha, 200),
		rec(3, 1, "2026-08-03", "06:50:00", model.StatusHadir, 300), // tidak dihitung malas
	}

	got := Leaderboard(students, records, LeaderboardMalas, "", "", "")
	if got[0].Score != 2 {
		t.Errorf("skor malas = %d, want 2", got[0].Score)
	}
}

func TestLeaderboardClassAndTies(t *testing.T) {
	students := []model.Student{
		student(1, "Budi", "X IPA 1"),
		student(2, "Siti", "X IPA 1"),
		student(3, "Andi", "X IPA 2"),
	}

	got := Leaderboard(students, nil, LeaderboardRajin, "", "", "X IPA 1")
	if len(got) != 2 {
		t.Fatalf("filter kelas: len = %d, want 2", len(got))
	}
	// Skor seri mempertahankan urutan input.
	if got[0].Name != "Budi" || got[1].Name != "Siti" {
		t.Errorf("urutan seri = %s,%s, want Budi,Siti", got[0].Name, got[1].Name)
	}
}
