package usecase

import (
	"strings"
	"testing"

	"absensi-rfid-backend/internal/model"
)

func TestParseStudentCSV(t *testing.T) {
	data := strings.Join([]string{
		"RFID,NIS,Nama Lengkap,Kelas,Jenis Kelamin (L/P),No HP Siswa,Nama Wali,No HP Wali",
		`"1234567890","1001","Budi Santoso","X IPA 1","L","08123456789","Pak Santoso","08198765432"`,
		"9876543210,1002,Siti Aminah,X IPA 2,P",
		"555,1003,Tanpa Kelas",            // cuma 3 kolom
		`"777","1004","","X IPA 1","L"`,   // nama kosong
		"",
	}, "\n")

	result := ParseStudentCSV(data)

	if result.Success != 2 || result.Failed != 2 {
		t.Fatalf("success/failed = %d/%d, want 2/2", result.Success, result.Failed)
	}

	budi := result.Students[0]
	if budi.RFIDCode != "1234567890" || budi.Name != "Budi Santoso" || budi.ClassName != "X IPA 1" {
		t.Errorf("baris 1 = %+v, kutip tidak terbuang dengan benar", budi)
	}
	if budi.GuardianPhone != "08198765432" {
		t.Errorf("GuardianPhone = %q, want 08198765432", budi.GuardianPhone)
	}

	siti := result.Students[1]
	if siti.Gender != "P" {
		t.Errorf("gender = %q, want P", siti.Gender)
	}
	if siti.StudentPhone != "" || siti.GuardianName != "" {
		t.Errorf("kolom opsional harus kosong, got %+v", siti)
	}
}

func TestParseStudentCSVThreeColumnsRejected(t *testing.T) {
	// Tiga kolom terisi semua tetap ditolak: minimal 4 kolom.
	result := ParseStudentCSV("header\n123,1001,Budi")
	if result.Success != 0 || result.Failed != 1 {
		t.Errorf("success/failed = %d/%d, want 0/1", result.Success, result.Failed)
	}
}

func TestParseStudentCSVGenderDefault(t *testing.T) {
	result := ParseStudentCSV("header\n123,1001,Budi,X IPA 1,X")
	if result.Success != 1 {
		t.Fatalf("success = %d, want 1", result.Success)
	}
	if result.Students[0].Gender != "L" {
		t.Errorf("gender = %q, want default L", result.Students[0].Gender)
	}
}

func TestStudentsCSV(t *testing.T) {
	s := model.Student{RFIDCode: "123", NIS: "1001", Name: "Budi", ClassName: "X IPA 1", Gender: "L"}
	out := StudentsCSV([]model.Student{s})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("len lines = %d, want 2", len(lines))
	}
	if lines[0] != "No,RFID,NIS,Nama Siswa,Kelas,L/P,Telepon Siswa,Nama Wali,Telepon Wali" {
		t.Errorf("header salah: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `1,"123","1001","Budi","X IPA 1","L"`) {
		t.Errorf("baris data salah: %q", lines[1])
	}
}

func TestReportCSV(t *testing.T) {
	s := model.Student{RFIDCode: "123", Name: "Budi", ClassName: "X IPA 1"}
	s.ID = 1

	known := rec(1, 1, "2026-08-30", "07:00:00", model.StatusHadir, 100)
	orphan := rec(2, 99, "2026-08-30", "07:05:00", model.StatusAlpha, 200)
	orphan.StudentName = "Siswa Terhapus"

	out := ReportCSV([]model.AttendanceRecord{known, orphan}, []model.Student{s})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("len lines = %d, want 3", len(lines))
	}
	if !strings.Contains(lines[1], `"123"`) || !strings.Contains(lines[1], `"Masuk"`) {
		t.Errorf("baris siswa dikenal salah: %q", lines[1])
	}
	// Record yatim: RFID "-" dan jenis Izin untuk Alpha.
	if !strings.Contains(lines[2], `"-"`) || !strings.Contains(lines[2], `"Izin"`) {
		t.Errorf("baris record yatim salah: %q", lines[2])
	}
}
