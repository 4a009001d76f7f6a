package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"absensi-rfid-backend/internal/model"
)

// Format CSV mengikuti format file lama apa adanya: split koma sederhana
// per baris plus pembuangan kutip ganda di tepi field. encoding/csv sengaja
// tidak dipakai karena perilakunya beda untuk koma di dalam kutip, dan file
// yang beredar di lapangan dibuat dengan format sederhana ini.

type ImportResult struct {
	Students []model.Student
	Success  int
	Failed   int
}

func cleanField(field string) string {
	field = strings.TrimPrefix(field, `"`)
	field = strings.TrimSuffix(field, `"`)
	return strings.TrimSpace(field)
}

func colAt(cols []string, i int) string {
	if i < len(cols) {
		return cols[i]
	}
	return ""
}

// ParseStudentCSV membaca isi file import siswa. Baris pertama dianggap
// header dan dibuang. Baris diterima hanya kalau menghasilkan minimal 4
// kolom dan RFID, nama, serta kelas tidak kosong; sisanya dihitung gagal
// tanpa menghentikan import. Urutan kolom:
// rfid, nis, nama, kelas, L/P, no hp siswa, nama wali, no hp wali.
func ParseStudentCSV(data string) ImportResult {
	var result ImportResult

	lines := strings.Split(data, "\n")
	first := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first {
			first = false // header
			continue
		}

		cols := strings.Split(line, ",")
		for i := range cols {
			cols[i] = cleanField(cols[i])
		}

		if len(cols) < 4 {
			result.Failed++
			continue
		}

		rfid, nis, name, className := cols[0], cols[1], cols[2], cols[3]
		if rfid == "" || name == "" || className == "" {
			result.Failed++
			continue
		}

		gender := "L"
		if colAt(cols, 4) == "P" {
			gender = "P"
		}

		result.Students = append(result.Students, model.Student{
			RFIDCode:      rfid,
			NIS:           nis,
			Name:          name,
			ClassName:     className,
			Gender:        gender,
			StudentPhone:  colAt(cols, 5),
			GuardianName:  colAt(cols, 6),
			GuardianPhone: colAt(cols, 7),
			PhotoURL:      "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random",
		})
		result.Success++
	}

	return result
}

// StudentsCSV menghasilkan isi file export data siswa.
func StudentsCSV(students []model.Student) string {
	lines := []string{"No,RFID,NIS,Nama Siswa,Kelas,L/P,Telepon Siswa,Nama Wali,Telepon Wali"}
	for i, s := range students {
		lines = append(lines, fmt.Sprintf(`%d,"%s","%s","%s","%s","%s","%s","%s","%s"`,
			i+1, s.RFIDCode, s.NIS, s.Name, s.ClassName, s.Gender, s.StudentPhone, s.GuardianName, s.GuardianPhone))
	}
	return strings.Join(lines, "\n")
}

// StudentTemplateCSV menghasilkan template import untuk diunduh operator.
func StudentTemplateCSV() string {
	return "RFID,NIS,Nama Lengkap,Kelas,Jenis Kelamin (L/P),No HP Siswa,Nama Wali,No HP Wali\n" +
		"1234567890,1001,Contoh Siswa,X IPA 1,L,08123456789,Orang Tua,08198765432"
}

// ReportCSV menghasilkan isi file export laporan absensi. RFID dicari dari
// direktori siswa; record yatim (siswa sudah dihapus) ditulis "-".
func ReportCSV(records []model.AttendanceRecord, students []model.Student) string {
	rfidByID := make(map[uint]string, len(students))
	for _, s := range students {
		rfidByID[s.ID] = s.RFIDCode
	}

	lines := []string{"No,Tanggal,Waktu,RFID,Nama Siswa,Kelas,Jenis,Status,Keterangan"}
	for i, r := range records {
		rfid := rfidByID[r.StudentID]
		if rfid == "" {
			rfid = "-"
		}
		lines = append(lines, fmt.Sprintf(`%d,"%s","%s","%s","%s","%s","%s","%s","%s"`,
			i+1, r.DateStr, r.TimeStr, rfid, r.StudentName, r.ClassName, Jenis(r.Status), r.Status, r.Description))
	}
	return strings.Join(lines, "\n")
}
