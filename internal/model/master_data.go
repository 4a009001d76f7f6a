package model

import "gorm.io/gorm"

type ClassRoom struct {
	gorm.Model
	Name            string `json:"name" gorm:"unique;not null"`
	HomeroomTeacher string `json:"homeroom_teacher"`
}

// PicketTeacher adalah akun guru piket. Password sengaja dibandingkan
// apa adanya saat login (bukan credential system); lihat usecase.AuthUsecase
// kalau mau mengganti skemanya.
type PicketTeacher struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// AppSettings adalah konfigurasi aplikasi, disimpan sebagai satu baris.
type AppSettings struct {
	gorm.Model
	AppName       string `json:"app_name"`
	AppLogo       string `json:"app_logo"`
	CheckInTime   string `json:"check_in_time"`  // Format 15:04, batas Hadir vs Terlambat
	CheckOutTime  string `json:"check_out_time"` // Format 15:04
	WaTemplate    string `json:"wa_template"`    // Template link click-to-chat
	WhatsappToken string `json:"whatsapp_token"` // Token gateway; kosong = notifikasi mati
}

// Nilai default settings saat baris belum ada di database.
func DefaultSettings() AppSettings {
	return AppSettings{
		AppName:      "Anoza",
		AppLogo:      "",
		CheckInTime:  "07:00",
		CheckOutTime: "15:00",
		WaTemplate:   "Halo Bapak/Ibu *{guardian}*, diinformasikan bahwa siswa *{student}* telah melakukan absensi *{status}* pada pukul *{time}*.",
	}
}
