package database

import (
	"log"

	"absensi-rfid-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Pengaturan Default
	settings := model.DefaultSettings()
	db.FirstOrCreate(&settings, model.AppSettings{AppName: settings.AppName})

	// 2. Seed Kelas Contoh
	classes := []model.ClassRoom{
		{Name: "X IPA 1", HomeroomTeacher: "Ibu Ratna"},
		{Name: "X IPA 2", HomeroomTeacher: "Pak Dedi"},
	}
	for _, cls := range classes {
		db.FirstOrCreate(&cls, model.ClassRoom{Name: cls.Name})
	}

	// 3. Seed Akun Guru Piket Contoh
	teacher := model.PicketTeacher{
		Username: "guru.piket",
		Email:    "guru.piket@sekolah.local",
		Password: "piket123", // Plaintext, mengikuti skema login lama
	}
	db.FirstOrCreate(&teacher, model.PicketTeacher{Username: teacher.Username})

	// 4. Seed Siswa Contoh
	student := model.Student{
		RFIDCode:      "0011225812",
		NIS:           "1001",
		Name:          "Contoh Siswa",
		ClassName:     "X IPA 1",
		Gender:        "L",
		StudentPhone:  "08123456789",
		GuardianName:  "Orang Tua",
		GuardianPhone: "08198765432",
	}
	db.FirstOrCreate(&student, model.Student{RFIDCode: student.RFIDCode})

	// 5. Cetak hash bcrypt untuk ADMIN_PASSWORD_HASH (akun admin tidak
	// disimpan di database, hanya di environment).
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err == nil {
		log.Println("Contoh ADMIN_PASSWORD_HASH (password 'admin'):", string(hash))
	}

	log.Println("Seeding selesai!")
}
