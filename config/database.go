package config

import (
	"fmt"

	"absensi-rfid-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	// Jika pakai XAMPP default, user adalah "root" dan password kosong ""
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "absensi_sekolah"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	db.AutoMigrate(&model.Student{})
	db.AutoMigrate(&model.ClassRoom{})
	db.AutoMigrate(&model.PicketTeacher{})
	db.AutoMigrate(&model.AttendanceRecord{})
	db.AutoMigrate(&model.AppSettings{})

	DB = db
}
