package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret dipakai oleh usecase (sign token) dan middleware (verify token).
// Diambil dari satu tempat agar tidak mismatch antar file.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia-absensi-sekolah"))
}

// Akun admin bawaan (bukan guru piket). ADMIN_PASSWORD_HASH berisi hash
// bcrypt, bisa di-generate lewat cmd/seeder.
func AdminUsername() string {
	return GetEnv("ADMIN_USERNAME", "admin")
}

func AdminPasswordHash() string {
	return GetEnv("ADMIN_PASSWORD_HASH", "")
}

// Endpoint gateway WhatsApp (Fonnte). Bisa dioverride untuk testing.
func WhatsAppGatewayURL() string {
	return GetEnv("WA_GATEWAY_URL", "https://api.fonnte.com/send")
}

// Endpoint layanan teks generatif untuk Laporan AI.
func AIEndpoint() string {
	return GetEnv("AI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent")
}

func AIAPIKey() string {
	return GetEnv("AI_API_KEY", "")
}

// Konfigurasi SMTP untuk kirim laporan via email.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func SMTP() SMTPConfig {
	return SMTPConfig{
		Host:     GetEnv("SMTP_HOST", ""),
		Port:     GetEnvAsInt("SMTP_PORT", 587),
		Username: GetEnv("SMTP_USERNAME", ""),
		Password: GetEnv("SMTP_PASSWORD", ""),
		From:     GetEnv("SMTP_FROM", "no-reply@sekolah.local"),
	}
}
