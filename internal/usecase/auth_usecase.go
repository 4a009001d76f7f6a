package usecase

import (
	"errors"
	"time"

	"absensi-rfid-backend/config"
	"absensi-rfid-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("username atau password salah")

// Peran yang dibawa di token JWT.
const (
	RoleAdmin     = "admin"
	RoleGuruPiket = "guru_piket"
	tokenValidity = 24 * time.Hour
)

// AuthUsecase memegang seluruh logika pencocokan kredensial supaya skemanya
// bisa diganti tanpa menyentuh bagian lain. Akun guru piket dicocokkan
// dengan password apa adanya (mengikuti data lama); akun admin memakai hash
// bcrypt dari environment kalau dikonfigurasi.
type AuthUsecase struct {
	teacherRepo repository.PicketTeacherRepository
}

func NewAuthUsecase(teacherRepo repository.PicketTeacherRepository) *AuthUsecase {
	return &AuthUsecase{teacherRepo: teacherRepo}
}

type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *AuthUsecase) Login(username, password string) (string, *Session, error) {
	if username == config.AdminUsername() && u.checkAdminPassword(password) {
		session := &Session{Username: "Administrator", Role: RoleAdmin}
		token, err := generateToken(username, RoleAdmin)
		if err != nil {
			return "", nil, err
		}
		return token, session, nil
	}

	teacher, err := u.teacherRepo.FindByUsername(username)
	if err != nil || teacher.Password != password {
		return "", nil, ErrInvalidCredentials
	}

	session := &Session{Username: teacher.Username, Role: RoleGuruPiket}
	token, err := generateToken(teacher.Username, RoleGuruPiket)
	if err != nil {
		return "", nil, err
	}
	return token, session, nil
}

func (u *AuthUsecase) checkAdminPassword(password string) bool {
	if hash := config.AdminPasswordHash(); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	// Tanpa hash terkonfigurasi, fallback ke password default lama.
	return password == config.GetEnv("ADMIN_PASSWORD", "admin")
}

func generateToken(username, role string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(tokenValidity).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
