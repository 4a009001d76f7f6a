package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"absensi-rfid-backend/internal/model"
)

// ErrDeviceDisconnected menandai device gateway yang terputus; operator perlu
// scan ulang QR code di dashboard Fonnte supaya notifikasi jalan lagi.
var ErrDeviceDisconnected = errors.New("device gateway WhatsApp terputus, silakan login ke fonnte.com dan scan ulang QR code")

var ErrNoGuardianPhone = errors.New("nomor HP wali murid tidak ditemukan")

const disconnectedReason = "request invalid on disconnected device"

type WhatsAppNotifier struct {
	endpoint string
	client   *http.Client
}

func NewWhatsAppNotifier(endpoint string) *WhatsAppNotifier {
	return &WhatsAppNotifier{endpoint: endpoint, client: http.DefaultClient}
}

// NormalizePhone membentuk nomor tujuan berawalan kode negara 62.
// Karakter non-digit dibuang; awalan 0 diganti 62; nomor tanpa kode negara
// dianggap nomor Indonesia.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "0"):
		return "62" + digits[1:]
	case !strings.HasPrefix(digits, "62"):
		return "62" + digits
	}
	return digits
}

// Send mengirim notifikasi absensi ke wali murid lewat gateway. Best effort:
// token kosong atau nomor kosong = skip tanpa error keras; kegagalan kirim
// tidak pernah membatalkan record yang sudah tertulis.
func (n *WhatsAppNotifier) Send(token string, student model.Student, record model.AttendanceRecord) error {
	if token == "" {
		return nil
	}
	if student.GuardianPhone == "" {
		return ErrNoGuardianPhone
	}

	message := fmt.Sprintf("📚 *INFORMASI ABSENSI SISWA*\nNama: %s\nKelas: %s\nStatus: %s\nWaktu: %s %s\n\nTerima kasih.",
		student.Name, student.ClassName, record.Status, record.DateStr, record.TimeStr)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("target", NormalizePhone(student.GuardianPhone))
	writer.WriteField("message", message)
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.endpoint, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Status bool   `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("response gateway tidak terbaca: %w", err)
	}
	if !result.Status {
		if result.Reason == disconnectedReason {
			return ErrDeviceDisconnected
		}
		return fmt.Errorf("gateway menolak pesan: %s", result.Reason)
	}
	return nil
}

const defaultChatTemplate = "Halo Bapak/Ibu *{guardian}*, diinformasikan bahwa siswa *{student}* telah melakukan absensi *{status}* pada pukul *{time}*."

// BuildChatLink membangun URL wa.me untuk chat manual yang dibuka operator.
// Placeholder template: {student}, {guardian}, {status}, {time}.
func BuildChatLink(template string, student model.Student, record model.AttendanceRecord) (string, error) {
	if student.GuardianPhone == "" {
		return "", ErrNoGuardianPhone
	}

	phone := strings.TrimSpace(student.GuardianPhone)
	if strings.HasPrefix(phone, "0") {
		phone = "62" + phone[1:]
	} else if strings.HasPrefix(phone, "+62") {
		phone = phone[1:]
	}

	if template == "" {
		template = defaultChatTemplate
	}
	guardian := student.GuardianName
	if guardian == "" {
		guardian = "Wali Murid"
	}

	message := template
	message = strings.Replace(message, "{guardian}", guardian, 1)
	message = strings.Replace(message, "{student}", student.Name, 1)
	message = strings.Replace(message, "{status}", record.Status, 1)
	message = strings.Replace(message, "{time}", record.TimeStr, 1)

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message), nil
}
