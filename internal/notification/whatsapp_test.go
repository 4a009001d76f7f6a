package notification

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"absensi-rfid-backend/internal/model"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"085912345678", "6285912345678"},
		{"6285912345678", "6285912345678"},
		{"+6285912345678", "6285912345678"},
		{"0812-3456-789", "628123456789"},
		{"0812 3456 789", "628123456789"},
		{"85912345678", "6285912345678"},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func sampleStudent() model.Student {
	return model.Student{
		Name:          "Budi Santoso",
		ClassName:     "X IPA 1",
		GuardianName:  "Pak Santoso",
		GuardianPhone: "081234567890",
	}
}

func sampleRecord() model.AttendanceRecord {
	return model.AttendanceRecord{
		Status:  model.StatusHadir,
		DateStr: "2026-08-30",
		TimeStr: "06:50:12",
	}
}

func TestSendSkipsWithoutToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(srv.URL)
	if err := n.Send("", sampleStudent(), sampleRecord()); err != nil {
		t.Fatalf("Send tanpa token: %v", err)
	}
	if called {
		t.Error("gateway tetap dipanggil padahal token kosong")
	}
}

func TestSendNoGuardianPhone(t *testing.T) {
	n := NewWhatsAppNotifier("http://unused")
	s := sampleStudent()
	s.GuardianPhone = ""
	if err := n.Send("token123", s, sampleRecord()); !errors.Is(err, ErrNoGuardianPhone) {
		t.Errorf("error = %v, want ErrNoGuardianPhone", err)
	}
}

func TestSendSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "token123" {
			t.Errorf("Authorization = %q, want token123", r.Header.Get("Authorization"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("body bukan multipart: %v", err)
		}
		if got := r.FormValue("target"); got != "6281234567890" {
			t.Errorf("target = %q, want 6281234567890", got)
		}
		if msg := r.FormValue("message"); !strings.Contains(msg, "Budi Santoso") || !strings.Contains(msg, "Hadir") {
			t.Errorf("message tidak lengkap: %q", msg)
		}
		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(srv.URL)
	if err := n.Send("token123", sampleStudent(), sampleRecord()); err != nil {
		t.Fatalf("Send gagal: %v", err)
	}
}

func TestSendDisconnectedDevice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"reason":"request invalid on disconnected device"}`))
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(srv.URL)
	if err := n.Send("token123", sampleStudent(), sampleRecord()); !errors.Is(err, ErrDeviceDisconnected) {
		t.Errorf("error = %v, want ErrDeviceDisconnected", err)
	}
}

func TestSendRejectedOtherReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"reason":"invalid token"}`))
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(srv.URL)
	err := n.Send("token123", sampleStudent(), sampleRecord())
	if err == nil || errors.Is(err, ErrDeviceDisconnected) {
		t.Errorf("error = %v, want error penolakan biasa", err)
	}
}

func TestBuildChatLink(t *testing.T) {
	link, err := BuildChatLink("", sampleStudent(), sampleRecord())
	if err != nil {
		t.Fatalf("BuildChatLink: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/6281234567890?text=") {
		t.Errorf("link = %q, prefix salah", link)
	}
	if !strings.Contains(link, "Budi") {
		t.Errorf("nama siswa tidak ikut di pesan: %q", link)
	}
}

func TestBuildChatLinkCustomTemplate(t *testing.T) {
	s := sampleStudent()
	s.GuardianPhone = "+6281234567890"
	r := sampleRecord()

	link, err := BuildChatLink("{guardian}: {student} {status} {time}", s, r)
	if err != nil {
		t.Fatalf("BuildChatLink: %v", err)
	}
	if !strings.Contains(link, "wa.me/6281234567890") {
		t.Errorf("awalan +62 tidak dinormalkan: %q", link)
	}
	if !strings.Contains(link, "06%3A50%3A12") {
		t.Errorf("placeholder waktu tidak diganti: %q", link)
	}
}

func TestBuildChatLinkNoPhone(t *testing.T) {
	s := sampleStudent()
	s.GuardianPhone = ""
	if _, err := BuildChatLink("", s, sampleRecord()); !errors.Is(err, ErrNoGuardianPhone) {
		t.Errorf("error = %v, want ErrNoGuardianPhone", err)
	}
}
