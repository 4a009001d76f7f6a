package ai

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"absensi-rfid-backend/internal/model"
)

func TestGenerateAttendanceReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "rahasia" {
			t.Errorf("key = %q, want rahasia", r.URL.Query().Get("key"))
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "Budi") {
			t.Error("data siswa tidak ikut terkirim di prompt")
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Ringkasan kehadiran minggu ini baik."}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "rahasia")
	students := []model.Student{{Name: "Budi", ClassName: "X IPA 1"}}
	records := []model.AttendanceRecord{{StudentName: "Budi", Status: model.StatusHadir, DateStr: "2026-08-30"}}

	got, err := c.GenerateAttendanceReport(records, students)
	if err != nil {
		t.Fatalf("GenerateAttendanceReport: %v", err)
	}
	if got != "Ringkasan kehadiran minggu ini baik." {
		t.Errorf("teks = %q", got)
	}
}

func TestGenerateAttendanceReportNoKey(t *testing.T) {
	c := NewClient("http://unused", "")
	if _, err := c.GenerateAttendanceReport(nil, nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestGenerateAttendanceReportUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "rahasia")
	if _, err := c.GenerateAttendanceReport(nil, nil); err == nil {
		t.Fatal("status 429 harus jadi error")
	}
}

func TestGenerateAttendanceReportEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "rahasia")
	if _, err := c.GenerateAttendanceReport(nil, nil); err == nil {
		t.Fatal("response tanpa kandidat harus jadi error")
	}
}
