package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"absensi-rfid-backend/internal/model"
)

var ErrNotConfigured = errors.New("AI_API_KEY belum dikonfigurasi")

// Client memanggil layanan teks generatif (Gemini) untuk membuat ringkasan
// laporan absensi. Satu kali request tanpa retry dan tanpa streaming;
// kegagalan cukup dikembalikan sebagai error ke pemanggil.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{endpoint: endpoint, apiKey: apiKey, client: http.DefaultClient}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateAttendanceReport mengirim seluruh data record dan siswa lalu
// mengembalikan teks ringkasan apa adanya.
func (c *Client) GenerateAttendanceReport(records []model.AttendanceRecord, students []model.Student) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	recordJSON, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	studentJSON, err := json.Marshal(students)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"Anda adalah asisten kepala sekolah. Buat ringkasan naratif singkat (bahasa Indonesia) dari data absensi berikut: tren kehadiran, siswa yang sering terlambat atau alpha, dan saran tindak lanjut.\n\nData siswa:\n%s\n\nData absensi:\n%s",
		studentJSON, recordJSON)

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("layanan AI mengembalikan status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("layanan AI tidak mengembalikan teks")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
