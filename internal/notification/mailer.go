package notification

import (
	"errors"
	"io"

	"absensi-rfid-backend/config"

	"gopkg.in/gomail.v2"
)

var ErrMailNotConfigured = errors.New("SMTP belum dikonfigurasi")

// ReportMailer mengirim laporan absensi (plus lampiran CSV) ke email guru piket.
type ReportMailer struct {
	cfg config.SMTPConfig
}

func NewReportMailer(cfg config.SMTPConfig) *ReportMailer {
	return &ReportMailer{cfg: cfg}
}

func (m *ReportMailer) SendReport(to, subject, body, attachmentName, attachment string) error {
	if m.cfg.Host == "" {
		return ErrMailNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if attachment != "" {
		msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write([]byte(attachment))
			return err
		}))
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
