package model

import "gorm.io/gorm"

type Student struct {
	gorm.Model
	RFIDCode      string `json:"rfid_code" gorm:"column:rfid_code;unique;not null"`
	NIS           string `json:"nis" gorm:"column:nis"`
	Name          string `json:"name"`
	ClassName     string `json:"class_name"` // Referensi by name, bukan ID (ikut data lama)
	Gender        string `json:"gender"`     // L / P
	StudentPhone  string `json:"student_phone"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	PhotoURL      string `json:"photo_url"`
}
