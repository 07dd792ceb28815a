package session

import (
	"time"

	"github.com/trezcool/mahudhurio/core"
)

// Session types
const (
	TypeEntry = "entry"
	TypeExit  = "exit"
)

// Session is a scheduled class meeting. Its QRToken is the sole credential
// students present to record attendance.
type Session struct {
	ID        int       `json:"id"`
	CourseID  int       `json:"course_id"`
	QRToken   string    `json:"qr_token"`
	Date      time.Time `json:"date"`
	TimeStart string    `json:"time_start"` // HH:MM
	TimeEnd   string    `json:"time_end"`   // HH:MM
	Type      string    `json:"type"`       // entry | exit
	CreatedAt time.Time `json:"created_at"` // UTC
}

// NewSession contains information needed to create a new Session.
type NewSession struct {
	CourseID  int       `json:"course_id" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	TimeStart string    `json:"time_start" validate:"required,timeofday"`
	TimeEnd   string    `json:"time_end" validate:"required,timeofday"`
	Type      string    `json:"type" validate:"required,oneof=entry exit"`
}

func (ns *NewSession) Validate() error { return core.Validate.Struct(ns) }
