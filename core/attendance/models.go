package attendance

import (
	"time"

	"github.com/trezcool/mahudhurio/core"
)

// Attendance is one person's check-in/out record for a session. Rows are
// immutable once written.
type Attendance struct {
	ID        int       `json:"id"`
	SessionID int       `json:"session_id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Timestamp time.Time `json:"timestamp"` // UTC, submission time
	IP        string    `json:"ip"`
}

// SubmitAttendance carries an anonymous submission against a session's QR
// token. Name and surname are recorded verbatim; no trimming or
// normalization.
type SubmitAttendance struct {
	Token   string `json:"token" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
	IP      string `json:"ip"`
}

func (sa SubmitAttendance) Validate() error { return core.Validate.Struct(sa) }
