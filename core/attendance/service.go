package attendance

import (
	"time"

	"github.com/trezcool/mahudhurio/core/session"
)

type (
	Repository interface {
		CreateAttendance(att Attendance) (Attendance, error)
		// QueryAttendancesBySession returns rows in insertion order.
		QueryAttendancesBySession(sessionID int) ([]Attendance, error)
	}

	Service struct {
		repo     Repository
		sessRepo session.Repository
	}
)

func NewService(repo Repository, sessRepo session.Repository) *Service {
	return &Service{repo: repo, sessRepo: sessRepo}
}

// Submit resolves the presented token to a session and appends a new
// attendance row. Unknown tokens fail with session.ErrNotFound and write
// nothing. The session's declared time window is not enforced and duplicate
// submissions are accepted as separate rows (open product questions);
// concurrent submissions are independent inserts.
func (svc *Service) Submit(sa SubmitAttendance) (Attendance, error) {
	sess, err := svc.sessRepo.GetSessionByQRToken(sa.Token)
	if err != nil {
		return Attendance{}, err
	}

	att := Attendance{
		SessionID: sess.ID,
		Name:      sa.Name,
		Surname:   sa.Surname,
		Timestamp: time.Now().UTC(),
		IP:        sa.IP,
	}
	return svc.repo.CreateAttendance(att)
}

func (svc *Service) QueryBySession(sessionID int) ([]Attendance, error) {
	return svc.repo.QueryAttendancesBySession(sessionID)
}
