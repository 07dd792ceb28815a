package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/course"
)

var (
	// errors
	ErrNotFound = errors.New("session not found")

	errUnknownCourse = errors.New("course not found")
)

type (
	Repository interface {
		CreateSession(sess Session) (Session, error)
		QuerySessionsByCourse(courseID int) ([]Session, error)
		GetSessionByID(id int) (Session, error)
		// GetSessionByQRToken does an exact-match lookup; no normalization.
		GetSessionByQRToken(token string) (Session, error)
		DeleteSession(id int) error
	}

	Service struct {
		repo      Repository
		courseSvc *course.Service
	}
)

func NewService(repo Repository, courseSvc *course.Service) *Service {
	return &Service{repo: repo, courseSvc: courseSvc}
}

// Create persists a new session with a freshly minted QR token. The token is
// a v4 UUID; collision probability is negligible and it is not re-checked
// against the store.
func (svc *Service) Create(ns NewSession) (Session, error) {
	if _, err := svc.courseSvc.GetByID(ns.CourseID); err != nil {
		if err == course.ErrNotFound {
			return Session{}, core.NewValidationError(
				errUnknownCourse,
				core.FieldError{Field: "course_id", Error: errUnknownCourse.Error()},
			)
		}
		return Session{}, err
	}

	sess := Session{
		CourseID:  ns.CourseID,
		QRToken:   uuid.NewString(),
		Date:      ns.Date,
		TimeStart: ns.TimeStart,
		TimeEnd:   ns.TimeEnd,
		Type:      ns.Type,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateSession(sess)
}

func (svc *Service) QueryByCourse(courseID int) ([]Session, error) {
	return svc.repo.QuerySessionsByCourse(courseID)
}

func (svc *Service) GetByID(id int) (Session, error) {
	return svc.repo.GetSessionByID(id)
}

func (svc *Service) GetByQRToken(token string) (Session, error) {
	return svc.repo.GetSessionByQRToken(token)
}

func (svc *Service) Delete(id int) error {
	if _, err := svc.repo.GetSessionByID(id); err != nil {
		return err
	}
	return svc.repo.DeleteSession(id)
}
