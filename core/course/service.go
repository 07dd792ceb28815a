package course

import (
	"errors"
	"time"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/user"
)

var (
	// errors
	ErrNotFound = errors.New("course not found")

	errUnknownInstructor = errors.New("instructor not found")
)

type (
	Repository interface {
		CreateCourse(crs Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		// DeleteCourse removes a course and cascades to its sessions
		// (and their attendances).
		DeleteCourse(id int) error
	}

	Service struct {
		repo   Repository
		usrSvc *user.Service
	}
)

func NewService(repo Repository, usrSvc *user.Service) *Service {
	return &Service{repo: repo, usrSvc: usrSvc}
}

// Create persists a new course. The instructor reference must resolve to an
// existing user; whether that user actually has the instructor role is not
// checked (open product question).
func (svc *Service) Create(nc NewCourse) (Course, error) {
	if _, err := svc.usrSvc.GetByID(nc.InstructorID); err != nil {
		if err == user.ErrNotFound {
			return Course{}, core.NewValidationError(
				errUnknownInstructor,
				core.FieldError{Field: "instructor_id", Error: errUnknownInstructor.Error()},
			)
		}
		return Course{}, err
	}

	now := time.Now().UTC()
	crs := Course{
		Name:         nc.Name,
		InstructorID: nc.InstructorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return svc.repo.CreateCourse(crs)
}

// QueryAll returns every course, unscoped by owner.
func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id int) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Delete(id int) error {
	if _, err := svc.repo.GetCourseByID(id); err != nil {
		return err
	}
	return svc.repo.DeleteCourse(id)
}
