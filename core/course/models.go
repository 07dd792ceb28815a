package course

import (
	"time"

	"github.com/trezcool/mahudhurio/core"
)

type Course struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	InstructorID int       `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name         string `json:"name" validate:"required"`
	InstructorID int    `json:"instructor_id" validate:"required"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}
