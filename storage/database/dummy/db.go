package dummydb

import (
	"sync"

	"github.com/trezcool/mahudhurio/core/attendance"
	"github.com/trezcool/mahudhurio/core/course"
	"github.com/trezcool/mahudhurio/core/session"
	"github.com/trezcool/mahudhurio/core/user"
)

type (
	DB struct {
		user       *userTable
		course     *courseTable
		session    *sessionTable
		attendance *attendanceTable
	}

	userTable struct {
		sync.RWMutex
		seq   int
		table map[int]*user.User
	}

	courseTable struct {
		sync.RWMutex
		seq   int
		table map[int]*course.Course
	}

	sessionTable struct {
		sync.RWMutex
		seq   int
		table map[int]*session.Session
	}

	attendanceTable struct {
		sync.RWMutex
		seq   int
		table map[int]*attendance.Attendance
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[int]*user.User)},
		course:     &courseTable{table: make(map[int]*course.Course)},
		session:    &sessionTable{table: make(map[int]*session.Session)},
		attendance: &attendanceTable{table: make(map[int]*attendance.Attendance)},
	}
	return db, nil
}
