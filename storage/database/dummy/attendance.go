package dummydb

import (
	"sort"

	"github.com/trezcool/mahudhurio/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) *attendanceRepository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) CreateAttendance(att attendance.Attendance) (attendance.Attendance, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	att.ID = repo.db.seq
	repo.db.table[att.ID] = &att
	return att, nil
}

func (repo *attendanceRepository) QueryAttendancesBySession(sessionID int) ([]attendance.Attendance, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	attendances := make([]attendance.Attendance, 0)
	for _, att := range repo.db.table {
		if att.SessionID == sessionID {
			attendances = append(attendances, *att)
		}
	}
	sort.Slice(attendances, func(i, j int) bool { return attendances[i].ID < attendances[j].ID })
	return attendances, nil
}
