package gormrepos

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trezcool/mahudhurio/core/attendance"
)

type attendanceRepository struct {
	db *gorm.DB
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *gorm.DB) *attendanceRepository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) CreateAttendance(att attendance.Attendance) (attendance.Attendance, error) {
	row := toAttendanceRow(att)
	if err := repo.db.Create(&row).Error; err != nil {
		return attendance.Attendance{}, errors.Wrap(err, "inserting attendance")
	}
	return row.toAttendance(), nil
}

func (repo *attendanceRepository) QueryAttendancesBySession(sessionID int) ([]attendance.Attendance, error) {
	var rows []attendanceRow
	if err := repo.db.Where("session_id = ?", sessionID).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying attendances")
	}
	attendances := make([]attendance.Attendance, 0, len(rows))
	for _, row := range rows {
		attendances = append(attendances, row.toAttendance())
	}
	return attendances, nil
}
