package gormrepos

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trezcool/mahudhurio/core/attendance"
	"github.com/trezcool/mahudhurio/core/course"
	"github.com/trezcool/mahudhurio/core/session"
	"github.com/trezcool/mahudhurio/core/user"
)

// Row types are the persisted shape of the core entities; they never leak
// out of this package.

type userRow struct {
	ID           int    `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Role         string `gorm:"not null"`
	IsActive     bool
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    time.Time
}

func (userRow) TableName() string { return "users" }

type courseRow struct {
	ID           int     `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	InstructorID int     `gorm:"not null"`
	Instructor   userRow `gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (courseRow) TableName() string { return "courses" }

type sessionRow struct {
	ID        int       `gorm:"primaryKey"`
	CourseID  int       `gorm:"not null"`
	Course    courseRow `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	QRToken   string    `gorm:"column:qr_token;uniqueIndex;not null"`
	Date      time.Time `gorm:"not null"`
	TimeStart string    `gorm:"not null"`
	TimeEnd   string    `gorm:"not null"`
	Type      string    `gorm:"not null"`
	CreatedAt time.Time
}

func (sessionRow) TableName() string { return "sessions" }

type attendanceRow struct {
	ID        int        `gorm:"primaryKey"`
	SessionID int        `gorm:"not null;index"`
	Session   sessionRow `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Name      string     `gorm:"not null"`
	Surname   string     `gorm:"not null"`
	Timestamp time.Time  `gorm:"not null"`
	IP        string     `gorm:"column:ip;not null"`
}

func (attendanceRow) TableName() string { return "attendances" }

// Migrate creates or updates the schema for all aggregates.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&userRow{}, &courseRow{}, &sessionRow{}, &attendanceRow{})
	return errors.Wrap(err, "migrating database")
}

// converters

func (r userRow) toUser() user.User {
	return user.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Role:         r.Role,
		IsActive:     r.IsActive,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		LastLogin:    r.LastLogin,
	}
}

func toUserRow(usr user.User) userRow {
	return userRow{
		ID:           usr.ID,
		Name:         usr.Name,
		Email:        usr.Email,
		Role:         usr.Role,
		IsActive:     usr.IsActive,
		PasswordHash: usr.PasswordHash,
		CreatedAt:    usr.CreatedAt,
		UpdatedAt:    usr.UpdatedAt,
		LastLogin:    usr.LastLogin,
	}
}

func (r courseRow) toCourse() course.Course {
	return course.Course{
		ID:           r.ID,
		Name:         r.Name,
		InstructorID: r.InstructorID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toCourseRow(crs course.Course) courseRow {
	return courseRow{
		ID:           crs.ID,
		Name:         crs.Name,
		InstructorID: crs.InstructorID,
		CreatedAt:    crs.CreatedAt,
		UpdatedAt:    crs.UpdatedAt,
	}
}

func (r sessionRow) toSession() session.Session {
	return session.Session{
		ID:        r.ID,
		CourseID:  r.CourseID,
		QRToken:   r.QRToken,
		Date:      r.Date,
		TimeStart: r.TimeStart,
		TimeEnd:   r.TimeEnd,
		Type:      r.Type,
		CreatedAt: r.CreatedAt,
	}
}

func toSessionRow(sess session.Session) sessionRow {
	return sessionRow{
		ID:        sess.ID,
		CourseID:  sess.CourseID,
		QRToken:   sess.QRToken,
		Date:      sess.Date,
		TimeStart: sess.TimeStart,
		TimeEnd:   sess.TimeEnd,
		Type:      sess.Type,
		CreatedAt: sess.CreatedAt,
	}
}

func (r attendanceRow) toAttendance() attendance.Attendance {
	return attendance.Attendance{
		ID:        r.ID,
		SessionID: r.SessionID,
		Name:      r.Name,
		Surname:   r.Surname,
		Timestamp: r.Timestamp,
		IP:        r.IP,
	}
}

func toAttendanceRow(att attendance.Attendance) attendanceRow {
	return attendanceRow{
		ID:        att.ID,
		SessionID: att.SessionID,
		Name:      att.Name,
		Surname:   att.Surname,
		Timestamp: att.Timestamp,
		IP:        att.IP,
	}
}
