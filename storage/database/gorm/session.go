package gormrepos

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trezcool/mahudhurio/core/session"
)

type sessionRepository struct {
	db *gorm.DB
}

var _ session.Repository = (*sessionRepository)(nil) // interface compliance check

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) trapNoRowsErr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return session.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo *sessionRepository) CreateSession(sess session.Session) (session.Session, error) {
	row := toSessionRow(sess)
	if err := repo.db.Create(&row).Error; err != nil {
		return session.Session{}, errors.Wrap(err, "inserting session")
	}
	return row.toSession(), nil
}

func (repo *sessionRepository) QuerySessionsByCourse(courseID int) ([]session.Session, error) {
	var rows []sessionRow
	if err := repo.db.Where("course_id = ?", courseID).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying sessions")
	}
	sessions := make([]session.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, row.toSession())
	}
	return sessions, nil
}

func (repo *sessionRepository) GetSessionByID(id int) (session.Session, error) {
	var row sessionRow
	if err := repo.db.First(&row, id).Error; err != nil {
		return session.Session{}, repo.trapNoRowsErr(err, "finding session by ID")
	}
	return row.toSession(), nil
}

func (repo *sessionRepository) GetSessionByQRToken(token string) (session.Session, error) {
	var row sessionRow
	if err := repo.db.Where("qr_token = ?", token).First(&row).Error; err != nil {
		return session.Session{}, repo.trapNoRowsErr(err, "finding session by QR token")
	}
	return row.toSession(), nil
}

// DeleteSession relies on ON DELETE CASCADE to remove the session's
// attendances in the same statement.
func (repo *sessionRepository) DeleteSession(id int) error {
	if err := repo.db.Delete(&sessionRow{}, id).Error; err != nil {
		return errors.Wrap(err, "deleting session")
	}
	return nil
}
