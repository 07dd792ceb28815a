package dummydb

import (
	"sort"

	"github.com/trezcool/mahudhurio/core/session"
)

type sessionRepository struct {
	db    *sessionTable
	attDB *attendanceTable
}

var _ session.Repository = (*sessionRepository)(nil) // interface compliance check

func NewSessionRepository(db *DB) *sessionRepository {
	return &sessionRepository{db: db.session, attDB: db.attendance}
}

func (repo *sessionRepository) query() []session.Session {
	sessions := make([]session.Session, 0, len(repo.db.table))
	for _, sess := range repo.db.table {
		sessions = append(sessions, *sess)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions
}

func (repo *sessionRepository) CreateSession(sess session.Session) (session.Session, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	sess.ID = repo.db.seq
	repo.db.table[sess.ID] = &sess
	return sess, nil
}

func (repo *sessionRepository) QuerySessionsByCourse(courseID int) ([]session.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	sessions := make([]session.Session, 0)
	for _, sess := range repo.query() {
		if sess.CourseID == courseID {
			sessions = append(sessions, sess)
		}
	}
	return sessions, nil
}

func (repo *sessionRepository) GetSessionByID(id int) (session.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sess, ok := repo.db.table[id]; ok {
		return *sess, nil
	}
	return session.Session{}, session.ErrNotFound
}

func (repo *sessionRepository) GetSessionByQRToken(token string) (session.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, sess := range repo.query() {
		if sess.QRToken == token {
			return sess, nil
		}
	}
	return session.Session{}, session.ErrNotFound
}

// DeleteSession cascades into the attendance table the way the SQL schema's
// ON DELETE CASCADE does.
func (repo *sessionRepository) DeleteSession(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.attDB.Lock()
	defer repo.attDB.Unlock()

	for attID, att := range repo.attDB.table {
		if att.SessionID == id {
			delete(repo.attDB.table, attID)
		}
	}
	delete(repo.db.table, id)
	return nil
}
