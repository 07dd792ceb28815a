package dummydb

import (
	"sort"

	"github.com/trezcool/mahudhurio/core/course"
)

type courseRepository struct {
	db     *courseTable
	sessDB *sessionTable
	attDB  *attendanceTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db.course, sessDB: db.session, attDB: db.attendance}
}

func (repo *courseRepository) query() []course.Course {
	courses := make([]course.Course, 0, len(repo.db.table))
	for _, crs := range repo.db.table {
		courses = append(courses, *crs)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	crs.ID = repo.db.seq
	repo.db.table[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.db.table[id]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

// DeleteCourse cascades into the session and attendance tables the way the
// SQL schema's ON DELETE CASCADE does.
func (repo *courseRepository) DeleteCourse(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.sessDB.Lock()
	defer repo.sessDB.Unlock()
	repo.attDB.Lock()
	defer repo.attDB.Unlock()

	for sessID, sess := range repo.sessDB.table {
		if sess.CourseID != id {
			continue
		}
		for attID, att := range repo.attDB.table {
			if att.SessionID == sessID {
				delete(repo.attDB.table, attID)
			}
		}
		delete(repo.sessDB.table, sessID)
	}
	delete(repo.db.table, id)
	return nil
}
