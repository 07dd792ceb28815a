package gormrepos

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trezcool/mahudhurio/core/course"
)

type courseRepository struct {
	db *gorm.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *gorm.DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) trapNoRowsErr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return course.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	row := toCourseRow(crs)
	if err := repo.db.Create(&row).Error; err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return row.toCourse(), nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	var rows []courseRow
	if err := repo.db.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.toCourse())
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	var row courseRow
	if err := repo.db.First(&row, id).Error; err != nil {
		return course.Course{}, repo.trapNoRowsErr(err, "finding course by ID")
	}
	return row.toCourse(), nil
}

// DeleteCourse relies on ON DELETE CASCADE to remove the course's sessions
// and their attendances in the same statement.
func (repo *courseRepository) DeleteCourse(id int) error {
	if err := repo.db.Delete(&courseRow{}, id).Error; err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return nil
}
