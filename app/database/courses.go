package database

import (
	"context"
	"fmt"
	"student-dashboard/app/models"
)

func (s *Store) ListCourses(ctx context.Context, filter CourseFilter) ([]models.Course, error) {
	var where whereClause
	where.eq("teacher_id", filter.TeacherID)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, code, teacher_id FROM courses`+where.String(), where.args...)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.TeacherID); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (s *Store) ListEnrollments(ctx context.Context, filter EnrollmentFilter) ([]models.Enrollment, error) {
	var where whereClause
	where.eq("student_id", filter.StudentID)
	where.in("course_id", filter.CourseIDs)

	rows, err := s.db.QueryContext(ctx, `SELECT student_id, course_id FROM course_enrollments`+where.String(), where.args...)
	if err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.StudentID, &e.CourseID); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
