package database

import (
	"context"
	"fmt"
	"student-dashboard/app/models"
)

func (s *Store) ListAttendance(ctx context.Context, filter AttendanceFilter) ([]models.AttendanceRecord, error) {
	var where whereClause
	where.eq("student_id", filter.StudentID)
	where.in("course_id", filter.CourseIDs)
	where.eq("date", filter.Date)

	query := `SELECT student_id, course_id, date, status FROM attendance` + where.String()
	rows, err := s.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("query attendance: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var r models.AttendanceRecord
		if err := rows.Scan(&r.StudentID, &r.CourseID, &r.Date, &r.Status); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListMarks returns marks as text; numeric coercion happens at aggregation.
func (s *Store) ListMarks(ctx context.Context, filter MarkFilter) ([]models.MarkRecord, error) {
	var where whereClause
	where.eq("student_id", filter.StudentID)
	where.in("course_id", filter.CourseIDs)

	query := `SELECT student_id, course_id, marks::text FROM marks` + where.String()
	rows, err := s.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("query marks: %w", err)
	}
	defer rows.Close()

	var marks []models.MarkRecord
	for rows.Next() {
		var m models.MarkRecord
		if err := rows.Scan(&m.StudentID, &m.CourseID, &m.Marks); err != nil {
			return nil, fmt.Errorf("scan mark: %w", err)
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}
