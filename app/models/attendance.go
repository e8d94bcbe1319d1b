package models

import "time"

// AttendanceRecord is one attendance row for a student in a course on a date.
type AttendanceRecord struct {
	StudentID string           `json:"student_id"`
	CourseID  string           `json:"course_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
}

// MarkRecord is one assessment result. Marks holds the store's textual
// representation of a numeric column and is coerced when aggregated.
type MarkRecord struct {
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	Marks     string `json:"marks"`
}
