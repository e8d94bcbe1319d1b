package models

// Course is taught by at most one teacher.
type Course struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	TeacherID *string `json:"teacher_id,omitempty"`
}

// Enrollment links a student to a course (course_enrollments).
type Enrollment struct {
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
}
