package models

// AdminStats are the aggregates shown on the administrator dashboard.
type AdminStats struct {
	TotalUsers      int `json:"total_users"`
	TotalStudents   int `json:"total_students"`
	TotalTeachers   int `json:"total_teachers"`
	TotalCourses    int `json:"total_courses"`
	TotalAttendance int `json:"total_attendance"`
	AvgAttendance   int `json:"avg_attendance"`
}

// TeacherStats are the aggregates shown on the teacher dashboard.
type TeacherStats struct {
	TotalCourses    int `json:"total_courses"`
	TotalStudents   int `json:"total_students"`
	TodayAttendance int `json:"today_attendance"`
	AvgMarks        int `json:"avg_marks"`
}

// StudentStats are the aggregates shown on the student dashboard.
type StudentStats struct {
	TotalCourses         int `json:"total_courses"`
	AttendancePercentage int `json:"attendance_percentage"`
	AverageMarks         int `json:"average_marks"`
	TotalMarks           int `json:"total_marks"`
}

// Card is one summary tile.
type Card struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Activity is a line in an informational panel.
type Activity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
}

// Panel is a static informational block rendered under the cards.
type Panel struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Kind        string     `json:"kind"`
	Items       []Activity `json:"items"`
}

// Dashboard is the rendered view model for one role.
type Dashboard struct {
	Role     Role    `json:"role"`
	Stats    any     `json:"stats"`
	Cards    []Card  `json:"cards"`
	Panels   []Panel `json:"panels"`
	Degraded bool    `json:"degraded"`
}
