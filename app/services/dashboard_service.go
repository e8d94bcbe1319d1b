package services

import (
	"context"
	"errors"
	"fmt"
	"student-dashboard/app/database"
	"student-dashboard/app/models"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNoRole          = errors.New("profile has no dashboard role")
	ErrMissingIdentity = errors.New("profile id is required")
)

// DashboardStore is the row source the dashboards aggregate over.
type DashboardStore interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	ListCourses(ctx context.Context, filter database.CourseFilter) ([]models.Course, error)
	ListEnrollments(ctx context.Context, filter database.EnrollmentFilter) ([]models.Enrollment, error)
	ListAttendance(ctx context.Context, filter database.AttendanceFilter) ([]models.AttendanceRecord, error)
	ListMarks(ctx context.Context, filter database.MarkFilter) ([]models.MarkRecord, error)
}

// DashboardService loads role-scoped statistics. Fetches for one dashboard
// run sequentially under a single deadline.
type DashboardService struct {
	store   DashboardStore
	log     *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewDashboardService(store DashboardStore, log *zap.Logger, timeout time.Duration) *DashboardService {
	return &DashboardService{
		store:   store,
		log:     log,
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *DashboardService) AdminStats(ctx context.Context) (models.AdminStats, error) {
	profiles, err := s.store.ListProfiles(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}
	courses, err := s.store.ListCourses(ctx, database.CourseFilter{})
	if err != nil {
		return models.AdminStats{}, err
	}
	attendance, err := s.store.ListAttendance(ctx, database.AttendanceFilter{})
	if err != nil {
		return models.AdminStats{}, err
	}

	return models.AdminStats{
		TotalUsers:      len(profiles),
		TotalStudents:   CountRole(profiles, models.RoleStudent),
		TotalTeachers:   CountRole(profiles, models.RoleTeacher),
		TotalCourses:    len(courses),
		TotalAttendance: len(attendance),
		AvgAttendance:   PercentPresent(attendance),
	}, nil
}

// TeacherStats skips every course-scoped query when the teacher owns no
// courses; an empty inclusion filter would otherwise match all rows.
func (s *DashboardService) TeacherStats(ctx context.Context, teacherID string) (models.TeacherStats, error) {
	if teacherID == "" {
		return models.TeacherStats{}, ErrMissingIdentity
	}

	courses, err := s.store.ListCourses(ctx, database.CourseFilter{TeacherID: teacherID})
	if err != nil {
		return models.TeacherStats{}, err
	}
	if len(courses) == 0 {
		return models.TeacherStats{}, nil
	}
	courseIDs := make([]string, len(courses))
	for i, c := range courses {
		courseIDs[i] = c.ID
	}

	enrollments, err := s.store.ListEnrollments(ctx, database.EnrollmentFilter{CourseIDs: courseIDs})
	if err != nil {
		return models.TeacherStats{}, err
	}

	today := s.now().UTC().Format("2006-01-02")
	attendance, err := s.store.ListAttendance(ctx, database.AttendanceFilter{CourseIDs: courseIDs, Date: today})
	if err != nil {
		return models.TeacherStats{}, err
	}

	marks, err := s.store.ListMarks(ctx, database.MarkFilter{CourseIDs: courseIDs})
	if err != nil {
		return models.TeacherStats{}, err
	}
	values, err := MarkValues(marks)
	if err != nil {
		return models.TeacherStats{}, err
	}

	return models.TeacherStats{
		TotalCourses:    len(courses),
		TotalStudents:   UniqueStudents(enrollments),
		TodayAttendance: len(attendance),
		AvgMarks:        MeanMarks(values),
	}, nil
}

// StudentStats skips attendance and marks when the student has no enrollments.
func (s *DashboardService) StudentStats(ctx context.Context, studentID string) (models.StudentStats, error) {
	if studentID == "" {
		return models.StudentStats{}, ErrMissingIdentity
	}

	enrollments, err := s.store.ListEnrollments(ctx, database.EnrollmentFilter{StudentID: studentID})
	if err != nil {
		return models.StudentStats{}, err
	}
	if len(enrollments) == 0 {
		return models.StudentStats{}, nil
	}
	courseIDs := make([]string, len(enrollments))
	for i, e := range enrollments {
		courseIDs[i] = e.CourseID
	}

	attendance, err := s.store.ListAttendance(ctx, database.AttendanceFilter{StudentID: studentID, CourseIDs: courseIDs})
	if err != nil {
		return models.StudentStats{}, err
	}

	marks, err := s.store.ListMarks(ctx, database.MarkFilter{StudentID: studentID, CourseIDs: courseIDs})
	if err != nil {
		return models.StudentStats{}, err
	}
	values, err := MarkValues(marks)
	if err != nil {
		return models.StudentStats{}, err
	}

	return models.StudentStats{
		TotalCourses:         len(enrollments),
		AttendancePercentage: PercentPresent(attendance),
		AverageMarks:         MeanMarks(values),
		TotalMarks:           len(marks),
	}, nil
}

// Build assembles the dashboard for profile's role. When a fetch fails the
// error is logged and returned alongside a zero-valued, Degraded dashboard.
func (s *DashboardService) Build(ctx context.Context, profile models.Profile) (*models.Dashboard, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		dash *models.Dashboard
		err  error
	)
	switch profile.Role {
	case models.RoleAdmin:
		var stats models.AdminStats
		stats, err = s.AdminStats(ctx)
		dash = &models.Dashboard{Stats: stats, Cards: AdminCards(stats), Panels: adminPanels}
	case models.RoleTeacher:
		var stats models.TeacherStats
		stats, err = s.TeacherStats(ctx, profile.ID)
		dash = &models.Dashboard{Stats: stats, Cards: TeacherCards(stats), Panels: teacherPanels}
	case models.RoleStudent:
		var stats models.StudentStats
		stats, err = s.StudentStats(ctx, profile.ID)
		dash = &models.Dashboard{Stats: stats, Cards: StudentCards(stats), Panels: studentPanels}
	case models.RoleNone:
		return nil, ErrNoRole
	default:
		return nil, fmt.Errorf("unsupported role %q", profile.Role)
	}
	dash.Role = profile.Role

	if err != nil {
		s.log.Error("dashboard statistics unavailable",
			zap.String("role", string(profile.Role)),
			zap.String("profile_id", profile.ID),
			zap.Error(err),
		)
		dash.Degraded = true
		return dash, err
	}
	return dash, nil
}
