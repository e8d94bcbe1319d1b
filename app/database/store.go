package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Store reads dashboard rows from PostgreSQL.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CourseFilter scopes a courses query. Empty fields do not filter.
type CourseFilter struct {
	TeacherID string
}

// EnrollmentFilter scopes a course_enrollments query. An empty CourseIDs
// slice does not filter, so callers must not pass one when they mean "none".
type EnrollmentFilter struct {
	StudentID string
	CourseIDs []string
}

// AttendanceFilter scopes an attendance query. Date is YYYY-MM-DD.
type AttendanceFilter struct {
	StudentID string
	CourseIDs []string
	Date      string
}

// MarkFilter scopes a marks query.
type MarkFilter struct {
	StudentID string
	CourseIDs []string
}

// whereClause accumulates AND-ed conditions with positional parameters.
type whereClause struct {
	conds []string
	args  []interface{}
}

func (w *whereClause) eq(column, value string) {
	if value == "" {
		return
	}
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

func (w *whereClause) in(column string, values []string) {
	if len(values) == 0 {
		return
	}
	w.args = append(w.args, pq.Array(values))
	w.conds = append(w.conds, fmt.Sprintf("%s = ANY($%d)", column, len(w.args)))
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
