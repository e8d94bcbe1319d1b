package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"student-dashboard/app/models"
)

// roundHalfUp rounds .5 towards +Inf, matching how percentages are displayed.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Percent returns part/total*100 rounded, or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(total) * 100)
}

// PercentPresent is the rounded share of records whose status is present.
func PercentPresent(records []models.AttendanceRecord) int {
	return Percent(CountPresent(records), len(records))
}

func CountPresent(records []models.AttendanceRecord) int {
	n := 0
	for _, r := range records {
		if r.Status == models.Present {
			n++
		}
	}
	return n
}

// MeanMarks returns the rounded arithmetic mean, or 0 for no values.
func MeanMarks(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return roundHalfUp(sum / float64(len(values)))
}

// ParseMarks coerces a stored marks value to a finite number.
func ParseMarks(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("marks %q: %w", raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("marks %q: not a finite number", raw)
	}
	return v, nil
}

// MarkValues parses every record; one bad value fails the whole set.
func MarkValues(records []models.MarkRecord) ([]float64, error) {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		v, err := ParseMarks(r.Marks)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func UniqueStudents(enrollments []models.Enrollment) int {
	seen := make(map[string]struct{}, len(enrollments))
	for _, e := range enrollments {
		seen[e.StudentID] = struct{}{}
	}
	return len(seen)
}

// CountRole counts profiles holding role.
func CountRole(profiles []models.Profile, role models.Role) int {
	n := 0
	for _, p := range profiles {
		if p.Role == role {
			n++
		}
	}
	return n
}

// PerformanceLabel grades a rounded average score.
func PerformanceLabel(avg int) string {
	switch {
	case avg >= 80:
		return "Excellent"
	case avg >= 60:
		return "Good"
	default:
		return "Needs Improvement"
	}
}
