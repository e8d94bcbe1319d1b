package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type migration struct {
	name  string
	query string
}

var migrations = []migration{
	{
		name: "create profiles",
		query: `
		CREATE TABLE IF NOT EXISTS profiles (
			id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name          TEXT NOT NULL,
			email         TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role          VARCHAR(16) CHECK (role IN ('admin', 'teacher', 'student')),
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE UNIQUE INDEX IF NOT EXISTS profiles_email_key ON profiles (lower(email));`,
	},
	{
		name: "create courses",
		query: `
		CREATE TABLE IF NOT EXISTS courses (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name       TEXT NOT NULL,
			code       TEXT NOT NULL DEFAULT '',
			teacher_id UUID REFERENCES profiles (id) ON DELETE SET NULL
		);
		CREATE INDEX IF NOT EXISTS courses_teacher_id_idx ON courses (teacher_id);`,
	},
	{
		name: "create course_enrollments",
		query: `
		CREATE TABLE IF NOT EXISTS course_enrollments (
			student_id UUID NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
			course_id  UUID NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
			PRIMARY KEY (student_id, course_id)
		);
		CREATE INDEX IF NOT EXISTS course_enrollments_course_id_idx ON course_enrollments (course_id);`,
	},
	{
		name: "create attendance",
		query: `
		CREATE TABLE IF NOT EXISTS attendance (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
			course_id  UUID NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
			date       DATE NOT NULL,
			status     VARCHAR(10) NOT NULL CHECK (status IN ('present', 'absent', 'late', 'excused'))
		);
		CREATE INDEX IF NOT EXISTS attendance_course_date_idx ON attendance (course_id, date);`,
	},
	{
		name: "create marks",
		query: `
		CREATE TABLE IF NOT EXISTS marks (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
			course_id  UUID NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
			marks      NUMERIC(5,2) NOT NULL
		);
		CREATE INDEX IF NOT EXISTS marks_course_id_idx ON marks (course_id);`,
	},
}

// RunMigrations creates the dashboard schema. Every step is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	log.Info("running database migrations", zap.Int("steps", len(migrations)))

	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.query); err != nil {
			log.Error("migration failed", zap.String("step", m.name), zap.Error(err))
			return fmt.Errorf("migration %q: %w", m.name, err)
		}
		log.Debug("migration applied", zap.String("step", m.name))
	}

	log.Info("database migrations completed")
	return nil
}
