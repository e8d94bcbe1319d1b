package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"student-dashboard/app/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ListProfiles returns id, name and role of every profile.
func (s *Store) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, role FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		var role sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &role); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		p.Role = models.ParseRole(role.String)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *Store) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT id, name, email, password_hash, role, created_at
			  FROM profiles WHERE lower(email) = lower($1)`

	p := &models.Profile{}
	var role sql.NullString
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&p.ID, &p.Name, &p.Email, &p.PasswordHash, &role, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile by email: %w", err)
	}
	p.Role = models.ParseRole(role.String)
	return p, nil
}

// CreateProfile inserts p. p.ID and p.PasswordHash must already be set.
func (s *Store) CreateProfile(ctx context.Context, p *models.Profile) error {
	query := `INSERT INTO profiles (id, name, email, password_hash, role, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING created_at`

	var role sql.NullString
	if p.Role.Valid() {
		role = sql.NullString{String: string(p.Role), Valid: true}
	}

	err := s.db.QueryRowContext(ctx, query, p.ID, p.Name, p.Email, p.PasswordHash, role).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}
