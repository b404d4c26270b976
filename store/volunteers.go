// File: store/volunteers.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"community-connect/models"
)

const volunteerColumns = `id, email, password, first_name, last_name, phone, location, birthdate, bio`

func scanVolunteer(row pgx.Row) (*models.Volunteer, error) {
	var v models.Volunteer
	err := row.Scan(&v.ID, &v.Email, &v.Password, &v.FirstName, &v.LastName,
		&v.Phone, &v.Location, &v.BirthDate, &v.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan volunteer: %w", err)
	}
	return &v, nil
}

// GetVolunteerByCredentials matches email and password exactly, preserving
// the original application's plaintext comparison.
func (s *SQLStore) GetVolunteerByCredentials(ctx context.Context, email, password string) (*models.Volunteer, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers WHERE email = $1 AND password = $2`,
		email, password)
	return scanVolunteer(row)
}

// GetVolunteer returns a volunteer by id or ErrNotFound.
func (s *SQLStore) GetVolunteer(ctx context.Context, id int) (*models.Volunteer, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers WHERE id = $1`, id)
	return scanVolunteer(row)
}

// CreateVolunteer inserts a new volunteer and returns the generated id.
func (s *SQLStore) CreateVolunteer(ctx context.Context, v models.Volunteer) (int, error) {
	var id int
	err := s.db.QueryRow(ctx,
		`INSERT INTO volunteers (email, password, first_name, last_name, phone, location, birthdate, bio)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		v.Email, v.Password, v.FirstName, v.LastName, v.Phone, v.Location, v.BirthDate, v.Bio,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert volunteer: %w", err)
	}
	return id, nil
}

// volunteer profile fields that map straight onto a column
var volunteerColumnFor = map[models.ProfileField]string{
	models.FieldEmail:    "email",
	models.FieldPhone:    "phone",
	models.FieldLocation: "location",
	models.FieldBio:      "bio",
	models.FieldPassword: "password",
}

// UpdateVolunteerField updates a single profile column. The skills field is
// not a column and must go through ReplaceVolunteerSkills instead.
func (s *SQLStore) UpdateVolunteerField(ctx context.Context, id int, field models.ProfileField, value string) error {
	column, ok := volunteerColumnFor[field]
	if !ok {
		return fmt.Errorf("field %q is not a volunteer column", field)
	}
	_, err := s.db.Exec(ctx,
		`UPDATE volunteers SET `+column+` = $1 WHERE id = $2`, value, id)
	if err != nil {
		return fmt.Errorf("update volunteer %s: %w", column, err)
	}
	return nil
}

// GetVolunteerProfile returns a volunteer together with their skill list,
// for the public profile page and the edit form.
func (s *SQLStore) GetVolunteerProfile(ctx context.Context, id int) (*models.Volunteer, []models.Skill, error) {
	v, err := s.GetVolunteer(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT s.id, s.name
		 FROM volunteer_skills vs
		 JOIN skills s ON s.id = vs.skill_id
		 WHERE vs.volunteer_id = $1
		 ORDER BY s.name ASC`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list volunteer skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.ID, &sk.Name); err != nil {
			return nil, nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, sk)
	}
	return v, skills, rows.Err()
}
