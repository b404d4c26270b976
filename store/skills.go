// File: store/skills.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"community-connect/models"
)

// ListSkills returns every skill, ordered by name.
func (s *SQLStore) ListSkills(ctx context.Context) ([]models.Skill, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.ID, &sk.Name); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// GetOrCreateSkill resolves a skill name to its id, inserting the skill if
// it does not exist yet. Lookup is by exact name.
func (s *SQLStore) GetOrCreateSkill(ctx context.Context, name string) (int, error) {
	var id int
	err := s.db.QueryRow(ctx, `SELECT id FROM skills WHERE name = $1`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("lookup skill: %w", err)
	}

	// ON CONFLICT covers a concurrent insert of the same name.
	err = s.db.QueryRow(ctx,
		`INSERT INTO skills (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert skill: %w", err)
	}
	return id, nil
}

// ReplaceVolunteerSkills replaces a volunteer's skill set wholesale:
// delete-all then re-link each resolved name.
func (s *SQLStore) ReplaceVolunteerSkills(ctx context.Context, volunteerID int, names []string) error {
	if _, err := s.db.Exec(ctx,
		`DELETE FROM volunteer_skills WHERE volunteer_id = $1`, volunteerID); err != nil {
		return fmt.Errorf("clear volunteer skills: %w", err)
	}

	for _, name := range names {
		skillID, err := s.GetOrCreateSkill(ctx, name)
		if err != nil {
			return err
		}
		if _, err := s.db.Exec(ctx,
			`INSERT INTO volunteer_skills (volunteer_id, skill_id) VALUES ($1, $2)`,
			volunteerID, skillID); err != nil {
			return fmt.Errorf("link volunteer skill: %w", err)
		}
	}
	return nil
}
