// File: store/roles.go
package store

import (
	"context"
	"fmt"

	"community-connect/models"
)

// CreateEventRole inserts a staffing role under an event. Event ownership is
// not verified here; the original application never did either.
func (s *SQLStore) CreateEventRole(ctx context.Context, r models.EventRole) (int, error) {
	var id int
	err := s.db.QueryRow(ctx,
		`INSERT INTO event_roles (event_id, name, description, skill_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		r.EventID, r.Name, r.Description, r.SkillID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert event role: %w", err)
	}
	return id, nil
}

// ListRolesForEvent returns an event's roles with the required skill name,
// for the organisation-facing listing.
func (s *SQLStore) ListRolesForEvent(ctx context.Context, eventID int) ([]models.RoleView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.id, r.event_id, r.name, r.description, COALESCE(s.name, '')
		 FROM event_roles r
		 LEFT JOIN skills s ON s.id = r.skill_id
		 WHERE r.event_id = $1
		 ORDER BY r.id ASC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event roles: %w", err)
	}
	defer rows.Close()

	var roles []models.RoleView
	for rows.Next() {
		var r models.RoleView
		if err := rows.Scan(&r.ID, &r.EventID, &r.Name, &r.Description, &r.SkillName); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

// ListRolesForVolunteer returns an event's roles with the calling
// volunteer's signup status joined in where a signup exists.
func (s *SQLStore) ListRolesForVolunteer(ctx context.Context, eventID, volunteerID int) ([]models.RoleView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.id, r.event_id, r.name, r.description, COALESCE(s.name, ''), COALESCE(su.status, '')
		 FROM event_roles r
		 LEFT JOIN skills s ON s.id = r.skill_id
		 LEFT JOIN signups su ON su.role_id = r.id AND su.volunteer_id = $2
		 WHERE r.event_id = $1
		 ORDER BY r.id ASC`, eventID, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("list roles for volunteer: %w", err)
	}
	defer rows.Close()

	var roles []models.RoleView
	for rows.Next() {
		var r models.RoleView
		if err := rows.Scan(&r.ID, &r.EventID, &r.Name, &r.Description,
			&r.SkillName, &r.SignupStatus); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}
