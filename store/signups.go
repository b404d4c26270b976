// File: store/signups.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"community-connect/models"
)

// RegisterForRole creates a Pending signup for (volunteerID, roleID).
//
// The skill gate, the duplicate check and the insert run inside one
// transaction so two concurrent registrations for the same pair cannot both
// pass the pre-check. Locking the role row serialises attempts per role.
//
// Returns ErrNotFound (role missing), *MissingSkillError, or
// ErrAlreadySignedUp.
func (s *SQLStore) RegisterForRole(ctx context.Context, volunteerID, roleID int) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// lock the role row and resolve its required skill in one statement
	var requiredSkill *string
	err = tx.QueryRow(ctx,
		`SELECT s.name
		 FROM event_roles r
		 LEFT JOIN skills s ON s.id = r.skill_id
		 WHERE r.id = $1
		 FOR UPDATE OF r`, roleID,
	).Scan(&requiredSkill)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrNotFound
			return err
		}
		return fmt.Errorf("lock role row: %w", err)
	}

	if requiredSkill != nil {
		var count int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*)
			 FROM volunteer_skills vs
			 JOIN skills s ON s.id = vs.skill_id
			 WHERE vs.volunteer_id = $1 AND s.name = $2`,
			volunteerID, *requiredSkill,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("check volunteer skill: %w", err)
		}
		if count == 0 {
			err = &MissingSkillError{Skill: *requiredSkill}
			return err
		}
	}

	var existing int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM signups WHERE volunteer_id = $1 AND role_id = $2`,
		volunteerID, roleID,
	).Scan(&existing)
	if err != nil {
		return fmt.Errorf("check existing signup: %w", err)
	}
	if existing > 0 {
		err = ErrAlreadySignedUp
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO signups (volunteer_id, role_id, status) VALUES ($1, $2, $3)`,
		volunteerID, roleID, models.StatusPending)
	if err != nil {
		return fmt.Errorf("insert signup: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// UpdateSignupStatus moves a signup into a terminal review state. The status
// value is validated by the caller; here only row existence is checked.
func (s *SQLStore) UpdateSignupStatus(ctx context.Context, signupID int, status models.SignupStatus) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE signups SET status = $1 WHERE id = $2`, status, signupID)
	if err != nil {
		return fmt.Errorf("update signup status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSignupsForVolunteer returns the caller's signups joined with role and
// event context.
func (s *SQLStore) ListSignupsForVolunteer(ctx context.Context, volunteerID int) ([]models.SignupView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT su.id, su.status, r.name, e.name, e.date
		 FROM signups su
		 JOIN event_roles r ON r.id = su.role_id
		 JOIN events e ON e.id = r.event_id
		 WHERE su.volunteer_id = $1
		 ORDER BY su.id ASC`, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("list volunteer signups: %w", err)
	}
	return scanSignupViews(rows, false)
}

// ListSignupsForOrganisation returns every signup against the organisation's
// events, with the volunteer's name for review.
func (s *SQLStore) ListSignupsForOrganisation(ctx context.Context, organisationID int) ([]models.SignupView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT su.id, su.status, r.name, e.name, e.date, v.first_name || ' ' || v.last_name
		 FROM signups su
		 JOIN event_roles r ON r.id = su.role_id
		 JOIN events e ON e.id = r.event_id
		 JOIN volunteers v ON v.id = su.volunteer_id
		 WHERE e.organisation_id = $1
		 ORDER BY su.id ASC`, organisationID)
	if err != nil {
		return nil, fmt.Errorf("list organisation signups: %w", err)
	}
	return scanSignupViews(rows, true)
}

func scanSignupViews(rows pgx.Rows, withVolunteer bool) ([]models.SignupView, error) {
	defer rows.Close()

	var views []models.SignupView
	for rows.Next() {
		var sv models.SignupView
		var err error
		if withVolunteer {
			err = rows.Scan(&sv.ID, &sv.Status, &sv.RoleName, &sv.EventName, &sv.EventDate, &sv.VolunteerName)
		} else {
			err = rows.Scan(&sv.ID, &sv.Status, &sv.RoleName, &sv.EventName, &sv.EventDate)
		}
		if err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		views = append(views, sv)
	}
	return views, rows.Err()
}
