// File: store/events.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"community-connect/models"
)

const eventColumns = `id, name, date, location, start_time, end_time, description, organisation_id`

// ListEvents returns all events ordered by date ascending.
func (s *SQLStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.StartTime,
			&e.EndTime, &e.Description, &e.OrganisationID); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEvent returns a single event or ErrNotFound.
func (s *SQLStore) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	var e models.Event
	err := s.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.StartTime, &e.EndTime,
		&e.Description, &e.OrganisationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// CreateEvent inserts a new event owned by e.OrganisationID.
func (s *SQLStore) CreateEvent(ctx context.Context, e models.Event) (int, error) {
	var id int
	err := s.db.QueryRow(ctx,
		`INSERT INTO events (name, date, location, start_time, end_time, description, organisation_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		e.Name, e.Date, e.Location, e.StartTime, e.EndTime, e.Description, e.OrganisationID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

// DeleteEvent removes an event by id. Deleting a missing id is not an error.
func (s *SQLStore) DeleteEvent(ctx context.Context, id int) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// UpdateEventDescription updates an event's description by id.
func (s *SQLStore) UpdateEventDescription(ctx context.Context, id int, description string) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE events SET description = $1 WHERE id = $2`, description, id); err != nil {
		return fmt.Errorf("update event description: %w", err)
	}
	return nil
}
