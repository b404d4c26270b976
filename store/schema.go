// File: store/schema.go
package store

import (
	"context"
	"fmt"
)

// schema mirrors the original Community Connect tables. Referential
// integrity between tables is application-enforced; only skills.name carries
// a constraint.
const schema = `
CREATE TABLE IF NOT EXISTS volunteers (
	id          SERIAL PRIMARY KEY,
	email       TEXT NOT NULL,
	password    TEXT NOT NULL,
	first_name  TEXT NOT NULL,
	last_name   TEXT NOT NULL,
	phone       TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	birthdate   DATE NOT NULL,
	bio         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS organisations (
	id          SERIAL PRIMARY KEY,
	email       TEXT NOT NULL,
	password    TEXT NOT NULL,
	name        TEXT NOT NULL,
	address     TEXT NOT NULL DEFAULT '',
	website     TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS events (
	id              SERIAL PRIMARY KEY,
	name            TEXT NOT NULL,
	date            TEXT NOT NULL,
	location        TEXT NOT NULL DEFAULT '',
	start_time      TEXT NOT NULL DEFAULT '',
	end_time        TEXT NOT NULL DEFAULT '',
	description     TEXT NOT NULL DEFAULT '',
	organisation_id INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS event_roles (
	id          SERIAL PRIMARY KEY,
	event_id    INTEGER NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	skill_id    INTEGER
);

CREATE TABLE IF NOT EXISTS skills (
	id   SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS volunteer_skills (
	volunteer_id INTEGER NOT NULL,
	skill_id     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS signups (
	id           SERIAL PRIMARY KEY,
	volunteer_id INTEGER NOT NULL,
	role_id      INTEGER NOT NULL,
	status       TEXT NOT NULL DEFAULT 'Pending'
);
`

// InitSchema applies the schema. Safe to run repeatedly.
func (s *SQLStore) InitSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
