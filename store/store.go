// Package store implements all database access for the application.
// It uses pgx directly (no ORM); each method maps to one or two SQL
// statements, and only role registration spans a transaction.
// File: store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"community-connect/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadySignedUp is returned when a volunteer registers twice for the
// same role.
var ErrAlreadySignedUp = errors.New("already signed up")

// MissingSkillError is returned when a role requires a skill the volunteer
// does not have.
type MissingSkillError struct {
	Skill string
}

func (e *MissingSkillError) Error() string {
	return fmt.Sprintf("missing required skill: %s", e.Skill)
}

// Store is the persistence surface the controllers and services depend on.
// Tests swap in a mock; production uses SQLStore.
type Store interface {
	// identities
	GetVolunteerByCredentials(ctx context.Context, email, password string) (*models.Volunteer, error)
	GetOrganisationByCredentials(ctx context.Context, email, password string) (*models.Organisation, error)
	CreateVolunteer(ctx context.Context, v models.Volunteer) (int, error)
	CreateOrganisation(ctx context.Context, o models.Organisation) (int, error)
	GetVolunteer(ctx context.Context, id int) (*models.Volunteer, error)
	GetOrganisation(ctx context.Context, id int) (*models.Organisation, error)
	ListOrganisations(ctx context.Context) ([]models.Organisation, error)
	UpdateVolunteerField(ctx context.Context, id int, field models.ProfileField, value string) error
	UpdateOrganisationField(ctx context.Context, id int, field models.ProfileField, value string) error
	GetVolunteerProfile(ctx context.Context, id int) (*models.Volunteer, []models.Skill, error)

	// events and roles
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int) (*models.Event, error)
	CreateEvent(ctx context.Context, e models.Event) (int, error)
	DeleteEvent(ctx context.Context, id int) error
	UpdateEventDescription(ctx context.Context, id int, description string) error
	CreateEventRole(ctx context.Context, r models.EventRole) (int, error)
	ListRolesForVolunteer(ctx context.Context, eventID, volunteerID int) ([]models.RoleView, error)
	ListRolesForEvent(ctx context.Context, eventID int) ([]models.RoleView, error)

	// skills
	ListSkills(ctx context.Context) ([]models.Skill, error)
	GetOrCreateSkill(ctx context.Context, name string) (int, error)
	ReplaceVolunteerSkills(ctx context.Context, volunteerID int, names []string) error

	// signups
	RegisterForRole(ctx context.Context, volunteerID, roleID int) error
	UpdateSignupStatus(ctx context.Context, signupID int, status models.SignupStatus) error
	ListSignupsForVolunteer(ctx context.Context, volunteerID int) ([]models.SignupView, error)
	ListSignupsForOrganisation(ctx context.Context, organisationID int) ([]models.SignupView, error)
}

// SQLStore is the pgx-backed Store implementation.
type SQLStore struct {
	db *pgxpool.Pool
}

// New constructs a SQLStore on top of an existing pool.
func New(db *pgxpool.Pool) *SQLStore {
	return &SQLStore{db: db}
}

// NewPool creates and validates a pgxpool connection pool for the given DSN.
// It retries a few times to accommodate a database that is still starting.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	// pool sizing for a small service
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= 5; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				return pool, nil
			}
			pool.Close()
			err = fmt.Errorf("ping failed on attempt %d", attempt)
		}
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect to postgres: %w", err)
}
