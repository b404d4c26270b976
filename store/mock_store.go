// File: store/mock_store.go
package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"community-connect/models"
)

// Ensure MockStore implements Store
var _ Store = (*MockStore)(nil)

// MockStore is a mock Store implementation for testing, built on
// `mock.Mock`.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetVolunteerByCredentials(ctx context.Context, email, password string) (*models.Volunteer, error) {
	args := m.Called(ctx, email, password)
	if v := args.Get(0); v != nil {
		return v.(*models.Volunteer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) GetOrganisationByCredentials(ctx context.Context, email, password string) (*models.Organisation, error) {
	args := m.Called(ctx, email, password)
	if v := args.Get(0); v != nil {
		return v.(*models.Organisation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) CreateVolunteer(ctx context.Context, v models.Volunteer) (int, error) {
	args := m.Called(ctx, v)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) CreateOrganisation(ctx context.Context, o models.Organisation) (int, error) {
	args := m.Called(ctx, o)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) GetVolunteer(ctx context.Context, id int) (*models.Volunteer, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Volunteer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) GetOrganisation(ctx context.Context, id int) (*models.Organisation, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Organisation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListOrganisations(ctx context.Context) ([]models.Organisation, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Organisation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) UpdateVolunteerField(ctx context.Context, id int, field models.ProfileField, value string) error {
	args := m.Called(ctx, id, field, value)
	return args.Error(0)
}

func (m *MockStore) UpdateOrganisationField(ctx context.Context, id int, field models.ProfileField, value string) error {
	args := m.Called(ctx, id, field, value)
	return args.Error(0)
}

func (m *MockStore) GetVolunteerProfile(ctx context.Context, id int) (*models.Volunteer, []models.Skill, error) {
	args := m.Called(ctx, id)
	var v *models.Volunteer
	if got := args.Get(0); got != nil {
		v = got.(*models.Volunteer)
	}
	var skills []models.Skill
	if got := args.Get(1); got != nil {
		skills = got.([]models.Skill)
	}
	return v, skills, args.Error(2)
}

func (m *MockStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) CreateEvent(ctx context.Context, e models.Event) (int, error) {
	args := m.Called(ctx, e)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) DeleteEvent(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) UpdateEventDescription(ctx context.Context, id int, description string) error {
	args := m.Called(ctx, id, description)
	return args.Error(0)
}

func (m *MockStore) CreateEventRole(ctx context.Context, r models.EventRole) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) ListRolesForVolunteer(ctx context.Context, eventID, volunteerID int) ([]models.RoleView, error) {
	args := m.Called(ctx, eventID, volunteerID)
	if v := args.Get(0); v != nil {
		return v.([]models.RoleView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListRolesForEvent(ctx context.Context, eventID int) ([]models.RoleView, error) {
	args := m.Called(ctx, eventID)
	if v := args.Get(0); v != nil {
		return v.([]models.RoleView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListSkills(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) GetOrCreateSkill(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) ReplaceVolunteerSkills(ctx context.Context, volunteerID int, names []string) error {
	args := m.Called(ctx, volunteerID, names)
	return args.Error(0)
}

func (m *MockStore) RegisterForRole(ctx context.Context, volunteerID, roleID int) error {
	args := m.Called(ctx, volunteerID, roleID)
	return args.Error(0)
}

func (m *MockStore) UpdateSignupStatus(ctx context.Context, signupID int, status models.SignupStatus) error {
	args := m.Called(ctx, signupID, status)
	return args.Error(0)
}

func (m *MockStore) ListSignupsForVolunteer(ctx context.Context, volunteerID int) ([]models.SignupView, error) {
	args := m.Called(ctx, volunteerID)
	if v := args.Get(0); v != nil {
		return v.([]models.SignupView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListSignupsForOrganisation(ctx context.Context, organisationID int) ([]models.SignupView, error) {
	args := m.Called(ctx, organisationID)
	if v := args.Get(0); v != nil {
		return v.([]models.SignupView), args.Error(1)
	}
	return nil, args.Error(1)
}
