// File: services/mock_registration_service.go
package services

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Ensure MockRegistrationService implements RegistrationServiceInterface
var _ RegistrationServiceInterface = (*MockRegistrationService)(nil)

// MockRegistrationService is a mock implementation for testing, built on
// `mock.Mock`.
type MockRegistrationService struct {
	mock.Mock
}

// RegisterForRole (Mocked)
func (m *MockRegistrationService) RegisterForRole(ctx context.Context, volunteerID, roleID int) error {
	args := m.Called(ctx, volunteerID, roleID)
	return args.Error(0)
}

// Review (Mocked)
func (m *MockRegistrationService) Review(ctx context.Context, signupID int, rawStatus string) error {
	args := m.Called(ctx, signupID, rawStatus)
	return args.Error(0)
}
