// Package services holds the signup workflow logic between the controllers
// and the store.
// File: services/registration_service.go
package services

import (
	"context"

	"community-connect/logger"
	"community-connect/models"
	"community-connect/store"
)

// RegistrationServiceInterface is what the controllers depend on; tests
// substitute a mock.
type RegistrationServiceInterface interface {
	RegisterForRole(ctx context.Context, volunteerID, roleID int) error
	Review(ctx context.Context, signupID int, rawStatus string) error
}

// RegistrationService runs the volunteer signup workflow against the store.
type RegistrationService struct {
	store store.Store
}

var _ RegistrationServiceInterface = (*RegistrationService)(nil)

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(st store.Store) *RegistrationService {
	return &RegistrationService{store: st}
}

// RegisterForRole creates a Pending signup for the volunteer. The skill gate
// and the duplicate check happen atomically in the store; this layer adds
// logging and keeps the controller free of workflow detail.
func (s *RegistrationService) RegisterForRole(ctx context.Context, volunteerID, roleID int) error {
	if err := s.store.RegisterForRole(ctx, volunteerID, roleID); err != nil {
		logger.Warn.Printf("RegisterForRole: volunteer=%d role=%d rejected: %v", volunteerID, roleID, err)
		return err
	}
	logger.Info.Printf("RegisterForRole: volunteer=%d registered for role=%d", volunteerID, roleID)
	return nil
}

// Review applies an organisation's decision to a signup. Only "Accepted" and
// "Rejected" are valid; "Pending" cannot be re-entered.
func (s *RegistrationService) Review(ctx context.Context, signupID int, rawStatus string) error {
	status, err := models.ParseReviewStatus(rawStatus)
	if err != nil {
		logger.Warn.Printf("Review: signup=%d invalid status %q", signupID, rawStatus)
		return err
	}
	if err := s.store.UpdateSignupStatus(ctx, signupID, status); err != nil {
		logger.Error.Printf("Review: signup=%d update failed: %v", signupID, err)
		return err
	}
	logger.Info.Printf("Review: signup=%d set to %s", signupID, status)
	return nil
}
