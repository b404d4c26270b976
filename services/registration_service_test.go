// file: services/registration_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"community-connect/models"
	"community-connect/services"
	"community-connect/store"
)

func TestRegisterForRole_Delegates(t *testing.T) {
	st := new(store.MockStore)
	st.On("RegisterForRole", mock.Anything, 7, 3).Return(nil)

	svc := services.NewRegistrationService(st)
	err := svc.RegisterForRole(context.Background(), 7, 3)

	assert.NoError(t, err)
	st.AssertExpectations(t)
}

func TestRegisterForRole_PassesThroughWorkflowErrors(t *testing.T) {
	st := new(store.MockStore)
	st.On("RegisterForRole", mock.Anything, 7, 3).Return(store.ErrAlreadySignedUp)

	svc := services.NewRegistrationService(st)
	err := svc.RegisterForRole(context.Background(), 7, 3)

	assert.ErrorIs(t, err, store.ErrAlreadySignedUp)
}

func TestReview_ValidStatus(t *testing.T) {
	st := new(store.MockStore)
	st.On("UpdateSignupStatus", mock.Anything, 12, models.StatusAccepted).Return(nil)

	svc := services.NewRegistrationService(st)
	err := svc.Review(context.Background(), 12, "Accepted")

	assert.NoError(t, err)
	st.AssertExpectations(t)
}

func TestReview_InvalidStatusNeverTouchesStore(t *testing.T) {
	st := new(store.MockStore)
	svc := services.NewRegistrationService(st)

	for _, raw := range []string{"Pending", "accepted", "Cancelled", ""} {
		err := svc.Review(context.Background(), 12, raw)
		assert.ErrorIs(t, err, models.ErrInvalidStatus, "status %q", raw)
	}
	st.AssertNotCalled(t, "UpdateSignupStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReview_MissingSignup(t *testing.T) {
	st := new(store.MockStore)
	st.On("UpdateSignupStatus", mock.Anything, 99, models.StatusRejected).Return(store.ErrNotFound)

	svc := services.NewRegistrationService(st)
	err := svc.Review(context.Background(), 99, "Rejected")

	assert.ErrorIs(t, err, store.ErrNotFound)
}
