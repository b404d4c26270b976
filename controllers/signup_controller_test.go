// controllers/signup_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"community-connect/middleware"
	"community-connect/models"
	"community-connect/services"
	"community-connect/store"
)

func TestRegisterForRole_Success(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/register_for_role", middleware.VolunteerRequired(), RegisterForRole)
	cookie := volunteerSession(router, 7)

	svc := new(services.MockRegistrationService)
	svc.On("RegisterForRole", mock.Anything, 7, 3).Return(nil)
	SetRegistrationService(svc)

	w := postForm(router, "/register_for_role", "role_id=3", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	svc.AssertExpectations(t)
}

func TestRegisterForRole_Duplicate(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/register_for_role", middleware.VolunteerRequired(), RegisterForRole)
	cookie := volunteerSession(router, 7)

	svc := new(services.MockRegistrationService)
	svc.On("RegisterForRole", mock.Anything, 7, 3).Return(store.ErrAlreadySignedUp)
	SetRegistrationService(svc)

	w := postForm(router, "/register_for_role", "role_id=3", cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Already signed up", w.Body.String())
}

func TestRegisterForRole_MissingSkill(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/register_for_role", middleware.VolunteerRequired(), RegisterForRole)
	cookie := volunteerSession(router, 7)

	svc := new(services.MockRegistrationService)
	svc.On("RegisterForRole", mock.Anything, 7, 3).
		Return(&store.MissingSkillError{Skill: "First Aid"})
	SetRegistrationService(svc)

	w := postForm(router, "/register_for_role", "role_id=3", cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You do not have the required skill: First Aid", w.Body.String())
}

func TestRegisterForRole_RequiresVolunteer(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/register_for_role", middleware.VolunteerRequired(), RegisterForRole)
	cookie := organisationSession(router, 3)

	svc := new(services.MockRegistrationService)
	SetRegistrationService(svc)

	w := postForm(router, "/register_for_role", "role_id=3", cookie)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "RegisterForRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterForRole_BadRoleID(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/register_for_role", middleware.VolunteerRequired(), RegisterForRole)
	cookie := volunteerSession(router, 7)
	SetRegistrationService(new(services.MockRegistrationService))

	w := postForm(router, "/register_for_role", "role_id=banana", cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSignupStatus_Accepted(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/update_signup_status", middleware.OrganisationRequired(), UpdateSignupStatus)
	cookie := organisationSession(router, 3)

	st := new(store.MockStore)
	st.On("UpdateSignupStatus", mock.Anything, 12, models.StatusAccepted).Return(nil)
	SetRegistrationService(services.NewRegistrationService(st))

	w := postForm(router, "/update_signup_status", "signup_id=12&status=Accepted", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Signup Accepted"}`, w.Body.String())
	st.AssertExpectations(t)
}

func TestUpdateSignupStatus_InvalidStatus(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/update_signup_status", middleware.OrganisationRequired(), UpdateSignupStatus)
	cookie := organisationSession(router, 3)

	st := new(store.MockStore)
	SetRegistrationService(services.NewRegistrationService(st))

	// anything outside {Accepted, Rejected} is rejected regardless of id
	for _, status := range []string{"Pending", "Approved", ""} {
		w := postForm(router, "/update_signup_status", "signup_id=12&status="+status, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code, "status %q", status)
		assert.JSONEq(t, `{"error": "invalid status"}`, w.Body.String())
	}
	st.AssertNotCalled(t, "UpdateSignupStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSignupStatus_RequiresOrganisation(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/update_signup_status", middleware.OrganisationRequired(), UpdateSignupStatus)
	cookie := volunteerSession(router, 7)

	w := postForm(router, "/update_signup_status", "signup_id=12&status=Accepted", cookie)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestViewSignups_Volunteer(t *testing.T) {
	router := setupTestRouter(t)
	router.GET("/view_signups", middleware.AuthRequired, ViewSignups)
	cookie := volunteerSession(router, 7)

	st := new(store.MockStore)
	st.On("ListSignupsForVolunteer", mock.Anything, 7).
		Return([]models.SignupView{{ID: 1, Status: models.StatusPending, RoleName: "Steward"}}, nil)
	SetStore(st)

	req, _ := http.NewRequest("GET", "/view_signups", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	st.AssertExpectations(t)
}

func TestViewSignups_Organisation(t *testing.T) {
	router := setupTestRouter(t)
	router.GET("/view_signups", middleware.AuthRequired, ViewSignups)
	cookie := organisationSession(router, 3)

	st := new(store.MockStore)
	st.On("ListSignupsForOrganisation", mock.Anything, 3).
		Return([]models.SignupView{}, nil)
	SetStore(st)

	req, _ := http.NewRequest("GET", "/view_signups", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	st.AssertExpectations(t)
}

func TestViewSignups_RedirectsAnonymous(t *testing.T) {
	router := setupTestRouter(t)
	router.GET("/view_signups", middleware.AuthRequired, ViewSignups)

	req, _ := http.NewRequest("GET", "/view_signups", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
