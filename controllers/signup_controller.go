// Package controllers file: controllers/signup_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"community-connect/logger"
	"community-connect/models"
	"community-connect/store"
)

// RegisterForRole signs the session volunteer up for a role. Responses carry
// the human-readable outcome with a matching status code: "OK" 200,
// "Already signed up" 400, a missing-skill message 400.
func RegisterForRole(c *gin.Context) {
	_, volunteerID, ok := currentUser(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	roleID, err := strconv.Atoi(c.PostForm("role_id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid role id")
		return
	}

	err = registrationService.RegisterForRole(c.Request.Context(), volunteerID, roleID)
	if err != nil {
		var missing *store.MissingSkillError
		switch {
		case errors.Is(err, store.ErrAlreadySignedUp):
			c.String(http.StatusBadRequest, "Already signed up")
		case errors.As(err, &missing):
			c.String(http.StatusBadRequest,
				fmt.Sprintf("You do not have the required skill: %s", missing.Skill))
		case errors.Is(err, store.ErrNotFound):
			c.String(http.StatusNotFound, "Role not found")
		default:
			logger.Error.Println("RegisterForRole: registration failed:", err)
			c.String(http.StatusInternalServerError, "Internal error")
		}
		return
	}
	c.String(http.StatusOK, "OK")
}

// UpdateSignupStatus applies an organisation's Accepted/Rejected decision to
// a signup. Any other status value is rejected before touching the store.
func UpdateSignupStatus(c *gin.Context) {
	signupID, err := strconv.Atoi(c.PostForm("signup_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signup id"})
		return
	}
	status := c.PostForm("status")

	err = registrationService.Review(c.Request.Context(), signupID, status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "signup not found"})
		default:
			logger.Error.Println("UpdateSignupStatus: review failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Signup %s", status),
	})
}

// ViewSignups renders the signups listing scoped to the caller: a volunteer
// sees their own registrations, an organisation sees registrations against
// its events.
func ViewSignups(c *gin.Context) {
	userType, userID, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ctx := c.Request.Context()
	var (
		views []models.SignupView
		err   error
	)
	switch userType {
	case "volunteer":
		views, err = db.ListSignupsForVolunteer(ctx, userID)
	case "organisation":
		views, err = db.ListSignupsForOrganisation(ctx, userID)
	default:
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err != nil {
		logger.Error.Println("ViewSignups: list failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}

	c.HTML(http.StatusOK, "signups.html", gin.H{
		"Signups":        views,
		"IsOrganisation": userType == "organisation",
	})
}
