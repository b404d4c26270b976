// Package controllers file: controllers/profile_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"community-connect/logger"
	"community-connect/models"
)

// ShowEditProfile renders the profile edit form for the session user.
func ShowEditProfile(c *gin.Context) {
	userType, userID, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ctx := c.Request.Context()
	switch userType {
	case "volunteer":
		volunteer, skills, err := db.GetVolunteerProfile(ctx, userID)
		if err != nil {
			logger.Error.Println("ShowEditProfile: volunteer lookup failed:", err)
			c.String(http.StatusInternalServerError, "Internal error")
			return
		}
		names := make([]string, 0, len(skills))
		for _, s := range skills {
			names = append(names, s.Name)
		}
		c.HTML(http.StatusOK, "edit_profile.html", gin.H{
			"UserType":  userType,
			"Volunteer": volunteer,
			"Skills":    strings.Join(names, ", "),
		})
	case "organisation":
		org, err := db.GetOrganisation(ctx, userID)
		if err != nil {
			logger.Error.Println("ShowEditProfile: organisation lookup failed:", err)
			c.String(http.StatusInternalServerError, "Internal error")
			return
		}
		c.HTML(http.StatusOK, "edit_profile.html", gin.H{
			"UserType":     userType,
			"Organisation": org,
		})
	default:
		c.Redirect(http.StatusFound, "/login")
	}
}

// PerformEditProfile updates exactly one profile field per request. The
// field name is a tagged value validated against the session's user type;
// unknown tags are rejected outright rather than silently ignored.
func PerformEditProfile(c *gin.Context) {
	userType, userID, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	field, err := models.ParseProfileField(userType, c.PostForm("field"))
	if err != nil {
		logger.Warn.Printf("PerformEditProfile: %v", err)
		c.String(http.StatusBadRequest, "Unknown field")
		return
	}
	value := c.PostForm("value")

	ctx := c.Request.Context()
	switch {
	case field == models.FieldSkills:
		// full replace of the skill set, not a diff
		err = db.ReplaceVolunteerSkills(ctx, userID, models.ParseSkillList(value))
	case userType == "volunteer":
		err = db.UpdateVolunteerField(ctx, userID, field, value)
	default:
		err = db.UpdateOrganisationField(ctx, userID, field, value)
	}
	if err != nil {
		logger.Error.Printf("PerformEditProfile: update of %s failed: %v", field, err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}

	logger.Info.Printf("PerformEditProfile: %s %d updated %s", userType, userID, field)
	c.Redirect(http.StatusFound, "/edit_profile")
}
