// Package controllers file: controllers/event_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"community-connect/logger"
	"community-connect/models"
)

// Events renders all events ordered by date ascending.
func Events(c *gin.Context) {
	events, err := db.ListEvents(c.Request.Context())
	if err != nil {
		logger.Error.Println("Events: list failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	userType, _, _ := currentUser(c)
	c.HTML(http.StatusOK, "events.html", gin.H{
		"Events":   events,
		"UserType": userType,
	})
}

// DeleteEvent handles POST /events: an organisation deletes an event by id.
// Non-organisation callers are bounced back to the listing. Deleting an id
// that no longer exists is a silent no-op.
//
// The original application lets any authenticated organisation delete any
// event; that gap is preserved here, not fixed.
func DeleteEvent(c *gin.Context) {
	userType, _, ok := currentUser(c)
	if !ok || userType != "organisation" {
		c.Redirect(http.StatusFound, "/events")
		return
	}

	eventID, err := strconv.Atoi(c.PostForm("event_id"))
	if err != nil {
		logger.Warn.Printf("DeleteEvent: bad event_id %q", c.PostForm("event_id"))
		c.Redirect(http.StatusFound, "/events")
		return
	}

	if err := db.DeleteEvent(c.Request.Context(), eventID); err != nil {
		logger.Error.Println("DeleteEvent: delete failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	logger.Info.Printf("DeleteEvent: event %d deleted", eventID)
	c.Redirect(http.StatusFound, "/events")
}

// AddEvent creates an event owned by the session organisation.
func AddEvent(c *gin.Context) {
	_, orgID, ok := currentUser(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	event := models.Event{
		Name:           c.PostForm("name"),
		Date:           c.PostForm("date"),
		Location:       c.PostForm("location"),
		StartTime:      c.PostForm("starttime"),
		EndTime:        c.PostForm("endtime"),
		Description:    c.PostForm("description"),
		OrganisationID: orgID,
	}

	id, err := db.CreateEvent(c.Request.Context(), event)
	if err != nil {
		logger.Error.Println("AddEvent: insert failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	logger.Info.Printf("AddEvent: organisation %d created event %d", orgID, id)
	c.String(http.StatusOK, "OK")
}

// EditEvent updates an event's description by id. Ownership of the event is
// not verified (preserved gap of the original application).
func EditEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.PostForm("event_id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid event id")
		return
	}

	if err := db.UpdateEventDescription(c.Request.Context(), eventID, c.PostForm("description")); err != nil {
		logger.Error.Println("EditEvent: update failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	c.String(http.StatusOK, "OK")
}

// AddEventRole creates a staffing role under an event, resolving the
// optional required skill name via get-or-create.
func AddEventRole(c *gin.Context) {
	eventID, err := strconv.Atoi(c.PostForm("event_id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid event id")
		return
	}

	role := models.EventRole{
		EventID:     eventID,
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	ctx := c.Request.Context()
	if skillName := c.PostForm("skill"); skillName != "" {
		skillID, err := db.GetOrCreateSkill(ctx, skillName)
		if err != nil {
			logger.Error.Println("AddEventRole: skill resolution failed:", err)
			c.String(http.StatusInternalServerError, "Internal error")
			return
		}
		role.SkillID = &skillID
	}

	id, err := db.CreateEventRole(ctx, role)
	if err != nil {
		logger.Error.Println("AddEventRole: insert failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	logger.Info.Printf("AddEventRole: role %d created under event %d", id, eventID)
	c.String(http.StatusOK, "OK")
}

// GetEventRoles returns an event's roles as JSON for the volunteer view,
// with the caller's signup status joined in where present.
func GetEventRoles(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Query("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_id"})
		return
	}
	_, volunteerID, _ := currentUser(c)

	roles, err := db.ListRolesForVolunteer(c.Request.Context(), eventID, volunteerID)
	if err != nil {
		logger.Error.Println("GetEventRoles: list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if roles == nil {
		roles = []models.RoleView{}
	}
	c.JSON(http.StatusOK, roles)
}

// GetOrgEventRoles returns an event's roles as JSON for the organisation
// view.
func GetOrgEventRoles(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Query("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_id"})
		return
	}

	roles, err := db.ListRolesForEvent(c.Request.Context(), eventID)
	if err != nil {
		logger.Error.Println("GetOrgEventRoles: list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if roles == nil {
		roles = []models.RoleView{}
	}
	c.JSON(http.StatusOK, roles)
}

// GetSkills returns every known skill as JSON.
func GetSkills(c *gin.Context) {
	skills, err := db.ListSkills(c.Request.Context())
	if err != nil {
		logger.Error.Println("GetSkills: list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	c.JSON(http.StatusOK, skills)
}
