// Package controllers file: controllers/page_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"community-connect/logger"
	"community-connect/services"
	"community-connect/store"
)

// Health responds to load-balancer health checks.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Index renders the landing page with the session's display name when one
// is set.
func Index(c *gin.Context) {
	userType, _, _ := currentUser(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"UserType":    userType,
		"DisplayName": displayName(c),
	})
}

// Organisations renders all organisations ordered by name.
func Organisations(c *gin.Context) {
	orgs, err := db.ListOrganisations(c.Request.Context())
	if err != nil {
		logger.Error.Println("Organisations: list failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	c.HTML(http.StatusOK, "organisations.html", gin.H{
		"Organisations": orgs,
	})
}

// ViewVolunteer renders a volunteer's public profile with computed age and
// skill list.
func ViewVolunteer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid volunteer id")
		return
	}

	volunteer, skills, err := db.GetVolunteerProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, "Volunteer not found")
			return
		}
		logger.Error.Println("ViewVolunteer: lookup failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}

	c.HTML(http.StatusOK, "volunteer.html", gin.H{
		"Volunteer": volunteer,
		"Age":       volunteer.Age(time.Now()),
		"Skills":    skills,
	})
}

// EventQRCode serves a PNG QR code linking to the event page, for printed
// flyers and posters.
func EventQRCode(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid event id")
		return
	}

	if _, err := db.GetEvent(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, "Event not found")
			return
		}
		logger.Error.Println("EventQRCode: event lookup failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}

	png, err := services.GenerateEventQRCode(ApplicationURL, id, 300, qrcode.Encode)
	if err != nil {
		logger.Error.Printf("EventQRCode: generation failed: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"event.png\"")
	if _, err := c.Writer.Write(png); err != nil {
		logger.Error.Printf("EventQRCode: error writing response: %v", err)
	}
}
