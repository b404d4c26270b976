// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"community-connect/logger"
	"community-connect/models"
	"community-connect/store"
)

// ShowLoginPage renders the shared login form.
func ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// PerformLogin authenticates against the volunteers table first, then the
// organisations table; a volunteer sharing credentials with an organisation
// wins. Credentials are compared in plaintext, matching the original
// application. A failed attempt logs server-side and re-renders the form.
func PerformLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		logger.Warn.Println("PerformLogin: missing email or password")
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Please fill in all fields.",
		})
		return
	}

	ctx := c.Request.Context()
	session := sessions.Default(c)

	volunteer, err := db.GetVolunteerByCredentials(ctx, email, password)
	if err == nil {
		session.Set("user_type", "volunteer")
		session.Set("user_id", volunteer.ID)
		session.Set("first_name", volunteer.FirstName)
		if err := session.Save(); err != nil {
			logger.Error.Println("PerformLogin: failed to save session:", err)
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{
				"Error": "Internal error, please try again.",
			})
			return
		}
		logger.Info.Printf("PerformLogin: volunteer %d logged in", volunteer.ID)
		c.Redirect(http.StatusFound, "/")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		logger.Error.Println("PerformLogin: volunteer lookup failed:", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Internal error, please try again.",
		})
		return
	}

	org, err := db.GetOrganisationByCredentials(ctx, email, password)
	if err == nil {
		session.Set("user_type", "organisation")
		session.Set("user_id", org.ID)
		session.Set("org_name", org.Name)
		if err := session.Save(); err != nil {
			logger.Error.Println("PerformLogin: failed to save session:", err)
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{
				"Error": "Internal error, please try again.",
			})
			return
		}
		logger.Info.Printf("PerformLogin: organisation %d logged in", org.ID)
		c.Redirect(http.StatusFound, "/")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		logger.Error.Println("PerformLogin: organisation lookup failed:", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Internal error, please try again.",
		})
		return
	}

	// invalid credentials surface only in the server log
	logger.Warn.Printf("PerformLogin: invalid credentials for %s", email)
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Logout clears all session state unconditionally.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: error saving session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowSignupChooser renders the volunteer-or-organisation chooser page.
func ShowSignupChooser(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// ShowVolunteerSignup renders the volunteer registration form.
func ShowVolunteerSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "volunteer_signup.html", gin.H{})
}

// PerformVolunteerSignup creates a volunteer account and redirects to login.
func PerformVolunteerSignup(c *gin.Context) {
	birthdate, err := time.Parse("2006-01-02", c.PostForm("birthdate"))
	if err != nil {
		logger.Warn.Printf("PerformVolunteerSignup: bad birthdate %q", c.PostForm("birthdate"))
		c.HTML(http.StatusBadRequest, "volunteer_signup.html", gin.H{
			"Error": "Please provide a valid birthdate (YYYY-MM-DD).",
		})
		return
	}

	v := models.Volunteer{
		Email:     c.PostForm("email"),
		Password:  c.PostForm("password"),
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Phone:     c.PostForm("phone"),
		Location:  c.PostForm("location"),
		BirthDate: birthdate,
	}

	id, err := db.CreateVolunteer(c.Request.Context(), v)
	if err != nil {
		logger.Error.Println("PerformVolunteerSignup: insert failed:", err)
		c.HTML(http.StatusInternalServerError, "volunteer_signup.html", gin.H{
			"Error": "Internal error, please try again.",
		})
		return
	}
	logger.Info.Printf("PerformVolunteerSignup: created volunteer %d", id)
	c.Redirect(http.StatusFound, "/login")
}

// ShowOrganisationSignup renders the organisation registration form.
func ShowOrganisationSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "organisation_signup.html", gin.H{})
}

// PerformOrganisationSignup creates an organisation account and redirects to
// login.
func PerformOrganisationSignup(c *gin.Context) {
	o := models.Organisation{
		Email:       c.PostForm("email"),
		Password:    c.PostForm("password"),
		Name:        c.PostForm("org_name"),
		Address:     c.PostForm("address"),
		Website:     c.PostForm("website"),
		Description: c.PostForm("description"),
	}

	id, err := db.CreateOrganisation(c.Request.Context(), o)
	if err != nil {
		logger.Error.Println("PerformOrganisationSignup: insert failed:", err)
		c.HTML(http.StatusInternalServerError, "organisation_signup.html", gin.H{
			"Error": "Internal error, please try again.",
		})
		return
	}
	logger.Info.Printf("PerformOrganisationSignup: created organisation %d", id)
	c.Redirect(http.StatusFound, "/login")
}
