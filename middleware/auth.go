// Package middleware provides session-role guards for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"community-connect/logger"
)

// -------------- authentication middleware --------------

// AuthRequired ensures a user of either kind is logged in. Unauthenticated
// requests are redirected to the login page.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") == nil {
		logger.Warn.Printf("AuthRequired: no session user for %s", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// VolunteerRequired blocks any request whose session is not a volunteer.
func VolunteerRequired() gin.HandlerFunc {
	return userTypeRequired("volunteer")
}

// OrganisationRequired blocks any request whose session is not an
// organisation.
func OrganisationRequired() gin.HandlerFunc {
	return userTypeRequired("organisation")
}

func userTypeRequired(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		got, ok := session.Get("user_type").(string)
		if !ok || got != userType {
			logger.Warn.Printf("%sRequired: blocked %s %s (session user_type=%q)",
				userType, c.Request.Method, c.Request.URL.Path, got)
			c.String(http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
