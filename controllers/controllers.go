// Package controllers maps HTTP requests onto the store and services.
// File: controllers/controllers.go
package controllers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"community-connect/logger"
	"community-connect/services"
	"community-connect/store"
)

// package-level seams, set from main and swapped by tests
var (
	db                  store.Store
	registrationService services.RegistrationServiceInterface

	// ApplicationURL is the externally reachable base URL, used for QR links.
	ApplicationURL string
)

// SetStore wires the storage backend used by all controllers.
func SetStore(s store.Store) {
	db = s
}

// SetRegistrationService wires the signup workflow service.
func SetRegistrationService(s services.RegistrationServiceInterface) {
	registrationService = s
}

// SetConfig sets the global application URL.
func SetConfig(appURL string) {
	ApplicationURL = appURL
	logger.Info.Printf("SetConfig: ApplicationURL=%s", appURL)
}

// ------------------ session helpers ------------------

// currentUser returns the session's user type and id, with ok=false when the
// session carries no authenticated identity.
func currentUser(c *gin.Context) (userType string, userID int, ok bool) {
	session := sessions.Default(c)
	userType, tOK := session.Get("user_type").(string)
	userID, iOK := session.Get("user_id").(int)
	return userType, userID, tOK && iOK
}

// displayName returns whichever of first_name/org_name the session holds.
func displayName(c *gin.Context) string {
	session := sessions.Default(c)
	if name, ok := session.Get("first_name").(string); ok {
		return name
	}
	if name, ok := session.Get("org_name").(string); ok {
		return name
	}
	return ""
}
