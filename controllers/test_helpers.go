// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// setupTestRouter creates a new Gin engine with session middleware and fake
// HTML templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes minimal HTML templates so c.HTML calls do not
// panic during testing.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"index.html":               `<html><body>Index {{ .DisplayName }}</body></html>`,
		"login.html":               `<html><body>Login {{ .Error }}</body></html>`,
		"signup.html":              `<html><body>Signup</body></html>`,
		"volunteer_signup.html":    `<html><body>Volunteer signup {{ .Error }}</body></html>`,
		"organisation_signup.html": `<html><body>Organisation signup {{ .Error }}</body></html>`,
		"organisations.html":       `<html><body>Organisations</body></html>`,
		"events.html":              `<html><body>Events</body></html>`,
		"signups.html":             `<html><body>Signups</body></html>`,
		"edit_profile.html":        `<html><body>Edit profile</body></html>`,
		"volunteer.html":           `<html><body>{{ .Volunteer.FirstName }} age {{ .Age }}</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SetSession sets the given key/value pairs in the session using a helper
// route and returns the session cookie for subsequent test requests.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "testsession" {
			return cookie
		}
	}
	return nil
}

// volunteerSession seeds a volunteer session and returns its cookie.
func volunteerSession(router *gin.Engine, id int) *http.Cookie {
	return SetSession(router, "/set-volunteer-session", map[string]interface{}{
		"user_type":  "volunteer",
		"user_id":    id,
		"first_name": "Vera",
	})
}

// organisationSession seeds an organisation session and returns its cookie.
func organisationSession(router *gin.Engine, id int) *http.Cookie {
	return SetSession(router, "/set-organisation-session", map[string]interface{}{
		"user_type": "organisation",
		"user_id":   id,
		"org_name":  "Helpers Inc",
	})
}
