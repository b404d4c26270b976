// main.go
package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"community-connect/config"
	"community-connect/controllers"
	"community-connect/logger"
	"community-connect/middleware"
	"community-connect/services"
	"community-connect/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "community-connect",
		Short: "Volunteer and organisation event coordination server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	rootCmd.AddCommand(initDBCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error.Printf("command failed: %v", err)
		os.Exit(1)
	}
}

// initDBCmd applies the database schema and exits.
func initDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the database tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := context.Background()
			pool, err := store.NewPool(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := store.New(pool).InitSchema(ctx); err != nil {
				return err
			}
			logger.Info.Println("init-db: schema applied")
			return nil
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetLogLevel(cfg.Env)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	pool, err := store.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	st := store.New(pool)
	controllers.SetStore(st)
	controllers.SetRegistrationService(services.NewRegistrationService(st))
	controllers.SetConfig(cfg.BaseURL)

	router := newRouter(cfg)

	logger.Info.Printf("serving on %s", cfg.Addr)
	return router.Run(cfg.Addr)
}

// newRouter assembles the Gin engine: session store, templates, static
// assets and all routes.
func newRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	// cookie-backed sessions
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("community_connect", sessionStore))

	// resolve templates relative to this source file so the server can be
	// started from any working directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	router.LoadHTMLGlob(filepath.Join(basepath, "templates", "*.html"))
	router.Static("/static", "./static")

	registerRoutes(router)
	return router
}

// registerRoutes wires every handler onto the engine.
func registerRoutes(router *gin.Engine) {
	router.GET("/health", controllers.Health)

	// public pages
	router.GET("/", controllers.Index)
	router.GET("/organisations", controllers.Organisations)
	router.GET("/events", controllers.Events)
	router.POST("/events", controllers.DeleteEvent)
	router.GET("/events/:id/qrcode", controllers.EventQRCode)
	router.GET("/view_volunteer/:id", controllers.ViewVolunteer)
	router.GET("/get_skills", controllers.GetSkills)

	// authentication
	router.GET("/login", controllers.ShowLoginPage)
	router.POST("/login", controllers.PerformLogin)
	router.GET("/logout", controllers.Logout)
	router.GET("/signup", controllers.ShowSignupChooser)
	router.GET("/signup/volunteer", controllers.ShowVolunteerSignup)
	router.POST("/signup/volunteer", controllers.PerformVolunteerSignup)
	router.GET("/signup/organisation", controllers.ShowOrganisationSignup)
	router.POST("/signup/organisation", controllers.PerformOrganisationSignup)

	// volunteer-only endpoints
	volunteer := router.Group("/", middleware.VolunteerRequired())
	{
		volunteer.GET("/get_event_roles", controllers.GetEventRoles)
		volunteer.POST("/register_for_role", controllers.RegisterForRole)
	}

	// organisation-only endpoints
	organisation := router.Group("/", middleware.OrganisationRequired())
	{
		organisation.POST("/add_event", controllers.AddEvent)
		organisation.POST("/edit_event", controllers.EditEvent)
		organisation.POST("/add_event_role", controllers.AddEventRole)
		organisation.GET("/get_org_event_roles", controllers.GetOrgEventRoles)
		organisation.POST("/update_signup_status", controllers.UpdateSignupStatus)
	}

	// any logged-in user
	authed := router.Group("/", middleware.AuthRequired)
	{
		authed.GET("/view_signups", controllers.ViewSignups)
		authed.GET("/edit_profile", controllers.ShowEditProfile)
		authed.POST("/edit_profile", controllers.PerformEditProfile)
	}
}
