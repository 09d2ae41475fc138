package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Manav933/Feedback/internal/api/http/handlers"
	"github.com/Manav933/Feedback/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Feedback       *handlers.FeedbackHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Every route passes through the policy
// middleware so each request is classified before the permission check.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	mw := cfg.AuthMiddleware

	authGroup := app.Group("/auth")
	authGroup.Post("/register", mw.Require(auth.ActionRegister), cfg.Users.Register)
	authGroup.Post("/login", mw.Require(auth.ActionLogin), cfg.Users.Login)
	authGroup.Post("/refresh", mw.Require(auth.ActionRefresh), cfg.Users.Refresh)
	authGroup.Post("/logout", mw.Require(auth.ActionLogout), cfg.Users.Logout)

	feedback := app.Group("/feedback")
	feedback.Post("/", mw.Require(auth.ActionCreateFeedback), cfg.Feedback.Create)
	feedback.Get("/", mw.Require(auth.ActionListFeedback), cfg.Feedback.List)
	feedback.Get("/stats", mw.Require(auth.ActionViewStats), cfg.Feedback.Stats)
	feedback.Get("/export_csv", mw.Require(auth.ActionExportFeedback), cfg.Feedback.ExportCSV)
	feedback.Get("/export_excel", mw.Require(auth.ActionExportFeedback), cfg.Feedback.ExportExcel)
	feedback.Get("/:id", mw.Require(auth.ActionViewFeedback), cfg.Feedback.Get)
	feedback.Put("/:id", mw.Require(auth.ActionUpdateFeedback), cfg.Feedback.Update)
	feedback.Delete("/:id", mw.Require(auth.ActionDeleteFeedback), cfg.Feedback.Delete)
}
