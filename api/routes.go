package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public surface, the login endpoint and the
// token-gated admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.publicHandler.getProjects())
		r.Get("/skills", handlers.publicHandler.getSkills())
		r.Get("/profile", handlers.publicHandler.getProfile())
		r.Post("/contact", handlers.contactHandler.submitContact())

		r.Post("/auth/login", handlers.authHandler.login())
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Put("/project/{projectID}/published", handlers.projectHandler.setPublished())
		r.Put("/project/{projectID}/featured", handlers.projectHandler.setFeatured())

		// Skill endpoints
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Post("/skill", handlers.skillHandler.createSkill())
		r.Put("/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

		// Contact moderation endpoints
		r.Get("/contacts", handlers.contactHandler.getAllContacts())
		r.Put("/contact/{contactID}/read", handlers.contactHandler.setRead())
		r.Delete("/contact/{contactID}", handlers.contactHandler.deleteContact())

		// Profile endpoints
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Put("/profile", handlers.profileHandler.updateProfile())

		// Dashboard and uploads
		r.Get("/dashboard", handlers.dashboardHandler.getStats())
		r.Post("/upload", handlers.uploadHandler.upload())
	})
}
