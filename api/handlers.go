package api

import (
	"github.com/Frabbi727/mine-portfolio/database"
	"github.com/Frabbi727/mine-portfolio/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, uploader *storage.Uploader, c map[string]string) *routeHandlers {
	return &routeHandlers{
		projectHandler:   newProjectHandler(database.ProjectRepo()),
		skillHandler:     newSkillHandler(database.SkillRepo()),
		contactHandler:   newContactHandler(database.ContactSubmissionRepo(), c),
		profileHandler:   newProfileHandler(database.ProfileRepo()),
		publicHandler:    newPublicHandler(database.ProjectRepo(), database.SkillRepo(), database.ProfileRepo()),
		dashboardHandler: newDashboardHandler(database.ProjectRepo(), database.SkillRepo(), database.ContactSubmissionRepo()),
		uploadHandler:    newUploadHandler(uploader),
		authHandler:      newAuthHandler(c),
	}
}
