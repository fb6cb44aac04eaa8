package api

import (
	"net/http"

	"github.com/Frabbi727/mine-portfolio/database"
	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type dashboardHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	skillRepo   *database.SkillRepo
	contactRepo *database.ContactSubmissionRepo
}

func newDashboardHandler(projectRepo *database.ProjectRepo, skillRepo *database.SkillRepo, contactRepo *database.ContactSubmissionRepo) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		contactRepo: contactRepo,
	}
}

// DashboardStats summarizes the admin home counters
type DashboardStats struct {
	TotalProjects     int64 `json:"total_projects"`
	PublishedProjects int64 `json:"published_projects"`
	TotalSkills       int64 `json:"total_skills"`
	UnreadMessages    int64 `json:"unread_messages"`
	TotalViews        int64 `json:"total_views"`
}

// getStats returns the admin dashboard counters
// @Summary Get dashboard stats
// @Description Returns project, skill, unread message and view counters for the admin home
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardStats "Dashboard counters"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error computing stats"
// @Router /admin/dashboard [get]
func (h dashboardHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats DashboardStats
		var err error

		if stats.TotalProjects, err = h.projectRepo.Count(); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "projects", err))
			return
		}
		if stats.PublishedProjects, err = h.projectRepo.CountPublished(); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "published projects", err))
			return
		}
		if stats.TotalSkills, err = h.skillRepo.Count(); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "skills", err))
			return
		}
		if stats.UnreadMessages, err = h.contactRepo.CountUnread(); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "unread messages", err))
			return
		}
		if stats.TotalViews, err = h.projectRepo.SumViewCounts(); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("sum", "view counts", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
