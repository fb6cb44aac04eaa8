package api

import (
	"net/http"

	"github.com/Frabbi727/mine-portfolio/database"
	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/Frabbi727/mine-portfolio/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// publicHandler composes the visibility policy outputs into the three public
// view models. Stateless; every request recomputes from a fresh fetch.
type publicHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	skillRepo   *database.SkillRepo
	profileRepo *database.ProfileRepo
}

func newPublicHandler(projectRepo *database.ProjectRepo, skillRepo *database.SkillRepo, profileRepo *database.ProfileRepo) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		profileRepo: profileRepo,
	}
}

// PublicProjectsView is the public project grid with its filter options
type PublicProjectsView struct {
	Projects     []*models.Project `json:"projects"`
	Total        int               `json:"total"`
	Technologies []string          `json:"technologies"`
	Categories   []string          `json:"categories"`
}

// PublicSkillsView groups skills by their raw category string
type PublicSkillsView struct {
	Groups     map[string][]*models.Skill `json:"groups"`
	Categories []string                   `json:"categories"`
}

// getProjects returns published projects matching the optional filters
// @Summary Get public projects
// @Description Returns published projects, newest first, narrowed by the optional technology and category filters, plus the filter option lists
// @Tags Public
// @Produce json
// @Param technology query string false "Technology filter, defaults to All"
// @Param category query string false "Category filter, defaults to All"
// @Success 200 {object} PublicProjectsView "Project grid view"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h publicHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tech := r.URL.Query().Get("technology")
		if tech == "" {
			tech = services.FilterAll
		}
		category := r.URL.Query().Get("category")
		if category == "" {
			category = services.FilterAll
		}

		all, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		visible := services.VisibleProjects(all)
		filtered := services.FilterProjects(visible, tech, category)

		h.responder.WriteJSON(w, PublicProjectsView{
			Projects:     filtered,
			Total:        len(filtered),
			Technologies: services.DistinctTechnologies(all),
			Categories:   services.DistinctCategories(all),
		})
	}
}

// getSkills returns all skills grouped by category
// @Summary Get public skills
// @Description Returns skills grouped by raw category string, each group ascending by display order
// @Tags Public
// @Produce json
// @Success 200 {object} PublicSkillsView "Skill groups"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching skills"
// @Router /skills [get]
func (h publicHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skills", err))
			return
		}

		groups := services.GroupSkillsByCategory(skills)

		h.responder.WriteJSON(w, PublicSkillsView{
			Groups:     groups,
			Categories: services.SortedCategories(groups),
		})
	}
}

// getProfile returns the public profile header
// @Summary Get public profile
// @Description Returns the site owner's profile; 404 degrades to an empty-state display
// @Tags Public
// @Produce json
// @Success 200 {object} models.Profile "Profile header"
// @Failure 404 {object} ErrorResponse "Not Found - Profile not provisioned"
// @Router /profile [get]
func (h publicHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not provisioned"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}
