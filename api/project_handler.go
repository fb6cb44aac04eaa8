package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Frabbi727/mine-portfolio/database"
	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/Frabbi727/mine-portfolio/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectRequest is the admin form payload. Technologies arrive as a single
// comma-separated string and are normalized before persistence.
type projectRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	LongDescription *string `json:"long_description"`
	Technologies    string  `json:"technologies"`
	Category        string  `json:"category"`
	ImageURL        *string `json:"image_url"`
	DemoURL         *string `json:"demo_url"`
	GithubURL       *string `json:"github_url"`
	IsFeatured      bool    `json:"is_featured"`
	IsPublished     bool    `json:"is_published"`
}

func (req projectRequest) apply(project *models.Project) {
	project.Title = req.Title
	project.Description = req.Description
	project.LongDescription = req.LongDescription
	project.Technologies = datatypes.JSONSlice[string](services.NormalizeTechnologies(req.Technologies))
	project.Category = req.Category
	project.ImageURL = req.ImageURL
	project.DemoURL = req.DemoURL
	project.GithubURL = req.GithubURL
	project.IsFeatured = req.IsFeatured
	project.IsPublished = req.IsPublished
}

// moderationRequest carries the updated_at timestamp the caller read, used
// as the optimistic-concurrency token, plus an optional target value. When
// value is omitted the facet flips relative to the record as it was read.
type moderationRequest struct {
	Value     *bool     `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getAllProjects retrieves all projects including drafts
// @Summary Get all projects
// @Description Retrieves every project, drafts included, newest first
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /admin/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a single project by ID, draft or published
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /admin/project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Validates and creates a new project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body projectRequest true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /admin/project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var project models.Project
		req.apply(&project)

		if err := services.ValidateProject(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		// Reload so the response carries store-side defaults
		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find created", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Validates and updates an existing project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body projectRequest true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /admin/project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// View count and creation time survive edits untouched
		req.apply(existing)

		if err := services.ValidateProject(existing); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Hard-deletes a project. Confirmation is the caller's responsibility
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /admin/project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// setPublished writes the published facet
// @Summary Set project published state
// @Description Sets the published facet, guarded by the updated_at token the caller read. Omitting value flips the facet
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param moderation body moderationRequest true "Target value and concurrency token"
// @Success 200 {object} models.Project "Updated project"
// @Failure 409 {object} ErrorResponse "Conflict - Project changed since it was read"
// @Router /admin/project/{projectID}/published [put]
func (h projectHandler) setPublished() http.HandlerFunc {
	return h.setModerationFlag("published", services.TogglePublished, h.projectRepo.SetPublished)
}

// setFeatured writes the featured facet
// @Summary Set project featured state
// @Description Sets the featured facet with the same token guard as published. Omitting value flips the facet. Drafts may be featured
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param moderation body moderationRequest true "Target value and concurrency token"
// @Success 200 {object} models.Project "Updated project"
// @Failure 409 {object} ErrorResponse "Conflict - Project changed since it was read"
// @Router /admin/project/{projectID}/featured [put]
func (h projectHandler) setFeatured() http.HandlerFunc {
	return h.setModerationFlag("featured", services.ToggleFeatured, h.projectRepo.SetFeatured)
}

func (h projectHandler) setModerationFlag(facet string, toggle func(models.Project) bool, write func(uuid.UUID, bool, time.Time) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req moderationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.UpdatedAt.IsZero() {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("updated_at"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		target := toggle(*project)
		if req.Value != nil {
			target = *req.Value
		}

		if err := write(projectID, target, req.UpdatedAt); err != nil {
			if errs.IsStaleRecord(err) {
				h.logger.Warn().
					Str("projectID", projectID.String()).
					Str("facet", facet).
					Msg("moderation write refused: stale token")
				h.responder.WriteError(w, errs.NewStaleRecordError("project"))
				return
			}
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// parseIDParam extracts and parses a uuid URL parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
