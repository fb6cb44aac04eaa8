package api

import (
	"encoding/json"
	"net/http"

	"github.com/Frabbi727/mine-portfolio/database"
	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/Frabbi727/mine-portfolio/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

type skillRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	IconURL     *string `json:"icon_url"`
	Proficiency int     `json:"proficiency"`
	Order       int     `json:"order"`
}

func (req skillRequest) apply(skill *models.Skill) {
	skill.Name = req.Name
	skill.Category = req.Category
	skill.IconURL = req.IconURL
	skill.Proficiency = req.Proficiency
	skill.Order = req.Order
}

// SkillCollection represents multiple skills
type SkillCollection struct {
	Skills []*models.Skill `json:"skills"`
	Total  int             `json:"total"`
}

// getAllSkills retrieves all skills in display order
// @Summary Get all skills
// @Description Retrieves every skill ascending by display order
// @Tags Skills
// @Produce json
// @Success 200 {object} SkillCollection "List of skills"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching skills"
// @Router /admin/skills [get]
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, SkillCollection{
			Skills: skills,
			Total:  len(skills),
		})
	}
}

// createSkill creates a new skill
// @Summary Create skill
// @Description Validates and creates a new skill. Proficiency outside 0-100 is rejected
// @Tags Skills
// @Accept json
// @Produce json
// @Param skill body skillRequest true "Skill data"
// @Success 201 {object} models.Skill "Created skill"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid skill data"
// @Router /admin/skill [post]
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req skillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var skill models.Skill
		req.apply(&skill)

		if err := services.ValidateSkill(&skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "skill", err))
			return
		}

		created, err := h.skillRepo.FindByID(skill.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find created", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateSkill updates an existing skill
// @Summary Update skill
// @Description Validates and updates an existing skill
// @Tags Skills
// @Accept json
// @Produce json
// @Param skillID path string true "Skill ID" format(uuid)
// @Param skill body skillRequest true "Updated skill data"
// @Success 200 {object} models.Skill "Updated skill"
// @Failure 404 {object} ErrorResponse "Not Found - Skill not found"
// @Router /admin/skill/{skillID} [put]
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skill", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		var req skillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.apply(existing)

		if err := services.ValidateSkill(existing); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Update(existing); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "skill", err))
			return
		}

		updated, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find updated", "skill", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteSkill deletes a skill by ID
// @Summary Delete skill
// @Description Hard-deletes a skill
// @Tags Skills
// @Produce json
// @Param skillID path string true "Skill ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Skill not found"
// @Router /admin/skill/{skillID} [delete]
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}
