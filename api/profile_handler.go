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

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

type profileRequest struct {
	FullName  string  `json:"full_name"`
	Title     string  `json:"title"`
	Bio       string  `json:"bio"`
	AboutMe   *string `json:"about_me"`
	Email     string  `json:"email"`
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
	Location  *string `json:"location"`
	AvatarURL *string `json:"avatar_url"`
	ResumeURL *string `json:"resume_url"`
}

func (req profileRequest) apply(profile *models.Profile) {
	profile.FullName = req.FullName
	profile.Title = req.Title
	profile.Bio = req.Bio
	profile.AboutMe = req.AboutMe
	profile.Email = req.Email
	profile.Github = req.Github
	profile.Linkedin = req.Linkedin
	profile.Location = req.Location
	profile.AvatarURL = req.AvatarURL
	profile.ResumeURL = req.ResumeURL
}

// getProfile retrieves the profile row for the admin form
// @Summary Get profile
// @Description Retrieves the single profile row; 404 degrades to an empty-state form
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 404 {object} ErrorResponse "Not Found - Profile not provisioned"
// @Router /admin/profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
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

// updateProfile updates the profile row in place
// @Summary Update profile
// @Description Validates and updates the single profile row. Never inserts a second row
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body profileRequest true "Profile data"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 404 {object} ErrorResponse "Not Found - Profile not provisioned"
// @Router /admin/profile [put]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "profile", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not provisioned"))
			return
		}

		var req profileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.apply(existing)

		if err := services.ValidateProfile(existing); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.profileRepo.Update(existing); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "profile", err))
			return
		}

		updated, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find updated", "profile", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}
