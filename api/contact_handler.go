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

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactSubmissionRepo
	config      map[string]string
}

func newContactHandler(contactRepo *database.ContactSubmissionRepo, c map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		config:      c,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// readStateRequest carries an optional target read value; when omitted the
// bit flips relative to the record as it was read. The read bit itself is
// the concurrency token, so no timestamp travels with it.
type readStateRequest struct {
	Value *bool `json:"value"`
}

// ContactCollection represents all contact submissions with the unread count
type ContactCollection struct {
	Contacts    []*models.ContactSubmission `json:"contacts"`
	Total       int                         `json:"total"`
	UnreadCount int                         `json:"unread_count"`
}

// submitContact accepts a public contact form submission
// @Summary Submit contact message
// @Description Validates and stores a contact form submission. New submissions always start unread
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body contactRequest true "Contact form data"
// @Success 201 {object} models.ContactSubmission "Stored submission"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required field"
// @Router /contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		submission := services.NewContactSubmission(req.Name, req.Email, req.Message)

		if err := services.ValidateContactSubmission(&submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.contactRepo.Add(&submission); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "contact submission", err))
			return
		}

		// Notify the owner after the row is safe; failures never block the submission
		go func(s models.ContactSubmission) {
			if err := services.SendContactNotification(h.config, s); err != nil {
				h.logger.Error().Err(err).Msg("failed to send contact notification")
			}
		}(submission)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, submission)
	}
}

// getAllContacts retrieves all contact submissions
// @Summary Get all contact submissions
// @Description Retrieves every contact submission, newest first, with the unread count
// @Tags Contact
// @Produce json
// @Success 200 {object} ContactCollection "List of submissions"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching submissions"
// @Router /admin/contacts [get]
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "contact submissions", err))
			return
		}

		unread := 0
		for _, c := range contacts {
			if !c.IsRead {
				unread++
			}
		}

		h.responder.WriteJSON(w, ContactCollection{
			Contacts:    contacts,
			Total:       len(contacts),
			UnreadCount: unread,
		})
	}
}

// setRead writes the read bit
// @Summary Set contact read state
// @Description Sets the read bit; omitting value flips it. Writing the value already stored succeeds without touching the row; a concurrent flip is refused with a conflict
// @Tags Contact
// @Accept json
// @Produce json
// @Param contactID path string true "Contact submission ID" format(uuid)
// @Param state body readStateRequest true "Target read value"
// @Success 200 {object} models.ContactSubmission "Updated submission"
// @Failure 409 {object} ErrorResponse "Conflict - Submission changed since it was read"
// @Router /admin/contact/{contactID}/read [put]
func (h contactHandler) setRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req readStateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "contact submission", err))
			return
		}
		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact submission not found"))
			return
		}

		target := services.ToggleRead(*contact)
		if req.Value != nil {
			target = *req.Value
		}

		// The record already carries the requested value; nothing to write,
		// and no conflict to report.
		if target == contact.IsRead {
			h.responder.WriteJSON(w, contact)
			return
		}

		if err := h.contactRepo.SetRead(contactID, target, contact.IsRead); err != nil {
			if errs.IsStaleRecord(err) {
				h.responder.WriteError(w, errs.NewStaleRecordError("contact submission"))
				return
			}
			h.responder.WriteError(w, errs.NewDatabaseError("update", "contact submission", err))
			return
		}

		updated, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find updated", "contact submission", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteContact deletes a contact submission by ID
// @Summary Delete contact submission
// @Description Hard-deletes a contact submission. Terminal; there is no undo
// @Tags Contact
// @Produce json
// @Param contactID path string true "Contact submission ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Submission not found"
// @Router /admin/contact/{contactID} [delete]
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "contact submission", err))
			return
		}
		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact submission not found"))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "contact submission", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact submission deleted successfully",
		})
	}
}
