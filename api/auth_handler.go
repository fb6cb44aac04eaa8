package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Frabbi727/mine-portfolio/config"
	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	adminEmail   string
	passwordHash string
	secret       []byte
}

func newAuthHandler(c map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		adminEmail:   config.GetString(c, "ADMIN_EMAIL", ""),
		passwordHash: config.GetString(c, "ADMIN_PASSWORD_HASH", ""),
		secret:       []byte(config.GetString(c, "JWT_SECRET", "")),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the session token for the admin surface
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// login exchanges admin credentials for a session token
// @Summary Admin login
// @Description Verifies credentials against the configured bcrypt hash and issues a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} LoginResult "Session token"
// @Failure 401 {object} ErrorResponse "Unauthorized - Wrong credentials"
// @Failure 503 {object} ErrorResponse "Service Unavailable - Login not configured"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.adminEmail == "" || h.passwordHash == "" || len(h.secret) == 0 {
			h.responder.WriteError(w, errs.NewServiceUnavailableError("admin login is not configured"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Email != h.adminEmail {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
			h.logger.Warn().Str("email", req.Email).Msg("failed admin login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := issueToken(h.secret, h.adminEmail, tokenTTL)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue session token"))
			return
		}

		h.responder.WriteJSON(w, LoginResult{
			Token:     token,
			ExpiresAt: time.Now().Add(tokenTTL),
		})
	}
}
