package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Frabbi727/mine-portfolio/config"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/rs/zerolog/log"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// SendContactNotification emails the site owner about a new contact form
// submission via the Resend API. It is a no-op when RESEND_API_KEY or
// NOTIFY_EMAIL is not configured. Failures never block the submission; the
// caller fires this after the row is persisted and only logs errors.
//
// Requires in config:
//   - RESEND_API_KEY: Resend API key
//   - NOTIFY_EMAIL: recipient address for notifications
//
// Optional:
//   - RESEND_FROM_EMAIL: sender address, defaults to onboarding@resend.dev
func SendContactNotification(c map[string]string, submission models.ContactSubmission) error {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	recipient := config.GetString(c, "NOTIFY_EMAIL", "")
	if apiKey == "" || recipient == "" {
		log.Debug().Msg("contact notification skipped: Resend not configured")
		return nil
	}

	from := config.GetString(c, "RESEND_FROM_EMAIL", "Portfolio <onboarding@resend.dev>")

	emailReq := ResendEmailRequest{
		From:    from,
		To:      []string{recipient},
		Subject: fmt.Sprintf("New contact message from %s", submission.Name),
		Text: fmt.Sprintf("From: %s <%s>\n\n%s",
			submission.Name, submission.Email, submission.Message),
	}

	jsonData, err := json.Marshal(emailReq)
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var errResp ResendErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}

	var emailResp ResendEmailResponse
	if err := json.Unmarshal(body, &emailResp); err != nil {
		return fmt.Errorf("decoding email response: %w", err)
	}

	log.Info().Str("emailID", emailResp.ID).Msg("contact notification sent")
	return nil
}
