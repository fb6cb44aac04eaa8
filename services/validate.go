package services

import (
	"strings"

	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
)

// NormalizeTechnologies splits a comma-separated technologies string into an
// ordered list: tokens are trimmed and empty tokens dropped. Input order is
// display order. "Go,  , React," becomes ["Go", "React"].
func NormalizeTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	technologies := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		technologies = append(technologies, trimmed)
	}
	return technologies
}

// ValidateProject checks the field contract for a project before it is
// persisted: title, description and category non-empty, and at least one
// technology left after normalization.
func ValidateProject(p *models.Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if strings.TrimSpace(p.Category) == "" {
		return errs.NewMissingRequiredFieldError("category")
	}
	if len(p.Technologies) == 0 {
		return errs.NewInvalidFieldError("technologies", "at least one technology is required")
	}
	return nil
}

// ValidateSkill checks the skill field contract. Out-of-range proficiency
// is rejected rather than clamped so bad admin input is visible instead of
// silently rewritten.
func ValidateSkill(s *models.Skill) error {
	if strings.TrimSpace(s.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(s.Category) == "" {
		return errs.NewMissingRequiredFieldError("category")
	}
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return errs.NewInvalidFieldError("proficiency", "must be between 0 and 100")
	}
	return nil
}

// ValidateContactSubmission checks the contact form contract: name, email
// and message are all required.
func ValidateContactSubmission(c *models.ContactSubmission) error {
	if strings.TrimSpace(c.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(c.Email) == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if !strings.Contains(c.Email, "@") {
		return errs.NewInvalidFieldError("email", "must be a valid email address")
	}
	if strings.TrimSpace(c.Message) == "" {
		return errs.NewMissingRequiredFieldError("message")
	}
	return nil
}

// ValidateProfile checks the profile field contract: full name, title and
// bio are required; everything else is optional.
func ValidateProfile(p *models.Profile) error {
	if strings.TrimSpace(p.FullName) == "" {
		return errs.NewMissingRequiredFieldError("full_name")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(p.Bio) == "" {
		return errs.NewMissingRequiredFieldError("bio")
	}
	return nil
}
