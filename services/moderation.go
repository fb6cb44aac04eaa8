package services

import (
	"github.com/Frabbi727/mine-portfolio/models"
)

// Moderation facets for projects: (is_published, is_featured) form a
// four-state space with no forbidden combination. A draft may be featured,
// which lets an editor pre-stage a featured item before publishing. Neither
// facet has a terminal state.
//
// The functions below compute the target value of a flip from a snapshot of
// the record. The write itself goes through the repos' Set* methods, which
// carry the snapshot's concurrency token so a flip computed from a stale
// read is refused instead of silently reverting another editor's change.

// TogglePublished returns the published value a flip of p should write.
func TogglePublished(p models.Project) bool {
	return !p.IsPublished
}

// ToggleFeatured returns the featured value a flip of p should write.
func ToggleFeatured(p models.Project) bool {
	return !p.IsFeatured
}

// ToggleRead returns the read value a flip of c should write. Submissions
// start unread; the bit can flip indefinitely until the row is deleted,
// which is terminal.
func ToggleRead(c models.ContactSubmission) bool {
	return !c.IsRead
}

// NewContactSubmission builds an unread submission from contact form input.
// Validation happens separately; this only fixes the initial state.
func NewContactSubmission(name, email, message string) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    name,
		Email:   email,
		Message: message,
		IsRead:  false,
	}
}
