package services

import (
	"testing"

	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/stretchr/testify/require"
)

func TestToggleInvolution(t *testing.T) {
	// Every (published, featured) combination is legal; flipping a facet
	// twice returns the record to its original state.
	for _, published := range []bool{false, true} {
		for _, featured := range []bool{false, true} {
			p := models.Project{IsPublished: published, IsFeatured: featured}

			once := TogglePublished(p)
			require.Equal(t, !published, once)

			p.IsPublished = once
			require.Equal(t, published, TogglePublished(p))

			// Featured flips independently of published
			require.Equal(t, !featured, ToggleFeatured(p))
		}
	}
}

func TestDraftMayBeFeatured(t *testing.T) {
	draft := models.Project{IsPublished: false, IsFeatured: false}
	require.True(t, ToggleFeatured(draft))
	require.False(t, draft.IsPublished)
}

func TestNewContactSubmissionStartsUnread(t *testing.T) {
	c := NewContactSubmission("Ada", "ada@example.com", "hello")

	require.False(t, c.IsRead)
	require.Equal(t, "Ada", c.Name)
	require.Equal(t, "ada@example.com", c.Email)
	require.Equal(t, "hello", c.Message)
}

func TestToggleReadSequence(t *testing.T) {
	c := NewContactSubmission("Ada", "ada@example.com", "hello")

	c.IsRead = ToggleRead(c)
	require.True(t, c.IsRead)

	c.IsRead = ToggleRead(c)
	require.False(t, c.IsRead)
}
