package services

import (
	"testing"

	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNormalizeTechnologies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain list", "Go,React", []string{"Go", "React"}},
		{"whitespace and empty tokens", "Go,  , React,", []string{"Go", "React"}},
		{"single value", "Go", []string{"Go"}},
		{"preserves input order", "React, Go", []string{"React", "Go"}},
		{"only separators", ", ,,", []string{}},
		{"empty string", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeTechnologies(tt.raw))
		})
	}
}

func validProject() *models.Project {
	return &models.Project{
		Title:        "Portfolio",
		Description:  "a portfolio site",
		Technologies: datatypes.JSONSlice[string]{"Go"},
		Category:     "Web",
	}
}

func TestValidateProject(t *testing.T) {
	require.NoError(t, ValidateProject(validProject()))

	missingTitle := validProject()
	missingTitle.Title = "  "
	err := ValidateProject(missingTitle)
	require.Error(t, err)
	require.True(t, errs.IsMissingRequiredFieldError(err))

	missingDescription := validProject()
	missingDescription.Description = ""
	require.Error(t, ValidateProject(missingDescription))

	missingCategory := validProject()
	missingCategory.Category = ""
	require.Error(t, ValidateProject(missingCategory))

	// An empty list after normalization is a validation failure, not a
	// silently-accepted empty list.
	noTech := validProject()
	noTech.Technologies = datatypes.JSONSlice[string](NormalizeTechnologies(", ,,"))
	err = ValidateProject(noTech)
	require.Error(t, err)
	require.True(t, errs.IsInvalidFieldError(err))
}

func TestValidateSkill(t *testing.T) {
	tests := []struct {
		name    string
		skill   models.Skill
		wantErr bool
	}{
		{"valid", models.Skill{Name: "Go", Category: "Languages", Proficiency: 80}, false},
		{"lower bound", models.Skill{Name: "Go", Category: "Languages", Proficiency: 0}, false},
		{"upper bound", models.Skill{Name: "Go", Category: "Languages", Proficiency: 100}, false},
		{"over range rejected", models.Skill{Name: "Rust", Category: "Languages", Proficiency: 150}, true},
		{"negative rejected", models.Skill{Name: "Rust", Category: "Languages", Proficiency: -1}, true},
		{"missing name", models.Skill{Category: "Languages", Proficiency: 50}, true},
		{"missing category", models.Skill{Name: "Go", Proficiency: 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSkill(&tt.skill)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateContactSubmission(t *testing.T) {
	valid := NewContactSubmission("Ada", "ada@example.com", "hello")
	require.NoError(t, ValidateContactSubmission(&valid))

	tests := []struct {
		name       string
		submission models.ContactSubmission
	}{
		{"missing name", NewContactSubmission("", "ada@example.com", "hello")},
		{"missing email", NewContactSubmission("Ada", "", "hello")},
		{"invalid email", NewContactSubmission("Ada", "not-an-email", "hello")},
		{"missing message", NewContactSubmission("Ada", "ada@example.com", "  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, ValidateContactSubmission(&tt.submission))
		})
	}
}

func TestValidateProfile(t *testing.T) {
	valid := models.Profile{FullName: "Ada Lovelace", Title: "Engineer", Bio: "builds things"}
	require.NoError(t, ValidateProfile(&valid))

	missingBio := valid
	missingBio.Bio = ""
	err := ValidateProfile(&missingBio)
	require.Error(t, err)
	require.True(t, errs.IsMissingRequiredFieldError(err))
}
