package services

import (
	"testing"
	"time"

	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newProject(title string, published bool, category string, createdAt time.Time, technologies ...string) *models.Project {
	return &models.Project{
		Title:        title,
		Description:  "description of " + title,
		Technologies: datatypes.JSONSlice[string](technologies),
		Category:     category,
		IsPublished:  published,
		CreatedAt:    createdAt,
	}
}

func TestVisibleProjects(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	oldest := newProject("oldest", true, "Web", base, "Go")
	middle := newProject("middle", true, "Web", base.Add(time.Hour), "Go")
	draft := newProject("draft", false, "Web", base.Add(2*time.Hour), "Go")
	newest := newProject("newest", true, "API", base.Add(3*time.Hour), "Go")

	visible := VisibleProjects([]*models.Project{oldest, draft, newest, middle})

	require.Len(t, visible, 3)
	require.Equal(t, "newest", visible[0].Title)
	require.Equal(t, "middle", visible[1].Title)
	require.Equal(t, "oldest", visible[2].Title)
	for _, p := range visible {
		require.True(t, p.IsPublished)
	}
}

func TestVisibleProjectsPublishedOnly(t *testing.T) {
	now := time.Now()
	x := newProject("X", true, "Web", now, "Go", "React")
	y := newProject("Y", false, "API", now, "Go")

	all := []*models.Project{x, y}

	visible := VisibleProjects(all)
	require.Len(t, visible, 1)
	require.Equal(t, "X", visible[0].Title)

	// Filter options come from all projects, not just the visible subset
	require.Equal(t, []string{"Go", "React"}, DistinctTechnologies(all))
}

func TestVisibleProjectsEmptyAndNil(t *testing.T) {
	require.Empty(t, VisibleProjects(nil))
	require.Empty(t, VisibleProjects([]*models.Project{nil}))
}

func TestFilterProjects(t *testing.T) {
	now := time.Now()
	web := newProject("web", true, "Web", now, "Go", "React")
	apiProj := newProject("api", true, "API", now, "Go")
	cli := newProject("cli", true, "Tooling", now, "Rust")

	visible := []*models.Project{web, apiProj, cli}

	tests := []struct {
		name     string
		tech     string
		category string
		want     []string
	}{
		{"both wildcards", FilterAll, FilterAll, []string{"web", "api", "cli"}},
		{"tech only", "Go", FilterAll, []string{"web", "api"}},
		{"category only", FilterAll, "Web", []string{"web"}},
		{"tech and category", "Go", "API", []string{"api"}},
		{"conjunction excludes partial matches", "React", "API", []string{}},
		{"no match is empty, not error", "Haskell", FilterAll, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(visible, tt.tech, tt.category)
			titles := make([]string, 0, len(got))
			for _, p := range got {
				titles = append(titles, p.Title)
			}
			require.Equal(t, tt.want, titles)
		})
	}
}

func TestFilterProjectsIsSubsetOfVisible(t *testing.T) {
	now := time.Now()
	visible := VisibleProjects([]*models.Project{
		newProject("a", true, "Web", now, "Go"),
		newProject("b", true, "API", now.Add(time.Minute), "Go", "React"),
	})

	filtered := FilterProjects(visible, "Go", FilterAll)
	for _, p := range filtered {
		require.Contains(t, visible, p)
	}
}

func TestDistinctTechnologies(t *testing.T) {
	now := time.Now()
	all := []*models.Project{
		newProject("a", true, "Web", now, "React", "Go"),
		newProject("b", false, "API", now, "Go", "Postgres"),
		newProject("c", true, "Web", now),
	}

	require.Equal(t, []string{"Go", "Postgres", "React"}, DistinctTechnologies(all))
	require.Empty(t, DistinctTechnologies(nil))
}

func TestDistinctCategories(t *testing.T) {
	now := time.Now()
	all := []*models.Project{
		newProject("a", true, "Web", now, "Go"),
		newProject("b", false, "API", now, "Go"),
		newProject("c", true, "Web", now, "Go"),
	}

	require.Equal(t, []string{"API", "Web"}, DistinctCategories(all))
	require.Empty(t, DistinctCategories(nil))
}

func TestGroupSkillsByCategory(t *testing.T) {
	skills := []*models.Skill{
		{Name: "Docker", Category: "Tools", Order: 2},
		{Name: "Go", Category: "Languages", Order: 1},
		{Name: "Rust", Category: "Languages", Order: 3},
		{Name: "Git", Category: "Tools", Order: 1},
	}

	groups := GroupSkillsByCategory(skills)

	require.Len(t, groups, 2)
	require.Equal(t, "Go", groups["Languages"][0].Name)
	require.Equal(t, "Rust", groups["Languages"][1].Name)
	require.Equal(t, "Git", groups["Tools"][0].Name)
	require.Equal(t, "Docker", groups["Tools"][1].Name)

	require.Equal(t, []string{"Languages", "Tools"}, SortedCategories(groups))
}

func TestGroupSkillsByCategoryCaseSensitive(t *testing.T) {
	// "languages" and "Languages" are distinct groups; grouping is exact
	// string match with no normalization.
	skills := []*models.Skill{
		{Name: "Go", Category: "Languages", Order: 1},
		{Name: "Rust", Category: "languages", Order: 1},
	}

	groups := GroupSkillsByCategory(skills)
	require.Len(t, groups, 2)
	require.Len(t, groups["Languages"], 1)
	require.Len(t, groups["languages"], 1)
}

func TestGroupSkillsByCategoryStableTies(t *testing.T) {
	first := &models.Skill{Name: "first", Category: "Tools", Order: 5}
	second := &models.Skill{Name: "second", Category: "Tools", Order: 5}

	groups := GroupSkillsByCategory([]*models.Skill{first, second})
	require.Equal(t, "first", groups["Tools"][0].Name)
	require.Equal(t, "second", groups["Tools"][1].Name)
}
