package services

import (
	"sort"

	"github.com/Frabbi727/mine-portfolio/models"
)

// FilterAll is the wildcard value for the public filter controls.
const FilterAll = "All"

// VisibleProjects returns the subset of projects the public surface may
// render: published only, newest first. The input is never mutated.
func VisibleProjects(all []*models.Project) []*models.Project {
	visible := make([]*models.Project, 0, len(all))
	for _, p := range all {
		if p != nil && p.IsPublished {
			visible = append(visible, p)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible
}

// FilterProjects narrows visible projects to those matching both filters.
// FilterAll on either side is a wildcard; the two conditions combine as a
// logical AND. No match yields an empty slice, not an error.
func FilterProjects(visible []*models.Project, tech, category string) []*models.Project {
	filtered := make([]*models.Project, 0, len(visible))
	for _, p := range visible {
		if p == nil {
			continue
		}
		if tech != FilterAll && !containsString(p.Technologies, tech) {
			continue
		}
		if category != FilterAll && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// DistinctTechnologies flattens every project's technology list into a
// sorted, deduplicated slice for the public filter controls.
func DistinctTechnologies(all []*models.Project) []string {
	seen := make(map[string]struct{})
	for _, p := range all {
		if p == nil {
			continue
		}
		for _, tech := range p.Technologies {
			seen[tech] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// DistinctCategories returns the sorted, deduplicated set of project
// categories. Empty categories contribute nothing.
func DistinctCategories(all []*models.Project) []string {
	seen := make(map[string]struct{})
	for _, p := range all {
		if p == nil || p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
	}
	return sortedKeys(seen)
}

// GroupSkillsByCategory maps each raw category string to its skills sorted
// ascending by display order. Grouping is exact case-sensitive string match;
// case or whitespace variants of a category stay separate groups.
func GroupSkillsByCategory(all []*models.Skill) map[string][]*models.Skill {
	groups := make(map[string][]*models.Skill)
	for _, s := range all {
		if s == nil {
			continue
		}
		groups[s.Category] = append(groups[s.Category], s)
	}
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Order < group[j].Order
		})
	}
	return groups
}

// SortedCategories returns the group keys of GroupSkillsByCategory in
// lexicographic order so callers can render groups deterministically.
func SortedCategories(groups map[string][]*models.Skill) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
