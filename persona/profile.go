// Package persona builds a profile of what a user role and task care about:
// keyword sets, focus areas, and category priority weights. The profile is
// built once per run, independent of any document, and shared read-only by
// all scoring calls.
package persona

import (
	"strings"

	"github.com/bhavya-dabas/docrank/internal/textutil"
	"github.com/bhavya-dabas/docrank/model"
)

// BuildProfile derives the persona profile for a role and task pairing.
func BuildProfile(role, task string) *model.PersonaProfile {
	return &model.PersonaProfile{
		Role:            role,
		Task:            task,
		PersonaKeywords: textutil.Keywords(role),
		TaskKeywords:    textutil.Keywords(task),
		FocusAreas:      focusAreas(role, task),
		PriorityWeights: priorityWeights(role),
	}
}

// focusAreas unions the first matching role rule's areas with the first
// matching task rule's areas, deduplicated in first-seen order.
func focusAreas(role, task string) []string {
	roleLower := strings.ToLower(role)
	taskLower := strings.ToLower(task)

	var areas []string
	if rule, ok := matchFocus(roleFocusRules, roleLower); ok {
		areas = append(areas, rule.areas...)
	}
	if rule, ok := matchFocus(taskFocusRules, taskLower); ok {
		areas = append(areas, rule.areas...)
	}

	seen := make(map[string]bool, len(areas))
	var out []string
	for _, a := range areas {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func matchFocus(rules []focusRule, text string) (focusRule, bool) {
	for _, rule := range rules {
		for _, p := range rule.patterns {
			if strings.Contains(text, p) {
				return rule, true
			}
		}
	}
	return focusRule{}, false
}

// priorityWeights selects the category weight table for a role, falling
// back to the uniform table when no pattern matches. The returned map is a
// copy; callers may not share mutable state through it.
func priorityWeights(role string) map[string]float64 {
	roleLower := strings.ToLower(role)

	selected := defaultWeights
	for _, rule := range roleWeightRules {
		matched := false
		for _, p := range rule.patterns {
			if strings.Contains(roleLower, p) {
				matched = true
				break
			}
		}
		if matched {
			selected = rule.weights
			break
		}
	}

	out := make(map[string]float64, len(selected))
	for k, v := range selected {
		out[k] = v
	}
	return out
}
