package model

// PersonaProfile is the derived representation of a user role and task.
// It is built once per run, is immutable, and is shared read-only across
// all scoring calls.
type PersonaProfile struct {
	// Role is the raw persona role string.
	Role string

	// Task is the raw job-to-be-done task string.
	Task string

	// PersonaKeywords are the meaningful tokens of the role (lowercase
	// alphabetic, longer than 3 characters, stopwords removed).
	PersonaKeywords []string

	// TaskKeywords are the meaningful tokens of the task, filtered the
	// same way.
	TaskKeywords []string

	// FocusAreas are topical categories presumed relevant to the
	// role/task pairing, deduplicated in first-seen order.
	FocusAreas []string

	// PriorityWeights maps content categories to weights. The weights of
	// a selected table always sum to 1.0.
	PriorityWeights map[string]float64
}

// AllKeywords returns the union of persona and task keywords, deduplicated
// in first-seen order.
func (p *PersonaProfile) AllKeywords() []string {
	seen := make(map[string]bool, len(p.PersonaKeywords)+len(p.TaskKeywords))
	var out []string
	for _, kw := range p.PersonaKeywords {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	for _, kw := range p.TaskKeywords {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
