// Package rank fuses a section's relevance with positional, structural, and
// quality signals into a final importance score and assigns dense 1-based
// ranks across all surviving sections of a run.
package rank

import (
	"sort"

	"github.com/bhavya-dabas/docrank/model"
)

// Importance fusion weights.
const (
	relevanceWeight      = 0.25
	contentQualityWeight = 0.20
	personaWeight        = 0.15
	typeWeight           = 0.15
	positionWeight       = 0.15
	lengthWeight         = 0.10
)

// Ranker assigns importance scores and ranks for one persona profile.
type Ranker struct {
	profile *model.PersonaProfile
}

// NewRanker creates a ranker for the given profile.
func NewRanker(profile *model.PersonaProfile) *Ranker {
	return &Ranker{profile: profile}
}

// Importance computes the fused importance score for a section whose
// relevance is already set, clamped to 1.0.
func (r *Ranker) Importance(sec model.Section) float64 {
	score := relevanceWeight*sec.Relevance +
		contentQualityWeight*ContentQuality(sec) +
		personaWeight*PersonaAlignment(sec, r.profile) +
		typeWeight*TypeScore(sec) +
		positionWeight*PositionScore(sec.Page) +
		lengthWeight*LengthScore(sec)
	if score > 1.0 {
		return 1.0
	}
	return score
}

// Rank returns enriched copies of the sections ordered by importance,
// descending, with 1-based ranks assigned. The sort is stable: sections
// with equal importance keep their prior relative order, so two runs over
// identical input produce identical ranking.
func (r *Ranker) Rank(sections []model.Section) []model.Section {
	ranked := make([]model.Section, len(sections))
	copy(ranked, sections)

	for i := range ranked {
		ranked[i].Importance = r.Importance(ranked[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Explanation breaks an importance score into its component signals.
type Explanation struct {
	Relevance        float64 `json:"relevance_score"`
	ContentQuality   float64 `json:"content_quality"`
	PositionScore    float64 `json:"position_score"`
	PersonaAlignment float64 `json:"persona_alignment"`
	TypeScore        float64 `json:"type_score"`
	LengthScore      float64 `json:"length_score"`
	Importance       float64 `json:"final_importance"`
}

// Explain returns the per-signal breakdown for a section, for diagnostics
// and verbose CLI output.
func (r *Ranker) Explain(sec model.Section) Explanation {
	return Explanation{
		Relevance:        sec.Relevance,
		ContentQuality:   ContentQuality(sec),
		PositionScore:    PositionScore(sec.Page),
		PersonaAlignment: PersonaAlignment(sec, r.profile),
		TypeScore:        TypeScore(sec),
		LengthScore:      LengthScore(sec),
		Importance:       r.Importance(sec),
	}
}
