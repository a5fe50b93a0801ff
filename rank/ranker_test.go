package rank

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavya-dabas/docrank/model"
	"github.com/bhavya-dabas/docrank/persona"
)

func testSections() []model.Section {
	return []model.Section{
		{
			Document: "a.pdf", Title: "Methodology", Type: model.SectionHeading,
			Level: model.LevelH1, Page: 1, Relevance: 0.8,
			Text: "The methodology describes the data collection and the analysis of the study results in detail. " +
				"Each step was validated against the research protocol before the next began.",
		},
		{
			Document: "a.pdf", Title: "Appendix C", Type: model.SectionContent,
			Level: model.LevelContent, Page: 40, Relevance: 0.35,
			Text: "Supplementary tables referenced in the main text.",
		},
		{
			Document: "b.pdf", Title: "Results", Type: model.SectionHeading,
			Level: model.LevelH2, Page: 4, Relevance: 0.7,
			Text: "Results show a consistent effect across all conditions. The effect size grew with data volume. " +
				"Analysis of the residuals revealed no systematic bias in the study.",
		},
	}
}

func TestRankAssignsDenseRanks(t *testing.T) {
	ranker := NewRanker(persona.BuildProfile("Researcher", "review the methodology"))
	ranked := ranker.Rank(testSections())

	require.Len(t, ranked, 3)
	for i, sec := range ranked {
		assert.Equal(t, i+1, sec.Rank)
	}

	// Descending importance.
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Importance, ranked[i].Importance)
	}
}

func TestRankIsPermutation(t *testing.T) {
	ranker := NewRanker(persona.BuildProfile("Researcher", "review the methodology"))
	input := testSections()
	ranked := ranker.Rank(input)

	var inTitles, outTitles []string
	for _, s := range input {
		inTitles = append(inTitles, s.Title)
	}
	for _, s := range ranked {
		outTitles = append(outTitles, s.Title)
	}
	sort.Strings(inTitles)
	sort.Strings(outTitles)
	assert.Equal(t, inTitles, outTitles, "ranking must not add or drop sections")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	ranker := NewRanker(persona.BuildProfile("Researcher", "review"))
	input := testSections()
	_ = ranker.Rank(input)

	for i, sec := range input {
		assert.Zero(t, sec.Rank, "input[%d].Rank", i)
		assert.Zero(t, sec.Importance, "input[%d].Importance", i)
	}
}

func TestImportanceBounds(t *testing.T) {
	ranker := NewRanker(persona.BuildProfile("Researcher", "review the methodology and results"))

	// A section maxing every signal must still stay within [0,1].
	maxed := model.Section{
		Document: "a.pdf", Title: "Methodology Results Data Analysis", Type: model.SectionTitle,
		Level: model.LevelTitle, Page: 0, Relevance: 1.0,
		Text: "method result analysis data study research methodology results conclusions. " +
			"The methodology and the results of the analysis are described with the data. " +
			"Further analysis of the research data confirms the study conclusions hold.",
	}

	for _, sec := range append(testSections(), maxed) {
		score := ranker.Importance(sec)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestRankDeterministic(t *testing.T) {
	ranker := NewRanker(persona.BuildProfile("Researcher", "review the methodology"))
	first := ranker.Rank(testSections())
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ranker.Rank(testSections()))
	}
}

func TestRankStableOnTies(t *testing.T) {
	ranker := NewRanker(persona.BuildProfile("Nobody", "nothing"))

	// Identical sections score identically; stable sort keeps input order.
	same := model.Section{Title: "Twin", Text: "Identical body text for both twins.", Relevance: 0.5}
	a, b := same, same
	a.Document = "first.pdf"
	b.Document = "second.pdf"

	ranked := ranker.Rank([]model.Section{a, b})
	require.Len(t, ranked, 2)
	assert.Equal(t, "first.pdf", ranked[0].Document)
	assert.Equal(t, "second.pdf", ranked[1].Document)
}

func TestExplainMatchesImportance(t *testing.T) {
	ranker := NewRanker(persona.BuildProfile("Researcher", "review the methodology"))
	sec := testSections()[0]

	ex := ranker.Explain(sec)
	assert.Equal(t, ranker.Importance(sec), ex.Importance)
	assert.Equal(t, sec.Relevance, ex.Relevance)

	fused := relevanceWeight*ex.Relevance +
		contentQualityWeight*ex.ContentQuality +
		personaWeight*ex.PersonaAlignment +
		typeWeight*ex.TypeScore +
		positionWeight*ex.PositionScore +
		lengthWeight*ex.LengthScore
	if fused > 1.0 {
		fused = 1.0
	}
	assert.InDelta(t, fused, ex.Importance, 1e-12)
}
