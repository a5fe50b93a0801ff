package persona

// The role/task branching is data-driven: ordered rule tables where the
// first rule whose pattern appears in the (lowercased) input wins for
// weights, and focus areas accumulate from the first matching role rule
// plus the first matching task rule.

type focusRule struct {
	patterns []string
	areas    []string
}

var roleFocusRules = []focusRule{
	{patterns: []string{"researcher", "phd"}, areas: []string{"methodology", "results", "data", "analysis", "conclusions"}},
	{patterns: []string{"student"}, areas: []string{"concepts", "examples", "definitions", "practice"}},
	{patterns: []string{"analyst"}, areas: []string{"trends", "metrics", "performance", "comparison"}},
	{patterns: []string{"manager", "professional"}, areas: []string{"process", "best practices", "guidelines", "implementation"}},
}

var taskFocusRules = []focusRule{
	{patterns: []string{"review"}, areas: []string{"summary", "overview", "key points"}},
	{patterns: []string{"analyze"}, areas: []string{"data", "statistics", "comparison"}},
	{patterns: []string{"prepare", "plan"}, areas: []string{"steps", "requirements", "guidelines"}},
}

type weightRule struct {
	patterns []string
	weights  map[string]float64
}

// Each weight table sums to 1.0.
var roleWeightRules = []weightRule{
	{
		patterns: []string{"researcher"},
		weights: map[string]float64{
			"methodology":  0.3,
			"results":      0.25,
			"introduction": 0.15,
			"conclusion":   0.2,
			"references":   0.1,
		},
	},
	{
		patterns: []string{"student"},
		weights: map[string]float64{
			"concepts":  0.35,
			"examples":  0.25,
			"summary":   0.2,
			"exercises": 0.2,
		},
	},
	{
		patterns: []string{"analyst"},
		weights: map[string]float64{
			"data":        0.3,
			"trends":      0.25,
			"metrics":     0.25,
			"conclusions": 0.2,
		},
	},
}

// defaultWeights is the uniform fallback when no role pattern matches.
var defaultWeights = map[string]float64{
	"overview": 0.25,
	"details":  0.25,
	"examples": 0.25,
	"summary":  0.25,
}
