package match

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	v := NewVectorizer(1000)

	tests := []struct {
		name string
		a, b string
		want func(float64) bool
	}{
		{
			name: "identical texts score 1",
			a:    "gene expression analysis of tumor samples",
			b:    "gene expression analysis of tumor samples",
			want: func(s float64) bool { return math.Abs(s-1.0) < 1e-9 },
		},
		{
			name: "disjoint texts score 0",
			a:    "gene expression analysis",
			b:    "quarterly revenue forecast",
			want: func(s float64) bool { return s == 0.0 },
		},
		{
			name: "partial overlap scores in between",
			a:    "gene expression analysis methods",
			b:    "statistical analysis methods overview",
			want: func(s float64) bool { return s > 0.0 && s < 1.0 },
		},
		{
			name: "empty text scores 0",
			a:    "",
			b:    "some actual words",
			want: func(s float64) bool { return s == 0.0 },
		},
		{
			name: "stopword-only text scores 0",
			a:    "the and of with",
			b:    "some actual words",
			want: func(s float64) bool { return s == 0.0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Cosine(tt.a, tt.b)
			if !tt.want(got) {
				t.Errorf("Cosine(%q, %q) = %v", tt.a, tt.b, got)
			}
			if got < 0 || got > 1+1e-9 {
				t.Errorf("Cosine out of [0,1]: %v", got)
			}
		})
	}
}

func TestCosineSymmetric(t *testing.T) {
	v := NewVectorizer(1000)
	a := "machine learning model training procedures"
	b := "training deep learning models at scale"
	if ab, ba := v.Cosine(a, b), v.Cosine(b, a); math.Abs(ab-ba) > 1e-12 {
		t.Errorf("Cosine not symmetric: %v vs %v", ab, ba)
	}
}

func TestCosineDeterministic(t *testing.T) {
	// Many distinct terms force vocabulary truncation; the tie-break must
	// keep the result stable across runs.
	v := NewVectorizer(10)
	a := "alpha beta gamma delta epsilon zeta eta theta iota kappa alpha beta"
	b := "gamma delta epsilon lambda sigma omega alpha beta theta kappa"

	first := v.Cosine(a, b)
	for i := 0; i < 20; i++ {
		if got := v.Cosine(a, b); got != first {
			t.Fatalf("Cosine varies across runs: %v vs %v", got, first)
		}
	}
}

func TestTermCounts(t *testing.T) {
	counts := termCounts("gene expression of gene networks")

	if counts["gene"] != 2 {
		t.Errorf(`counts["gene"] = %d, want 2`, counts["gene"])
	}
	if counts["gene expression"] != 1 {
		t.Errorf(`bigram "gene expression" count = %d, want 1`, counts["gene expression"])
	}
	// Stopwords vanish before bigram formation, so the bigram bridges "of".
	if counts["expression gene"] != 1 {
		t.Errorf(`bigram "expression gene" count = %d, want 1 (stopword removed first)`, counts["expression gene"])
	}
	if _, ok := counts["of"]; ok {
		t.Error(`stopword "of" present in counts`)
	}
}

func TestSelectVocabularyCapAndOrder(t *testing.T) {
	v := NewVectorizer(2)
	a := map[string]int{"aaa": 3, "bbb": 1}
	b := map[string]int{"ccc": 3, "bbb": 1}

	vocab := v.selectVocabulary(a, b)
	if len(vocab) != 2 {
		t.Fatalf("len(vocab) = %d, want 2", len(vocab))
	}
	// aaa and ccc tie at 3; lexicographic order breaks the tie.
	if vocab[0] != "aaa" || vocab[1] != "ccc" {
		t.Errorf("vocab = %v, want [aaa ccc]", vocab)
	}
}
