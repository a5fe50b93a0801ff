package match

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/bhavya-dabas/docrank/internal/textutil"
)

// tokenRe keeps word tokens of at least two characters.
var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer computes term-frequency cosine similarity between two texts
// over a bounded unigram+bigram feature space. The vocabulary is fit fresh
// for every pair: features are selected by total frequency across both
// texts, descending, with ties broken lexicographically so results are
// deterministic.
type Vectorizer struct {
	maxFeatures int
}

// NewVectorizer creates a vectorizer with the given feature cap.
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 1000
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Cosine returns the cosine similarity of the two texts' term-frequency
// vectors in [0,1]. Degenerate inputs (no shared vocabulary, an empty
// vector) yield 0.0 rather than an error.
func (v *Vectorizer) Cosine(a, b string) float64 {
	countsA := termCounts(a)
	countsB := termCounts(b)
	if len(countsA) == 0 || len(countsB) == 0 {
		return 0.0
	}

	vocab := v.selectVocabulary(countsA, countsB)

	var dot, normA, normB float64
	for _, term := range vocab {
		ca := float64(countsA[term])
		cb := float64(countsB[term])
		dot += ca * cb
		normA += ca * ca
		normB += cb * cb
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0.0
	}
	return sim
}

// termCounts tokenizes text and counts its unigram and bigram features,
// with stopwords removed before n-gram formation.
func termCounts(text string) map[string]int {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0:0]
	for _, tok := range raw {
		if !textutil.IsStopword(tok) {
			tokens = append(tokens, tok)
		}
	}

	counts := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		counts[tok]++
		if i+1 < len(tokens) {
			counts[tok+" "+tokens[i+1]]++
		}
	}
	return counts
}

// selectVocabulary caps the union of both texts' features at maxFeatures,
// keeping the most frequent terms.
func (v *Vectorizer) selectVocabulary(a, b map[string]int) []string {
	totals := make(map[string]int, len(a)+len(b))
	for term, c := range a {
		totals[term] += c
	}
	for term, c := range b {
		totals[term] += c
	}

	vocab := make([]string, 0, len(totals))
	for term := range totals {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if totals[vocab[i]] != totals[vocab[j]] {
			return totals[vocab[i]] > totals[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})

	if len(vocab) > v.maxFeatures {
		vocab = vocab[:v.maxFeatures]
	}
	return vocab
}
