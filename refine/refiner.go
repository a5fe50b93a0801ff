// Package refine splits top-ranked sections into bounded-size excerpts by
// greedily packing consecutive sentences into chunks.
package refine

import (
	"strings"

	"github.com/bhavya-dabas/docrank/internal/textutil"
	"github.com/bhavya-dabas/docrank/model"
)

// Config holds the refinement bounds.
type Config struct {
	// TopSections is how many top-ranked sections are refined. Default: 20.
	TopSections int

	// MaxChunkSize is the running character budget for a chunk; the
	// sentence that would exceed it starts the next chunk. Default: 300.
	MaxChunkSize int

	// MinChunkSize is the trimmed length a chunk must exceed to be kept.
	// Default: 50.
	MinChunkSize int
}

// DefaultConfig returns the default refinement configuration.
func DefaultConfig() Config {
	return Config{
		TopSections:  20,
		MaxChunkSize: 300,
		MinChunkSize: 50,
	}
}

// Refiner extracts refined subsections from ranked sections.
type Refiner struct {
	config Config
}

// NewRefiner creates a refiner with default configuration.
func NewRefiner() *Refiner {
	return &Refiner{config: DefaultConfig()}
}

// NewRefinerWithConfig creates a refiner with custom configuration.
func NewRefinerWithConfig(config Config) *Refiner {
	if config.TopSections <= 0 {
		config.TopSections = 20
	}
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = 300
	}
	return &Refiner{config: config}
}

// Refine splits each of the top-ranked sections into sentence chunks and
// returns the surviving chunks as subsections carrying the parent's
// document, title, page, and rank. Input must already be rank-ordered.
func (r *Refiner) Refine(ranked []model.Section) []model.Subsection {
	top := ranked
	if len(top) > r.config.TopSections {
		top = top[:r.config.TopSections]
	}

	var subsections []model.Subsection
	for _, sec := range top {
		sentences := textutil.Sentences(sec.Text)
		for _, chunk := range PackSentences(sentences, r.config.MaxChunkSize) {
			chunk = strings.TrimSpace(chunk)
			if len([]rune(chunk)) <= r.config.MinChunkSize {
				continue
			}
			subsections = append(subsections, model.Subsection{
				Document:     sec.Document,
				SectionTitle: sec.Title,
				RefinedText:  chunk,
				Page:         sec.Page,
				ParentRank:   sec.Rank,
			})
		}
	}
	return subsections
}

// PackSentences greedily packs consecutive sentences into chunks: a
// sentence that would push the running length past maxSize closes the
// current chunk and starts the next one. Concatenating the chunks in order
// reproduces the original sentence sequence.
func PackSentences(sentences []string, maxSize int) []string {
	var chunks []string
	var current []string
	length := 0

	for _, sentence := range sentences {
		sentenceLen := len([]rune(sentence))
		if length+sentenceLen > maxSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = []string{sentence}
			length = sentenceLen
		} else {
			current = append(current, sentence)
			length += sentenceLen
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}
