// Package textutil provides the word and sentence tokenization helpers
// shared by the persona, matching, ranking, and refinement stages.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	wordRe      = regexp.MustCompile(`\b\w+\b`)
	longWordRe  = regexp.MustCompile(`\b\w{4,}\b`)
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
)

// Words returns all word tokens of s, lowercased.
func Words(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}

// LongWords returns all word tokens of s with at least four characters,
// lowercased. Duplicates are preserved in occurrence order.
func LongWords(s string) []string {
	return longWordRe.FindAllString(strings.ToLower(s), -1)
}

// LongWordSet returns the distinct ≥4-character words of s, lowercased.
func LongWordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range LongWords(s) {
		set[w] = true
	}
	return set
}

// AlphaTokens splits s into lowercase purely-alphabetic tokens, dropping
// anything containing digits or punctuation.
func AlphaTokens(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	return fields
}

// Keywords extracts the meaningful tokens of s: lowercase alphabetic tokens
// longer than three characters with stopwords removed. Duplicates are kept
// in occurrence order.
func Keywords(s string) []string {
	var out []string
	for _, tok := range AlphaTokens(s) {
		if len(tok) > 3 && !IsStopword(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// IsUpper reports whether s has at least one cased letter and no lowercase
// letters.
func IsUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}

// SentenceCount counts the sentence-like segments of s: pieces between
// terminator runs whose trimmed length exceeds ten characters.
func SentenceCount(s string) int {
	count := 0
	for _, seg := range sentenceEnd.Split(s, -1) {
		if len(strings.TrimSpace(seg)) > 10 {
			count++
		}
	}
	return count
}

// Sentences splits s into sentences. A sentence ends at a run of '.', '!'
// or '?' followed by whitespace or end of input; terminators stay attached
// to their sentence. Concatenating the returned sentences in order, with
// single spaces, reproduces the input's sentence sequence.
func Sentences(s string) []string {
	var sentences []string
	var cur strings.Builder

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		cur.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume the full terminator run.
		for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
			i++
			cur.WriteRune(runes[i])
		}
		if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			if sent := strings.TrimSpace(cur.String()); sent != "" {
				sentences = append(sentences, sent)
			}
			cur.Reset()
		}
	}

	if sent := strings.TrimSpace(cur.String()); sent != "" {
		sentences = append(sentences, sent)
	}
	return sentences
}
