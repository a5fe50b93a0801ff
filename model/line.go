package model

import "sort"

// Line is a single extracted text line with position and font metadata.
// Lines are produced by the extraction stage and consumed by the outline
// builder; they are immutable once created.
type Line struct {
	// Text is the line content with whitespace runs collapsed to single spaces.
	Text string

	// Page is the 0-based page index the line appears on.
	Page int

	// FontSize is the detected (or estimated) font size, rounded to one
	// decimal place.
	FontSize float64

	// FontName is the PDF font name, empty when unavailable.
	FontName string

	// IsBold and IsItalic are inferred from font name substrings.
	IsBold   bool
	IsItalic bool

	// X0, Y0, X1, Y1 form the line's bounding box in PDF coordinates
	// (Y increases toward the top of the page).
	X0, Y0, X1, Y1 float64

	// CharCount is the character count of Text.
	CharCount int
}

// FontStatistics summarizes the font sizes observed in one document.
// It is derived once per document after all lines are collected and acts
// as the reference scale for title and heading detection.
type FontStatistics struct {
	// Median font size across all lines.
	Median float64

	// Mean font size across all lines.
	Mean float64

	// Mode is the most frequently observed font size. Ties are broken in
	// favor of the size observed first, matching counter semantics.
	Mode float64
}

// ComputeFontStatistics derives font statistics from a line set.
// It returns the zero value when no lines are present.
func ComputeFontStatistics(lines []Line) FontStatistics {
	if len(lines) == 0 {
		return FontStatistics{}
	}

	sizes := make([]float64, 0, len(lines))
	for _, ln := range lines {
		sizes = append(sizes, ln.FontSize)
	}

	sorted := make([]float64, len(sizes))
	copy(sorted, sizes)
	sort.Float64s(sorted)

	var median float64
	n := len(sorted)
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	var sum float64
	for _, s := range sizes {
		sum += s
	}

	// Mode: highest count wins; on equal counts the size seen first in
	// extraction order wins.
	counts := make(map[float64]int)
	first := make(map[float64]int)
	for i, s := range sizes {
		counts[s]++
		if _, seen := first[s]; !seen {
			first[s] = i
		}
	}
	mode := sizes[0]
	best := 0
	for _, s := range sizes {
		c := counts[s]
		if c > best || (c == best && first[s] < first[mode]) {
			best = c
			mode = s
		}
	}

	return FontStatistics{
		Median: median,
		Mean:   sum / float64(len(sizes)),
		Mode:   mode,
	}
}
