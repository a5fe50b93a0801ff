package extract

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	"rsc.io/pdf"

	"github.com/bhavya-dabas/docrank/model"
)

// Config holds extraction configuration.
type Config struct {
	// MaxOCRPages bounds how many pages the OCR fallback will examine.
	// Default: 50.
	MaxOCRPages int

	// MinOCRConfidence is the word confidence (0-100) below which OCR
	// tokens are discarded. Default: 30.
	MinOCRConfidence float64

	// NativeTextThreshold is the native character count above which a page
	// is considered to have real text and is skipped by the OCR fallback,
	// avoiding double-counting. Default: 20.
	NativeTextThreshold int

	// OCRLanguage is the Tesseract language string. Default: "eng".
	OCRLanguage string

	// ParagraphGapRatio controls page text assembly: a vertical gap larger
	// than this multiple of the page's median line gap becomes a paragraph
	// break. Default: 1.6.
	ParagraphGapRatio float64
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		MaxOCRPages:         50,
		MinOCRConfidence:    30,
		NativeTextThreshold: 20,
		OCRLanguage:         "eng",
		ParagraphGapRatio:   1.6,
	}
}

// Document is the extraction result for one PDF: the ordered line sequence,
// per-page assembled text, and the document's font statistics.
type Document struct {
	// Lines are all extracted lines in page order, top of page first.
	Lines []model.Line

	// Pages maps 0-based page index to assembled page text. Paragraph
	// boundaries appear as blank lines.
	Pages map[int]string

	// Stats are the font statistics over Lines.
	Stats model.FontStatistics
}

// PageText returns the assembled text of a page, or "" if the page has none.
func (d *Document) PageText(page int) string {
	return d.Pages[page]
}

// HasPage reports whether the document has any text on the given page.
func (d *Document) HasPage(page int) bool {
	_, ok := d.Pages[page]
	return ok
}

// Extractor extracts layout-aware text lines from PDF files.
type Extractor struct {
	config Config
	log    *slog.Logger
}

// New creates an extractor with default configuration.
func New() *Extractor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an extractor with custom configuration.
func NewWithConfig(config Config) *Extractor {
	if config.MaxOCRPages <= 0 {
		config.MaxOCRPages = 50
	}
	if config.OCRLanguage == "" {
		config.OCRLanguage = "eng"
	}
	if config.ParagraphGapRatio <= 0 {
		config.ParagraphGapRatio = 1.6
	}
	return &Extractor{config: config, log: slog.Default()}
}

// SetLogger replaces the extractor's logger.
func (e *Extractor) SetLogger(log *slog.Logger) {
	if log != nil {
		e.log = log
	}
}

// Extract returns the document's lines, page text, and font statistics.
// The primary layout-aware strategy is tried first; if it yields nothing,
// the OCR fallback runs. A document that defeats both strategies produces
// an empty Document and a nil error so the caller can continue with the
// remaining documents.
func (e *Extractor) Extract(path string) (*Document, error) {
	chain := FirstSuccess(e.extractNative, e.extractOCR)

	lines, err := chain(path)
	if err != nil {
		e.log.Warn("extraction produced no usable lines", "path", path, "error", err)
	}
	if len(lines) == 0 {
		return &Document{Pages: map[int]string{}}, nil
	}

	return &Document{
		Lines: lines,
		Pages: e.assemblePageText(lines),
		Stats: model.ComputeFontStatistics(lines),
	}, nil
}

// extractNative parses the PDF's internal text structure. The underlying
// parser panics on malformed files; the panic is recovered and reported as
// an error so the OCR fallback gets its turn.
func (e *Extractor) extractNative(path string) (lines []model.Line, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("pdf parse failed: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("pdf open: %w", err)
	}

	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		lines = append(lines, e.groupPageLines(content.Text, pageNum-1)...)
	}
	return lines, nil
}

// groupPageLines groups positioned text runs into lines by baseline Y, then
// assembles each line's text left to right.
func (e *Extractor) groupPageLines(frags []pdf.Text, page int) []model.Line {
	if len(frags) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var groups [][]pdf.Text
	var current []pdf.Text
	for _, frag := range sorted {
		if len(current) == 0 {
			current = []pdf.Text{frag}
			continue
		}
		if math.Abs(frag.Y-current[0].Y) <= yTolerance(frag) {
			current = append(current, frag)
		} else {
			groups = append(groups, current)
			current = []pdf.Text{frag}
		}
	}
	groups = append(groups, current)

	var lines []model.Line
	var prevY float64
	havePrev := false
	for _, group := range groups {
		ln, ok := buildLine(group, page, prevY, havePrev)
		prevY = group[0].Y
		havePrev = true
		if ok {
			lines = append(lines, ln)
		}
	}
	return lines
}

// yTolerance is the baseline distance within which two runs share a line.
func yTolerance(frag pdf.Text) float64 {
	if frag.FontSize > 0 {
		return frag.FontSize * 0.5
	}
	return 3.0
}

// buildLine assembles one line from its runs. Lines shorter than two
// characters after whitespace normalization are dropped.
func buildLine(group []pdf.Text, page int, prevY float64, havePrev bool) (model.Line, bool) {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].X < group[j].X
	})

	var sb strings.Builder
	var prevEnd float64
	fontSize := 0.0
	fontName := ""
	x0, x1 := group[0].X, group[0].X
	y0 := group[0].Y

	for i, frag := range group {
		if i > 0 {
			gap := frag.X - prevEnd
			spaceWidth := frag.FontSize * 0.3
			if spaceWidth <= 0 {
				spaceWidth = 1.0
			}
			if gap > spaceWidth {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(frag.S)
		prevEnd = frag.X + frag.W

		if fontSize == 0 && frag.FontSize > 0 {
			fontSize = roundTenth(frag.FontSize)
			fontName = frag.Font
		}
		if frag.X < x0 {
			x0 = frag.X
		}
		if frag.X+frag.W > x1 {
			x1 = frag.X + frag.W
		}
	}

	text := CleanText(sb.String())
	if len(text) < 2 {
		return model.Line{}, false
	}

	// No per-run font data: estimate from the text box height, taken as
	// the gap to the previous line when one exists.
	if fontSize == 0 {
		boxHeight := 12.0
		if havePrev && prevY > y0 {
			boxHeight = prevY - y0
		}
		fontSize = roundTenth(boxHeight * 0.7)
	}

	lower := strings.ToLower(fontName)
	return model.Line{
		Text:      text,
		Page:      page,
		FontSize:  fontSize,
		FontName:  fontName,
		IsBold:    strings.Contains(lower, "bold"),
		IsItalic:  strings.Contains(lower, "italic"),
		X0:        x0,
		Y0:        y0,
		X1:        x1,
		Y1:        y0 + fontSize,
		CharCount: len([]rune(text)),
	}, true
}

// CleanText normalizes extracted text: NFKC form, whitespace runs collapsed
// to single spaces, leading/trailing whitespace trimmed.
func CleanText(s string) string {
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// assemblePageText joins each page's lines into text, inserting a blank
// line where the vertical gap between consecutive lines exceeds the
// paragraph threshold for that page.
func (e *Extractor) assemblePageText(lines []model.Line) map[int]string {
	byPage := make(map[int][]model.Line)
	for _, ln := range lines {
		byPage[ln.Page] = append(byPage[ln.Page], ln)
	}

	pages := make(map[int]string, len(byPage))
	for page, pageLines := range byPage {
		pages[page] = joinWithParagraphs(pageLines, e.config.ParagraphGapRatio)
	}
	return pages
}

func joinWithParagraphs(pageLines []model.Line, gapRatio float64) string {
	if len(pageLines) == 0 {
		return ""
	}

	gaps := make([]float64, 0, len(pageLines)-1)
	for i := 1; i < len(pageLines); i++ {
		gap := pageLines[i-1].Y0 - pageLines[i].Y0
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}
	threshold := 0.0
	if len(gaps) > 0 {
		sorted := make([]float64, len(gaps))
		copy(sorted, gaps)
		sort.Float64s(sorted)
		threshold = sorted[len(sorted)/2] * gapRatio
	}

	var sb strings.Builder
	for i, ln := range pageLines {
		if i > 0 {
			gap := pageLines[i-1].Y0 - ln.Y0
			if threshold > 0 && gap > threshold {
				sb.WriteString("\n\n")
			} else {
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(ln.Text)
	}
	return sb.String()
}
