package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/image/draw"

	_ "image/jpeg"

	_ "golang.org/x/image/tiff"

	"github.com/bhavya-dabas/docrank/model"
	"github.com/bhavya-dabas/docrank/ocr"
)

// extractOCR recognizes text from the images of pages that have no real
// native text. Pages whose native content exceeds the threshold are skipped
// to avoid double-counting, and at most MaxOCRPages pages are examined to
// bound cost. OCR failures yield zero lines and never escalate.
func (e *Extractor) extractOCR(path string) ([]model.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	client, err := ocr.New()
	if err != nil {
		return nil, fmt.Errorf("ocr unavailable: %w", err)
	}
	defer client.Close()
	if err := client.SetLanguage(e.config.OCRLanguage); err != nil {
		e.log.Warn("ocr language not set", "lang", e.config.OCRLanguage, "error", err)
	}

	maxPages := ctx.PageCount
	if maxPages > e.config.MaxOCRPages {
		maxPages = e.config.MaxOCRPages
	}

	var lines []model.Line
	for pageNr := 1; pageNr <= maxPages; pageNr++ {
		native := nativePageText(ctx, pageNr)
		if len(strings.TrimSpace(native)) > e.config.NativeTextThreshold {
			continue
		}
		pageLines, err := e.recognizePage(ctx, client, pageNr)
		if err != nil {
			e.log.Warn("ocr page failed", "path", path, "page", pageNr, "error", err)
			continue
		}
		lines = append(lines, pageLines...)
	}
	return lines, nil
}

// recognizePage runs OCR over every image of one page, in object order.
func (e *Extractor) recognizePage(ctx *pdfmodel.Context, client *ocr.Client, pageNr int) ([]model.Line, error) {
	images, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("image extraction: %w", err)
	}
	if len(images) == 0 {
		return nil, nil
	}

	objNrs := make([]int, 0, len(images))
	for objNr := range images {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	var lines []model.Line
	for _, objNr := range objNrs {
		img := images[objNr]
		data, err := io.ReadAll(img)
		if err != nil {
			continue
		}
		scaled, err := upscale(data)
		if err != nil {
			continue
		}
		words, err := client.RecognizeWords(scaled)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			if ln, ok := lineFromWord(w, pageNr-1, e.config.MinOCRConfidence); ok {
				lines = append(lines, ln)
			}
		}
	}
	return lines, nil
}

// lineFromWord converts one recognized token into a Line. Font size is
// estimated from the glyph box height at 2x density, clamped to [8,72].
func lineFromWord(w ocr.Word, page int, minConfidence float64) (model.Line, bool) {
	text := CleanText(w.Text)
	if text == "" {
		return model.Line{}, false
	}
	if w.Confidence < minConfidence {
		return model.Line{}, false
	}

	size := float64(w.Box.Dy()) * 0.75
	if size < 8 {
		size = 8
	} else if size > 72 {
		size = 72
	}

	return model.Line{
		Text:      text,
		Page:      page,
		FontSize:  size,
		X0:        float64(w.Box.Min.X),
		Y0:        float64(w.Box.Min.Y),
		X1:        float64(w.Box.Max.X),
		Y1:        float64(w.Box.Max.Y),
		CharCount: len([]rune(text)),
	}, true
}

// upscale decodes an extracted page image and scales it to 2x pixel density
// before recognition, re-encoded as PNG.
func upscale(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image decode: %w", err)
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*2, b.Dy()*2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// nativePageText pulls the raw text shown by a page's content stream.
// It only needs to be good enough to tell "this page has real text" from
// "this page is an image", so only the common text-showing operators are
// handled.
func nativePageText(ctx *pdfmodel.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if bytes.HasSuffix(line, []byte("Tj")) || bytes.HasSuffix(line, []byte("TJ")) ||
			(bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("("))) {
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.Write(m[1])
			}
		}
	}
	return sb.String()
}
