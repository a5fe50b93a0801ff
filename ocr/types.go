package ocr

import (
	"errors"
	"image"
)

// ErrNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Word is a single recognized token with its confidence and pixel bounding
// box on the source image.
type Word struct {
	// Text is the recognized token.
	Text string

	// Confidence is the engine's confidence for this token, 0-100.
	Confidence float64

	// Box is the token's bounding box in image pixels.
	Box image.Rectangle
}
