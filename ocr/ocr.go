//go:build ocr

// Package ocr provides optical character recognition for scanned PDF pages.
//
// This package wraps the Tesseract OCR engine via gosseract and is only
// compiled when the "ocr" build tag is set. It requires Tesseract to be
// installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be specified as a "+" separated string (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeWords performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the recognized tokens with word-level confidence and bounding
// boxes.
func (c *Client) RecognizeWords(imageData []byte) ([]Word, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, Word{
			Text:       b.Word,
			Confidence: b.Confidence,
			Box:        b.Box,
		})
	}
	return words, nil
}
