//go:build !ocr

// Package ocr provides optical character recognition for scanned PDF pages.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrNotEnabled, so callers degrade to extracting
// nothing from image-only pages rather than failing the run.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed.
package ocr

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op for the stub client. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}

// RecognizeWords returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeWords(imageData []byte) ([]Word, error) {
	return nil, ErrNotEnabled
}
