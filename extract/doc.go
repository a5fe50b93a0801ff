// Package extract recovers ordered text lines with font metadata from PDF
// documents whose internal formatting is unreliable.
//
// The primary strategy parses the PDF's text content directly, keeping
// per-run font name, size, and position. When a document yields no usable
// lines (scanned or image-only pages), an OCR fallback recognizes text from
// the embedded page images instead. Strategies are composed by a simple
// first-success-wins combinator; a document that defeats every strategy
// produces an empty line set rather than an error that would abort the run.
package extract
