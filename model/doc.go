// Package model defines the shared value types that flow through the
// document analysis pipeline: extracted text lines with font metadata,
// document outlines, assembled sections, persona profiles, and refined
// subsections.
//
// Each pipeline stage fully produces its output values before handing them
// to the next stage; nothing in this package carries mutable shared state.
package model
