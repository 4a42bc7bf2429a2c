// Package interpret composes a structured reading out of hexagram
// reference data, the cast lines and the safety verdict on the question.
//
// Each block (now, changes, trend, practical, mood, anchors) is computed by
// its own pure function with a fixed fallback chain, so a sparse record
// still yields a complete reading.
package interpret
