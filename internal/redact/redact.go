// Package redact keeps user text and environment details out of logs and
// error responses. Questions are reduced to a fingerprint; error strings
// have file paths, e-mail addresses and secrets masked.
package redact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Constants for redaction placeholders
const (
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
)

// replacement pairs a pattern with its placeholder. Order matters: secrets
// are masked before paths so a key inside a path is not half-replaced.
type replacement struct {
	pattern     *regexp.Regexp
	placeholder string
}

var replacements = []replacement{
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: RedactedEmailPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`),
		placeholder: RedactedPathPlaceholder,
	},
}

// String masks sensitive fragments in input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range replacements {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error masks sensitive fragments of an error's message.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Question returns a fingerprint of a user question that is stable for the
// same text but does not reveal it: its length in characters and a short
// hash. A blank question yields "none".
func Question(question string) string {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return "none"
	}

	sum := sha256.Sum256([]byte(trimmed))
	return fmt.Sprintf("len=%d sha=%s", utf8.RuneCountInString(trimmed), hex.EncodeToString(sum[:4]))
}
