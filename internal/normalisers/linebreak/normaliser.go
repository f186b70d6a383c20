// Package linebreak collapses premature line breaks in license text.
//
// Historical license text is often hard-wrapped at ~80 columns. A single
// line break between two words is manual wrapping and becomes a space;
// two or more consecutive breaks separate paragraphs and are preserved.
package linebreak

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/acknow-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TextNormaliser = (*Normaliser)(nil)

// Normaliser collapses single line breaks into spaces.
type Normaliser struct{}

// New creates a new line-break normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise rewrites text in a single pass over maximal whitespace regions.
// A region mixing horizontal whitespace with exactly one line-terminator
// unit, with a non-whitespace character on both sides, collapses to one
// space; every other region is emitted byte-for-byte. The transform is
// pure and idempotent.
func (n *Normaliser) Normalise(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isHorizontal(r) && !isTerminator(r) {
			b.WriteString(text[i : i+size])
			i += size
			continue
		}

		start := i
		breaks := 0
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if isHorizontal(r) {
				i += size
				continue
			}
			if !isTerminator(r) {
				break
			}
			breaks++
			i += size
			// CRLF counts as a single terminator unit.
			if r == '\r' && i < len(text) && text[i] == '\n' {
				i++
			}
		}

		if breaks == 1 && start > 0 && i < len(text) {
			b.WriteByte(' ')
		} else {
			b.WriteString(text[start:i])
		}
	}

	return b.String()
}

// isHorizontal reports whether r is horizontal whitespace eligible for
// absorption into a collapsed break.
func isHorizontal(r rune) bool {
	return r == ' ' || r == '\t'
}

// isTerminator reports whether r starts a Unicode line-terminator unit.
func isTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
