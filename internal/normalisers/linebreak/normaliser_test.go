package linebreak

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/acknow-cli/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no breaks unchanged",
			input:    "The quick brown fox jumps over the lazy dog.",
			expected: "The quick brown fox jumps over the lazy dog.",
		},
		{
			name:     "single break collapses",
			input:    "Line one\nLine two",
			expected: "Line one Line two",
		},
		{
			name:     "double break preserved",
			input:    "Paragraph A\n\nParagraph B",
			expected: "Paragraph A\n\nParagraph B",
		},
		{
			name:     "triple break preserved",
			input:    "Paragraph A\n\n\nParagraph B",
			expected: "Paragraph A\n\n\nParagraph B",
		},
		{
			name:     "breaks separated by horizontal whitespace preserved",
			input:    "Leading\n   \nTrailing",
			expected: "Leading\n   \nTrailing",
		},
		{
			name:     "adjacent spaces absorbed into collapsed break",
			input:    "wrapped  \n  text",
			expected: "wrapped text",
		},
		{
			name:     "adjacent tabs absorbed into collapsed break",
			input:    "wrapped\t\n\ttext",
			expected: "wrapped text",
		},
		{
			name:     "leading break preserved",
			input:    "\nLine",
			expected: "\nLine",
		},
		{
			name:     "trailing break preserved",
			input:    "Line\n",
			expected: "Line\n",
		},
		{
			name:     "only a break",
			input:    "\n",
			expected: "\n",
		},
		{
			name:     "trailing break with horizontal whitespace preserved",
			input:    "Line \n",
			expected: "Line \n",
		},
		{
			name:     "crlf is one break",
			input:    "Line one\r\nLine two",
			expected: "Line one Line two",
		},
		{
			name:     "double crlf preserved",
			input:    "Paragraph A\r\n\r\nParagraph B",
			expected: "Paragraph A\r\n\r\nParagraph B",
		},
		{
			name:     "lone carriage return collapses",
			input:    "Line one\rLine two",
			expected: "Line one Line two",
		},
		{
			name:     "vertical tab collapses",
			input:    "Line one\vLine two",
			expected: "Line one Line two",
		},
		{
			name:     "form feed collapses",
			input:    "Line one\fLine two",
			expected: "Line one Line two",
		},
		{
			name:     "next line collapses",
			input:    "Line one\u0085Line two",
			expected: "Line one Line two",
		},
		{
			name:     "line separator collapses",
			input:    "Line one\u2028Line two",
			expected: "Line one Line two",
		},
		{
			name:     "paragraph separator collapses",
			input:    "Line one\u2029Line two",
			expected: "Line one Line two",
		},
		{
			name:     "horizontal whitespace without break untouched",
			input:    "spaced   out\ttext",
			expected: "spaced   out\ttext",
		},
		{
			name:     "multiple paragraphs with wrapping",
			input:    "This license\nis wrapped.\n\nThis paragraph\nis too.",
			expected: "This license is wrapped.\n\nThis paragraph is too.",
		},
		{
			name:     "unicode text around break",
			input:    "héllo wörld\nüber café",
			expected: "héllo wörld über café",
		},
	}

	normaliser := New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normaliser.Normalise(tc.input))
		})
	}
}

func TestNormalise_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"Line one\nLine two",
		"Paragraph A\n\nParagraph B",
		"Leading\n   \nTrailing",
		"wrapped  \n  text",
		"\nLine\n",
		"a\r\nb\r\n\r\nc",
	}

	normaliser := New()
	for _, input := range inputs {
		once := normaliser.Normalise(input)
		twice := normaliser.Normalise(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestNormalise_LongLicense(t *testing.T) {
	// A hard-wrapped license paragraph collapses into one line.
	wrapped := strings.Join([]string{
		"Permission is hereby granted, free of charge, to any person",
		"obtaining a copy of this software and associated documentation",
		"files (the \"Software\"), to deal in the Software without",
		"restriction.",
	}, "\n")

	normaliser := New()
	got := normaliser.Normalise(wrapped)

	assert.NotContains(t, got, "\n")
	assert.Contains(t, got, "documentation files")
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.TextNormaliser = (*Normaliser)(nil)
}

func BenchmarkNormalise(b *testing.B) {
	normaliser := New()
	text := strings.Repeat("The quick brown fox\njumps over the lazy dog.\n\n", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = normaliser.Normalise(text)
	}
}
