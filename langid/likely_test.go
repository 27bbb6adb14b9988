package langid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/locale/langid"
)

func TestAddLikelySubtags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		changed  bool
	}{
		{
			name:     "language only",
			input:    "en",
			expected: "en-Latn-US",
			changed:  true,
		},
		{
			name:     "language and script",
			input:    "zh-Hant",
			expected: "zh-Hant-TW",
			changed:  true,
		},
		{
			name:     "language and region",
			input:    "zh-TW",
			expected: "zh-Hant-TW",
			changed:  true,
		},
		{
			name:     "script only",
			input:    "und-Cyrl",
			expected: "ru-Cyrl-RU",
			changed:  true,
		},
		{
			name:     "region only",
			input:    "und-AT",
			expected: "de-Latn-AT",
			changed:  true,
		},
		{
			name:     "und",
			input:    "und",
			expected: "en-Latn-US",
			changed:  true,
		},
		{
			name:     "already maximized",
			input:    "de-Latn-DE",
			expected: "de-Latn-DE",
			changed:  false,
		},
		{
			name:     "unknown language untouched",
			input:    "tlh",
			expected: "tlh",
			changed:  false,
		},
		{
			name:     "variants preserved",
			input:    "de-1996",
			expected: "de-Latn-DE-1996",
			changed:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag := langid.MustParse(tt.input)
			assert.Equal(t, tt.changed, tag.AddLikelySubtags())
			assert.Equal(t, tt.expected, tag.String())
		})
	}
}

func TestRemoveLikelySubtags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		changed  bool
	}{
		{
			name:     "full tag to language",
			input:    "en-Latn-US",
			expected: "en",
			changed:  true,
		},
		{
			name:     "keeps distinguishing region",
			input:    "zh-Hant-TW",
			expected: "zh-TW",
			changed:  true,
		},
		{
			name:     "keeps distinguishing script",
			input:    "sr-Latn-RS",
			expected: "sr-Latn",
			changed:  true,
		},
		{
			name:     "already minimal",
			input:    "pl",
			expected: "pl",
			changed:  false,
		},
		{
			name:     "partial tag",
			input:    "de-DE",
			expected: "de",
			changed:  true,
		},
		{
			name:     "variants preserved",
			input:    "de-Latn-DE-1996",
			expected: "de-1996",
			changed:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag := langid.MustParse(tt.input)
			assert.Equal(t, tt.changed, tag.RemoveLikelySubtags())
			assert.Equal(t, tt.expected, tag.String())
		})
	}
}

func TestCharacterDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected langid.Direction
	}{
		{input: "en", expected: langid.DirectionLTR},
		{input: "ar", expected: langid.DirectionRTL},
		{input: "he-IL", expected: langid.DirectionRTL},
		{input: "fa", expected: langid.DirectionRTL},
		{input: "az", expected: langid.DirectionLTR},
		{input: "az-Arab", expected: langid.DirectionRTL},
		{input: "ar-Latn", expected: langid.DirectionLTR},
		{input: "und", expected: langid.DirectionLTR},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			tag := langid.MustParse(tt.input)
			assert.Equal(t, tt.expected, tag.CharacterDirection())
		})
	}
}

func TestDirectionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ltr", langid.DirectionLTR.String())
	assert.Equal(t, "rtl", langid.DirectionRTL.String())
}
