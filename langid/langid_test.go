package langid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locale/langid"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "language only",
			input:    "en",
			expected: "en",
		},
		{
			name:     "language and region",
			input:    "en-US",
			expected: "en-US",
		},
		{
			name:     "full tag",
			input:    "de-Latn-AT-macos",
			expected: "de-Latn-AT-macos",
		},
		{
			name:     "und",
			input:    "und",
			expected: "und",
		},
		{
			name:     "mixed case normalized",
			input:    "EN-latn-us",
			expected: "en-Latn-US",
		},
		{
			name:     "underscore separator",
			input:    "sr_Cyrl_RS",
			expected: "sr-Cyrl-RS",
		},
		{
			name:     "numeric region",
			input:    "es-419",
			expected: "es-419",
		},
		{
			name:     "digit-led variant",
			input:    "de-1996",
			expected: "de-1996",
		},
		{
			name:     "variants sorted and deduplicated",
			input:    "sl-rozaj-biske-rozaj",
			expected: "sl-biske-rozaj",
		},
		{
			name:     "three letter language",
			input:    "fil-PH",
			expected: "fil-PH",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag, err := langid.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tag.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "empty input",
			input:    "",
			expected: langid.ErrEmptyTag,
		},
		{
			name:     "one letter language",
			input:    "e",
			expected: langid.ErrInvalidLanguage,
		},
		{
			name:     "digits in language",
			input:    "e9",
			expected: langid.ErrInvalidLanguage,
		},
		{
			name:     "too long language",
			input:    "verylonglanguage",
			expected: langid.ErrInvalidLanguage,
		},
		{
			name:     "trailing garbage",
			input:    "en-US-!!",
			expected: langid.ErrTrailingSubtags,
		},
		{
			name:     "double separator",
			input:    "en--US",
			expected: langid.ErrTrailingSubtags,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := langid.Parse(tt.input)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParsePrefix(t *testing.T) {
	t.Parallel()

	t.Run("consumes whole input", func(t *testing.T) {
		t.Parallel()
		tag, rest, err := langid.ParsePrefix("en-Latn-US-macos")
		require.NoError(t, err)
		assert.Equal(t, "en-Latn-US-macos", tag.String())
		assert.Empty(t, rest)
	})

	t.Run("stops at extension tail", func(t *testing.T) {
		t.Parallel()
		tag, rest, err := langid.ParsePrefix("en-US-u-hc-h12")
		require.NoError(t, err)
		assert.Equal(t, "en-US", tag.String())
		assert.Equal(t, "u-hc-h12", rest)
	})

	t.Run("stops at first non-matching subtag", func(t *testing.T) {
		t.Parallel()
		tag, rest, err := langid.ParsePrefix("en-x-priv")
		require.NoError(t, err)
		assert.Equal(t, "en", tag.String())
		assert.Equal(t, "x-priv", rest)
	})

	t.Run("fails on invalid language", func(t *testing.T) {
		t.Parallel()
		_, _, err := langid.ParsePrefix("1-en")
		require.ErrorIs(t, err, langid.ErrInvalidLanguage)
	})
}

func TestFromParts(t *testing.T) {
	t.Parallel()

	t.Run("builds full tag", func(t *testing.T) {
		t.Parallel()
		tag, err := langid.FromParts("de", "latn", "at", []string{"MACOS"})
		require.NoError(t, err)
		assert.Equal(t, "de-Latn-AT-macos", tag.String())
	})

	t.Run("empty parts mean unset", func(t *testing.T) {
		t.Parallel()
		tag, err := langid.FromParts("", "", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "und", tag.String())
		assert.True(t, tag.IsEmpty())
	})

	t.Run("rejects bad script", func(t *testing.T) {
		t.Parallel()
		_, err := langid.FromParts("en", "latin", "", nil)
		require.ErrorIs(t, err, langid.ErrInvalidScript)
	})

	t.Run("rejects bad region", func(t *testing.T) {
		t.Parallel()
		_, err := langid.FromParts("en", "", "USA", nil)
		require.ErrorIs(t, err, langid.ErrInvalidRegion)
	})

	t.Run("rejects bad variant", func(t *testing.T) {
		t.Parallel()
		_, err := langid.FromParts("en", "", "", []string{"a"})
		require.ErrorIs(t, err, langid.ErrInvalidVariant)
	})
}

func TestSetClearFields(t *testing.T) {
	t.Parallel()

	var tag langid.Tag
	assert.Equal(t, "und", tag.String())

	require.NoError(t, tag.SetLanguage("pl"))
	assert.Equal(t, "pl", tag.String())

	require.NoError(t, tag.SetLanguage("de"))
	assert.Equal(t, "de", tag.String())
	require.NoError(t, tag.SetRegion("AT"))
	assert.Equal(t, "de-AT", tag.String())
	require.NoError(t, tag.SetScript("Latn"))
	assert.Equal(t, "de-Latn-AT", tag.String())
	require.NoError(t, tag.SetVariants([]string{"macos"}))
	assert.Equal(t, "de-Latn-AT-macos", tag.String())

	tag.ClearLanguage()
	assert.Equal(t, "und-Latn-AT-macos", tag.String())
	tag.ClearRegion()
	assert.Equal(t, "und-Latn-macos", tag.String())
	tag.ClearScript()
	assert.Equal(t, "und-macos", tag.String())
	tag.ClearVariants()
	assert.Equal(t, "und", tag.String())
}

func TestSetFieldErrors(t *testing.T) {
	t.Parallel()

	var tag langid.Tag
	require.ErrorIs(t, tag.SetLanguage("123"), langid.ErrInvalidLanguage)
	require.ErrorIs(t, tag.SetScript("toolong"), langid.ErrInvalidScript)
	require.ErrorIs(t, tag.SetRegion("4"), langid.ErrInvalidRegion)
	require.ErrorIs(t, tag.SetVariants([]string{"ok", "macos"}), langid.ErrInvalidVariant)
	assert.True(t, tag.IsEmpty(), "failed setters must not mutate the tag")
}

func TestMatches(t *testing.T) {
	t.Parallel()

	en := langid.MustParse("en")
	enUS := langid.MustParse("en-US")
	enGB := langid.MustParse("en-GB")
	pl := langid.MustParse("pl")

	tests := []struct {
		name     string
		a, b     langid.Tag
		aRange   bool
		bRange   bool
		expected bool
	}{
		{name: "identical tags", a: enUS, b: enUS, expected: true},
		{name: "different region", a: enUS, b: enGB, expected: false},
		{name: "missing region no range", a: en, b: enUS, expected: false},
		{name: "missing region as range", a: en, b: enUS, aRange: true, expected: true},
		{name: "range on wrong side", a: en, b: enUS, bRange: true, expected: false},
		{name: "both ranges", a: en, b: enUS, aRange: true, bRange: true, expected: true},
		{name: "different language", a: en, b: pl, aRange: true, bRange: true, expected: false},
		{name: "empty tag as range matches anything", a: langid.Tag{}, b: enUS, aRange: true, expected: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.a.Matches(tt.b, tt.aRange, tt.bRange))
		})
	}
}

func TestEqualClone(t *testing.T) {
	t.Parallel()

	a := langid.MustParse("sl-rozaj-biske")
	b := langid.MustParse("SL-biske-rozaj")
	assert.True(t, a.Equal(b), "canonical forms must compare equal")

	c := a.Clone()
	assert.True(t, a.Equal(c))
	require.NoError(t, c.SetVariants([]string{"nedis"}))
	assert.False(t, a.Equal(c), "clone must not share variant storage")
	assert.Equal(t, []string{"biske", "rozaj"}, a.Variants())
}
