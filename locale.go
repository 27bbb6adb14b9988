package locale

import (
	"github.com/dmitrymomot/locale/langid"
)

// Locale is a parsed locale identifier: a language identifier plus its
// extension sequences. Both fields are exported; the ID field carries the
// language/script/region/variants subtags and Extensions is manipulated
// through its own validating operations. The zero Locale is "und" with no
// extensions.
type Locale struct {
	ID         langid.Tag
	Extensions ExtensionsMap
}

// Parse parses a full locale tag. The language identifier head is parsed
// first, the remainder as extension sequences; either failing fails the
// whole parse, so no partially valid Locale is ever returned.
func Parse(s string) (Locale, error) {
	tag, rest, err := langid.ParsePrefix(s)
	if err != nil {
		return Locale{}, err
	}
	extensions, err := parseExtensions(rest)
	if err != nil {
		return Locale{}, err
	}
	return Locale{ID: tag, Extensions: extensions}, nil
}

// MustParse is like Parse but panics on malformed input. It simplifies safe
// initialization of package-level locales.
func MustParse(s string) Locale {
	loc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// FromParts builds a Locale from explicit subtags, validating each one, plus
// an optional pre-built extensions map (nil means empty).
func FromParts(language, script, region string, variants []string, extensions *ExtensionsMap) (Locale, error) {
	tag, err := langid.FromParts(language, script, region, variants)
	if err != nil {
		return Locale{}, err
	}
	loc := Locale{ID: tag}
	if extensions != nil {
		loc.Extensions = extensions.Clone()
	}
	return loc, nil
}

// FromPartsUnchecked builds a Locale without any validation. The caller
// guarantees every part is already canonical (for example, loaded from a
// trusted pre-validated cache); misuse is a logic error this package will
// not detect. A nil extensions map means empty.
func FromPartsUnchecked(language, script, region string, variants []string, extensions *ExtensionsMap) Locale {
	loc := Locale{ID: langid.FromPartsUnchecked(language, script, region, variants)}
	if extensions != nil {
		loc.Extensions = *extensions
	}
	return loc
}

// Canonicalize parses input and re-serializes it in canonical form: subtag
// casing normalized, extension sequences reordered, attributes, keywords and
// tokens sorted. All canonical-form producers go through Parse, so this is
// the round-trip choke point.
func Canonicalize(input string) (string, error) {
	loc, err := Parse(input)
	if err != nil {
		return "", err
	}
	return loc.String(), nil
}

// FromTag wraps a bare language identifier in a Locale with no extensions.
func FromTag(tag langid.Tag) Locale {
	return Locale{ID: tag}
}

// Language returns the language subtag, or "und" when unset.
func (l Locale) Language() string { return l.ID.Language() }

// SetLanguage sets the language subtag; an empty string or "und" unsets it.
func (l *Locale) SetLanguage(language string) error { return l.ID.SetLanguage(language) }

// ClearLanguage resets the language to und.
func (l *Locale) ClearLanguage() { l.ID.ClearLanguage() }

// Script returns the script subtag, or an empty string when unset.
func (l Locale) Script() string { return l.ID.Script() }

// SetScript sets the script subtag; an empty string unsets it.
func (l *Locale) SetScript(script string) error { return l.ID.SetScript(script) }

// ClearScript unsets the script subtag.
func (l *Locale) ClearScript() { l.ID.ClearScript() }

// Region returns the region subtag, or an empty string when unset.
func (l Locale) Region() string { return l.ID.Region() }

// SetRegion sets the region subtag; an empty string unsets it.
func (l *Locale) SetRegion(region string) error { return l.ID.SetRegion(region) }

// ClearRegion unsets the region subtag.
func (l *Locale) ClearRegion() { l.ID.ClearRegion() }

// Variants returns a copy of the variant subtags in canonical order.
func (l Locale) Variants() []string { return l.ID.Variants() }

// SetVariants replaces the variant subtags; an empty slice clears them.
func (l *Locale) SetVariants(variants []string) error { return l.ID.SetVariants(variants) }

// ClearVariants removes all variant subtags.
func (l *Locale) ClearVariants() { l.ID.ClearVariants() }

// Matches compares two locales with optional wildcard (range) semantics on
// either side. A locale carrying private-use tokens never matches anything:
// private-use content is application-defined and unverifiable. All other
// extensions are ignored, so locales differing only in their "u" or "t"
// sequences compare as the same locale.
func (l Locale) Matches(other Locale, selfRange, otherRange bool) bool {
	if l.Extensions.HasPrivate() || other.Extensions.HasPrivate() {
		return false
	}
	return l.ID.Matches(other.ID, selfRange, otherRange)
}

// CharacterDirection returns the writing direction implied by the locale's
// script or language.
func (l Locale) CharacterDirection() langid.Direction {
	return l.ID.CharacterDirection()
}

// AddLikelySubtags maximizes the language identifier in place, leaving the
// extensions untouched. Reports whether anything changed.
func (l *Locale) AddLikelySubtags() bool {
	return l.ID.AddLikelySubtags()
}

// RemoveLikelySubtags minimizes the language identifier in place, leaving
// the extensions untouched. Reports whether anything changed.
func (l *Locale) RemoveLikelySubtags() bool {
	return l.ID.RemoveLikelySubtags()
}

// Equal reports structural equality.
func (l Locale) Equal(other Locale) bool {
	return l.ID.Equal(other.ID) && l.Extensions.Equal(other.Extensions)
}

// Clone returns a deep copy of the locale.
func (l Locale) Clone() Locale {
	return Locale{ID: l.ID.Clone(), Extensions: l.Extensions.Clone()}
}

// String serializes the locale in canonical form: the language identifier,
// then the extension tail when non-empty.
func (l Locale) String() string {
	base := l.ID.String()
	ext := l.Extensions.String()
	if ext == "" {
		return base
	}
	return base + "-" + ext
}
