package langid

import (
	"fmt"
	"slices"
	"strings"
)

// Tag is a parsed language identifier. The zero value is the undetermined
// language ("und"). Tags are plain values; copying is cheap and a copy is
// independent except for the shared variants backing array (use Clone when a
// deep copy is needed).
type Tag struct {
	language string // "" means und
	script   string
	region   string
	variants []string // canonical: lowercase, sorted, unique
}

// Parse parses a complete language identifier. Input may use "-" or "_" as
// the separator and any casing; the resulting Tag is canonical. Trailing
// subtags that do not fit the language[-script][-region][-variants] grammar
// fail the parse.
func Parse(s string) (Tag, error) {
	tag, rest, err := ParsePrefix(s)
	if err != nil {
		return Tag{}, err
	}
	if rest != "" {
		return Tag{}, fmt.Errorf("%w: %q", ErrTrailingSubtags, rest)
	}
	return tag, nil
}

// MustParse is like Parse but panics on malformed input. It simplifies safe
// initialization of package-level tags.
func MustParse(s string) Tag {
	tag, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// ParsePrefix parses the longest leading language identifier of s and
// returns the unconsumed remainder, with the leading separator stripped.
// The remainder is empty when the whole input was consumed. Callers that
// compose language identifiers with extension sequences parse the head with
// ParsePrefix and hand the remainder to their own grammar.
func ParsePrefix(s string) (Tag, string, error) {
	if s == "" {
		return Tag{}, "", ErrEmptyTag
	}

	parts := strings.Split(strings.ReplaceAll(s, "_", "-"), "-")

	language, err := parseLanguage(parts[0])
	if err != nil {
		return Tag{}, "", err
	}

	tag := Tag{language: language}
	i := 1

	if i < len(parts) && isScript(parts[i]) {
		tag.script = canonicalScript(parts[i])
		i++
	}
	if i < len(parts) && isRegion(parts[i]) {
		tag.region = canonicalRegion(parts[i])
		i++
	}
	for i < len(parts) && isVariant(parts[i]) {
		tag.variants = append(tag.variants, lower(parts[i]))
		i++
	}
	canonicalizeVariants(&tag.variants)

	rest := strings.Join(parts[i:], "-")
	if i < len(parts) && rest == "" {
		// Trailing separator: "en-" splits into an empty final subtag.
		return Tag{}, "", fmt.Errorf("%w: empty subtag", ErrTrailingSubtags)
	}
	return tag, rest, nil
}

// FromParts builds a Tag from explicit subtags, validating each one. Empty
// strings and a nil variants slice mean the field is unset.
func FromParts(language, script, region string, variants []string) (Tag, error) {
	var tag Tag
	if err := tag.SetLanguage(language); err != nil {
		return Tag{}, err
	}
	if err := tag.SetScript(script); err != nil {
		return Tag{}, err
	}
	if err := tag.SetRegion(region); err != nil {
		return Tag{}, err
	}
	if err := tag.SetVariants(variants); err != nil {
		return Tag{}, err
	}
	return tag, nil
}

// FromPartsUnchecked builds a Tag without any grammar validation or
// canonicalization. The caller guarantees every part is already in canonical
// form (as produced by this package); handing it anything else is a logic
// error that later operations will not detect. Empty strings mean unset.
func FromPartsUnchecked(language, script, region string, variants []string) Tag {
	return Tag{
		language: language,
		script:   script,
		region:   region,
		variants: slices.Clone(variants),
	}
}

// Language returns the language subtag, or "und" when unset.
func (t Tag) Language() string {
	if t.language == "" {
		return "und"
	}
	return t.language
}

// SetLanguage sets the language subtag. An empty string or "und" unsets it.
func (t *Tag) SetLanguage(language string) error {
	if language == "" {
		t.language = ""
		return nil
	}
	parsed, err := parseLanguage(language)
	if err != nil {
		return err
	}
	t.language = parsed
	return nil
}

// ClearLanguage resets the language to und.
func (t *Tag) ClearLanguage() {
	t.language = ""
}

// Script returns the script subtag, or an empty string when unset.
func (t Tag) Script() string {
	return t.script
}

// SetScript sets the script subtag. An empty string unsets it.
func (t *Tag) SetScript(script string) error {
	if script == "" {
		t.script = ""
		return nil
	}
	if !isScript(script) {
		return fmt.Errorf("%w: %q", ErrInvalidScript, script)
	}
	t.script = canonicalScript(script)
	return nil
}

// ClearScript unsets the script subtag.
func (t *Tag) ClearScript() {
	t.script = ""
}

// Region returns the region subtag, or an empty string when unset.
func (t Tag) Region() string {
	return t.region
}

// SetRegion sets the region subtag. An empty string unsets it.
func (t *Tag) SetRegion(region string) error {
	if region == "" {
		t.region = ""
		return nil
	}
	if !isRegion(region) {
		return fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}
	t.region = canonicalRegion(region)
	return nil
}

// ClearRegion unsets the region subtag.
func (t *Tag) ClearRegion() {
	t.region = ""
}

// Variants returns a copy of the variant subtags in canonical order.
func (t Tag) Variants() []string {
	return slices.Clone(t.variants)
}

// SetVariants replaces the variant subtags, validating each one. An empty or
// nil slice clears them. The stored set is sorted and deduplicated.
func (t *Tag) SetVariants(variants []string) error {
	if len(variants) == 0 {
		t.variants = nil
		return nil
	}
	next := make([]string, 0, len(variants))
	for _, v := range variants {
		if !isVariant(v) {
			return fmt.Errorf("%w: %q", ErrInvalidVariant, v)
		}
		next = append(next, lower(v))
	}
	canonicalizeVariants(&next)
	t.variants = next
	return nil
}

// ClearVariants removes all variant subtags.
func (t *Tag) ClearVariants() {
	t.variants = nil
}

// IsEmpty reports whether the tag is the bare undetermined language with no
// script, region, or variants.
func (t Tag) IsEmpty() bool {
	return t.language == "" && t.script == "" && t.region == "" && len(t.variants) == 0
}

// Matches compares two tags field by field. A side marked as a range treats
// each of its unset fields as a wildcard matching any value on the other
// side; with both flags false the comparison is plain equality.
func (t Tag) Matches(other Tag, selfRange, otherRange bool) bool {
	return subtagMatches(t.language, other.language, selfRange, otherRange) &&
		subtagMatches(t.script, other.script, selfRange, otherRange) &&
		subtagMatches(t.region, other.region, selfRange, otherRange) &&
		variantsMatch(t.variants, other.variants, selfRange, otherRange)
}

func subtagMatches(a, b string, aRange, bRange bool) bool {
	return (aRange && a == "") || (bRange && b == "") || a == b
}

func variantsMatch(a, b []string, aRange, bRange bool) bool {
	return (aRange && len(a) == 0) || (bRange && len(b) == 0) || slices.Equal(a, b)
}

// Equal reports structural equality.
func (t Tag) Equal(other Tag) bool {
	return t.language == other.language &&
		t.script == other.script &&
		t.region == other.region &&
		slices.Equal(t.variants, other.variants)
}

// Clone returns a deep copy of the tag.
func (t Tag) Clone() Tag {
	c := t
	c.variants = slices.Clone(t.variants)
	return c
}

// String serializes the tag in canonical form. The zero Tag prints "und".
func (t Tag) String() string {
	parts := make([]string, 0, 3+len(t.variants))
	parts = append(parts, t.Language())
	if t.script != "" {
		parts = append(parts, t.script)
	}
	if t.region != "" {
		parts = append(parts, t.region)
	}
	parts = append(parts, t.variants...)
	return strings.Join(parts, "-")
}

func parseLanguage(s string) (string, error) {
	if len(s) < 2 || len(s) > 8 || !isAlpha(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
	}
	l := lower(s)
	if l == "und" {
		return "", nil
	}
	return l, nil
}

func isScript(s string) bool {
	return len(s) == 4 && isAlpha(s)
}

func isRegion(s string) bool {
	return (len(s) == 2 && isAlpha(s)) || (len(s) == 3 && isDigit(s))
}

// isVariant accepts 5-8 alphanumeric characters, or exactly 4 starting with
// a digit (RFC 5646 variant grammar).
func isVariant(s string) bool {
	if len(s) == 4 {
		return s[0] >= '0' && s[0] <= '9' && isAlphanum(s)
	}
	return len(s) >= 5 && len(s) <= 8 && isAlphanum(s)
}

func canonicalizeVariants(variants *[]string) {
	slices.Sort(*variants)
	*variants = slices.Compact(*variants)
	if len(*variants) == 0 {
		*variants = nil
	}
}

func canonicalScript(s string) string {
	return upper(s[:1]) + lower(s[1:])
}

func canonicalRegion(s string) string {
	return upper(s)
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphanum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// lower and upper are ASCII-only; subtags are guaranteed ASCII by the
// charset checks above.
func lower(s string) string {
	return strings.ToLower(s)
}

func upper(s string) string {
	return strings.ToUpper(s)
}
