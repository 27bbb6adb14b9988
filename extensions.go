package locale

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/locale/langid"
)

// UnicodeKey identifies a keyword of the unicode locale extension ("u").
// The set of keys is closed (UTS #35, section 3.6); parsing and the setters
// reject anything else.
type UnicodeKey string

const (
	KeyCalendar        UnicodeKey = "ca"
	KeyCurrencyFormat  UnicodeKey = "cf"
	KeyCollation       UnicodeKey = "co"
	KeyCurrency        UnicodeKey = "cu"
	KeyDictionaryBreak UnicodeKey = "dx"
	KeyEmojiStyle      UnicodeKey = "em"
	KeyFirstDay        UnicodeKey = "fw"
	KeyHourCycle       UnicodeKey = "hc"
	KeyColAlternate    UnicodeKey = "ka"
	KeyColBackwards    UnicodeKey = "kb"
	KeyColCaseLevel    UnicodeKey = "kc"
	KeyColCaseFirst    UnicodeKey = "kf"
	KeyColHiragana     UnicodeKey = "kh"
	KeyColNormalize    UnicodeKey = "kk"
	KeyColNumeric      UnicodeKey = "kn"
	KeyColReorder      UnicodeKey = "kr"
	KeyColStrength     UnicodeKey = "ks"
	KeyColVariableTop  UnicodeKey = "kv"
	KeyLineBreak       UnicodeKey = "lb"
	KeyLineBreakWord   UnicodeKey = "lw"
	KeyMeasurement     UnicodeKey = "ms"
	KeyMeasureUnit     UnicodeKey = "mu"
	KeyNumbers         UnicodeKey = "nu"
	KeyRegionOverride  UnicodeKey = "rg"
	KeySubdivision     UnicodeKey = "sd"
	KeySentenceBreak   UnicodeKey = "ss"
	KeyTimezone        UnicodeKey = "tz"
	KeyVariant         UnicodeKey = "va"
)

var unicodeKeys = map[UnicodeKey]struct{}{
	KeyCalendar: {}, KeyCurrencyFormat: {}, KeyCollation: {}, KeyCurrency: {},
	KeyDictionaryBreak: {}, KeyEmojiStyle: {}, KeyFirstDay: {}, KeyHourCycle: {},
	KeyColAlternate: {}, KeyColBackwards: {}, KeyColCaseLevel: {}, KeyColCaseFirst: {},
	KeyColHiragana: {}, KeyColNormalize: {}, KeyColNumeric: {}, KeyColReorder: {},
	KeyColStrength: {}, KeyColVariableTop: {}, KeyLineBreak: {}, KeyLineBreakWord: {},
	KeyMeasurement: {}, KeyMeasureUnit: {}, KeyNumbers: {}, KeyRegionOverride: {},
	KeySubdivision: {}, KeySentenceBreak: {}, KeyTimezone: {}, KeyVariant: {},
}

// ExtensionsMap holds the parsed extension sequences of a locale: the
// unicode ("u") keywords and attributes, the transform ("t") source tag and
// fields, private-use ("x") tokens, and any other single-letter sequences
// kept for forward compatibility. The zero value is an empty map ready for
// use; all writes go through the validating setters, so a map is either
// fully valid or the mutation is rejected.
type ExtensionsMap struct {
	unicodeValues     map[UnicodeKey]string
	unicodeAttributes []string
	transformLanguage *langid.Tag
	transformFields   map[string]string
	other             map[string][]string
	private           []string
}

// SetUnicodeValue inserts or overwrites a unicode keyword. An empty value
// marks the keyword as value-less (a boolean flag like "kn"). Multi-subtag
// values are written joined with "-" ("islamic-civil").
func (m *ExtensionsMap) SetUnicodeValue(key UnicodeKey, value string) error {
	if _, ok := unicodeKeys[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, string(key))
	}
	value = strings.ToLower(value)
	if value != "" {
		for _, part := range strings.Split(value, "-") {
			if !isExtValue(part) {
				return fmt.Errorf("%w: %q", ErrInvalidSubtag, part)
			}
		}
	}
	if m.unicodeValues == nil {
		m.unicodeValues = make(map[UnicodeKey]string)
	}
	m.unicodeValues[key] = value
	return nil
}

// RemoveUnicodeValue deletes a unicode keyword, reporting whether it was set.
func (m *ExtensionsMap) RemoveUnicodeValue(key UnicodeKey) bool {
	if _, ok := m.unicodeValues[key]; !ok {
		return false
	}
	delete(m.unicodeValues, key)
	return true
}

// UnicodeValue returns the value of a unicode keyword. A set but value-less
// keyword yields ("", true).
func (m ExtensionsMap) UnicodeValue(key UnicodeKey) (string, bool) {
	v, ok := m.unicodeValues[key]
	return v, ok
}

// UnicodeKeys returns the set unicode keywords in canonical (sorted) order.
func (m ExtensionsMap) UnicodeKeys() []UnicodeKey {
	var keys []UnicodeKey
	for k := range m.unicodeValues {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SetUnicodeAttribute adds a standalone unicode attribute (3-8 alphanumeric
// characters). Setting an attribute that is already present is a no-op.
func (m *ExtensionsMap) SetUnicodeAttribute(attribute string) error {
	attribute = strings.ToLower(attribute)
	if !isExtValue(attribute) {
		return fmt.Errorf("%w: %q", ErrInvalidSubtag, attribute)
	}
	if !slices.Contains(m.unicodeAttributes, attribute) {
		m.unicodeAttributes = append(m.unicodeAttributes, attribute)
	}
	return nil
}

// RemoveUnicodeAttribute removes an attribute, reporting whether it was set.
func (m *ExtensionsMap) RemoveUnicodeAttribute(attribute string) bool {
	attribute = strings.ToLower(attribute)
	i := slices.Index(m.unicodeAttributes, attribute)
	if i < 0 {
		return false
	}
	m.unicodeAttributes = slices.Delete(m.unicodeAttributes, i, i+1)
	return true
}

// UnicodeAttributes returns the standalone attributes in canonical order.
func (m ExtensionsMap) UnicodeAttributes() []string {
	attrs := slices.Clone(m.unicodeAttributes)
	slices.Sort(attrs)
	return attrs
}

// SetTransformLanguage sets the tag the content was transformed from.
func (m *ExtensionsMap) SetTransformLanguage(tag langid.Tag) {
	t := tag.Clone()
	m.transformLanguage = &t
}

// ClearTransformLanguage unsets the transformed-from tag.
func (m *ExtensionsMap) ClearTransformLanguage() {
	m.transformLanguage = nil
}

// TransformLanguage returns the transformed-from tag, if any.
func (m ExtensionsMap) TransformLanguage() (langid.Tag, bool) {
	if m.transformLanguage == nil {
		return langid.Tag{}, false
	}
	return m.transformLanguage.Clone(), true
}

// SetTransformField inserts or overwrites a transform field. The key is two
// characters, a letter followed by a digit ("m0", "s0"); the value is 3-8
// alphanumeric characters.
func (m *ExtensionsMap) SetTransformField(key, value string) error {
	key = strings.ToLower(key)
	value = strings.ToLower(value)
	if !isTransformFieldKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidSubtag, key)
	}
	if !isExtValue(value) {
		return fmt.Errorf("%w: %q", ErrInvalidSubtag, value)
	}
	if m.transformFields == nil {
		m.transformFields = make(map[string]string)
	}
	m.transformFields[key] = value
	return nil
}

// RemoveTransformField deletes a transform field, reporting whether it was set.
func (m *ExtensionsMap) RemoveTransformField(key string) bool {
	key = strings.ToLower(key)
	if _, ok := m.transformFields[key]; !ok {
		return false
	}
	delete(m.transformFields, key)
	return true
}

// TransformField returns the value of a transform field.
func (m ExtensionsMap) TransformField(key string) (string, bool) {
	v, ok := m.transformFields[strings.ToLower(key)]
	return v, ok
}

// TransformKeys returns the set transform field keys in canonical order.
func (m ExtensionsMap) TransformKeys() []string {
	var keys []string
	for k := range m.transformFields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SetPrivateValue adds a private-use token (1-8 alphanumeric characters).
// Duplicates are rejected.
func (m *ExtensionsMap) SetPrivateValue(token string) error {
	token = strings.ToLower(token)
	if len(token) < 1 || len(token) > 8 || !isAlphanumStr(token) {
		return fmt.Errorf("%w: %q", ErrInvalidSubtag, token)
	}
	if slices.Contains(m.private, token) {
		return fmt.Errorf("%w: %q", ErrDuplicatePrivate, token)
	}
	m.private = append(m.private, token)
	return nil
}

// RemovePrivateValue removes a private-use token, reporting whether it was set.
func (m *ExtensionsMap) RemovePrivateValue(token string) bool {
	token = strings.ToLower(token)
	i := slices.Index(m.private, token)
	if i < 0 {
		return false
	}
	m.private = slices.Delete(m.private, i, i+1)
	return true
}

// PrivateValues returns the private-use tokens in canonical order.
func (m ExtensionsMap) PrivateValues() []string {
	tokens := slices.Clone(m.private)
	slices.Sort(tokens)
	return tokens
}

// HasPrivate reports whether the private-use sequence is non-empty. Locales
// carrying private-use tokens never match anything (see Locale.Matches).
func (m ExtensionsMap) HasPrivate() bool {
	return len(m.private) > 0
}

// OtherValues returns the value subtags of an unrecognized single-letter
// extension, in input order, or nil when the letter is not present.
func (m ExtensionsMap) OtherValues(letter string) []string {
	return slices.Clone(m.other[strings.ToLower(letter)])
}

// IsEmpty reports whether no extension sequence is present.
func (m ExtensionsMap) IsEmpty() bool {
	return len(m.unicodeValues) == 0 &&
		len(m.unicodeAttributes) == 0 &&
		m.transformLanguage == nil &&
		len(m.transformFields) == 0 &&
		len(m.other) == 0 &&
		len(m.private) == 0
}

// Equal reports structural equality, independent of how each map was
// populated (parsed or built through the setters).
func (m ExtensionsMap) Equal(other ExtensionsMap) bool {
	if !maps.Equal(m.unicodeValues, other.unicodeValues) {
		return false
	}
	if !slices.Equal(m.UnicodeAttributes(), other.UnicodeAttributes()) {
		return false
	}
	a, aok := m.TransformLanguage()
	b, bok := other.TransformLanguage()
	if aok != bok || !a.Equal(b) {
		return false
	}
	if !maps.Equal(m.transformFields, other.transformFields) {
		return false
	}
	if !maps.EqualFunc(m.other, other.other, slices.Equal) {
		return false
	}
	return slices.Equal(m.PrivateValues(), other.PrivateValues())
}

// Clone returns a deep copy of the map.
func (m ExtensionsMap) Clone() ExtensionsMap {
	c := ExtensionsMap{
		unicodeValues:     maps.Clone(m.unicodeValues),
		unicodeAttributes: slices.Clone(m.unicodeAttributes),
		transformFields:   maps.Clone(m.transformFields),
		private:           slices.Clone(m.private),
	}
	if m.transformLanguage != nil {
		t := m.transformLanguage.Clone()
		c.transformLanguage = &t
	}
	if m.other != nil {
		c.other = make(map[string][]string, len(m.other))
		for letter, values := range m.other {
			c.other[letter] = slices.Clone(values)
		}
	}
	return c
}

// String serializes the map in canonical order: "t" first, then "u", then
// remaining letters ascending, then "x" last. An empty map serializes to the
// empty string.
func (m ExtensionsMap) String() string {
	var parts []string

	if m.transformLanguage != nil || len(m.transformFields) > 0 {
		parts = append(parts, "t")
		if m.transformLanguage != nil {
			parts = append(parts, m.transformLanguage.String())
		}
		for _, key := range m.TransformKeys() {
			parts = append(parts, key, m.transformFields[key])
		}
	}

	if len(m.unicodeValues) > 0 || len(m.unicodeAttributes) > 0 {
		parts = append(parts, "u")
		parts = append(parts, m.UnicodeAttributes()...)
		for _, key := range m.UnicodeKeys() {
			parts = append(parts, string(key))
			if value := m.unicodeValues[key]; value != "" {
				parts = append(parts, value)
			}
		}
	}

	var letters []string
	for k := range m.other {
		letters = append(letters, k)
	}
	slices.Sort(letters)
	for _, letter := range letters {
		parts = append(parts, letter)
		parts = append(parts, m.other[letter]...)
	}

	if len(m.private) > 0 {
		parts = append(parts, "x")
		parts = append(parts, m.PrivateValues()...)
	}

	return strings.Join(parts, "-")
}

// isExtValue accepts a 3-8 alphanumeric extension value subtag.
func isExtValue(s string) bool {
	return len(s) >= 3 && len(s) <= 8 && isAlphanumStr(s)
}

// isTransformFieldKey accepts an RFC 6497 tfield key: a letter then a digit.
func isTransformFieldKey(s string) bool {
	return len(s) == 2 &&
		((s[0] >= 'a' && s[0] <= 'z') || (s[0] >= 'A' && s[0] <= 'Z')) &&
		s[1] >= '0' && s[1] <= '9'
}

func isAlphanumStr(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
