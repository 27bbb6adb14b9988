package locale

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/locale/langid"
)

// parseExtensions parses the extension tail of a locale tag (everything
// after the language identifier) into an ExtensionsMap. The tail is a run of
// "-"-separated segments where each single-letter segment opens a new
// extension sequence. Parsing is all-or-nothing: any malformed segment fails
// the whole tail.
func parseExtensions(tail string) (ExtensionsMap, error) {
	var m ExtensionsMap
	if tail == "" {
		return m, nil
	}

	segments := strings.Split(tail, "-")
	seen := make(map[string]bool, 4)

	for i := 0; i < len(segments); {
		letter := segments[i]
		if len(letter) != 1 || !isAlphanumStr(letter) || (letter[0] >= '0' && letter[0] <= '9') {
			return ExtensionsMap{}, fmt.Errorf("%w: expected extension letter, got %q", ErrInvalidSubtag, letter)
		}
		letter = strings.ToLower(letter)
		if seen[letter] {
			return ExtensionsMap{}, fmt.Errorf("%w: %q", ErrDuplicateExtension, letter)
		}
		seen[letter] = true
		i++

		// Collect this sequence's segments. Any single-letter segment starts
		// the next sequence, except inside "x" where only the known extension
		// letters terminate: 1-character private-use tokens are legal.
		start := i
		for i < len(segments) && !startsNewSequence(segments[i], letter == "x") {
			i++
		}
		run := segments[start:i]

		var err error
		switch letter {
		case "u":
			err = m.parseUnicode(run)
		case "t":
			err = m.parseTransform(run)
		case "x":
			err = m.parsePrivate(run)
		default:
			err = m.parseOther(letter, run)
		}
		if err != nil {
			return ExtensionsMap{}, err
		}
	}

	return m, nil
}

func startsNewSequence(segment string, insidePrivate bool) bool {
	if len(segment) != 1 {
		return false
	}
	c := segment[0] | 0x20
	if c < 'a' || c > 'z' {
		return false
	}
	if insidePrivate {
		return c == 'u' || c == 't' || c == 'x'
	}
	return true
}

func (m *ExtensionsMap) parseUnicode(segments []string) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty unicode extension", ErrUnexpectedEnd)
	}

	var current UnicodeKey
	haveKeyword := false

	for _, segment := range segments {
		segment = strings.ToLower(segment)
		switch {
		case len(segment) == 2 && isAlphanumStr(segment):
			key := UnicodeKey(segment)
			if _, dup := m.unicodeValues[key]; dup {
				return fmt.Errorf("%w: %q", ErrDuplicateKeyword, segment)
			}
			if err := m.SetUnicodeValue(key, ""); err != nil {
				return err
			}
			current, haveKeyword = key, true
		case isExtValue(segment):
			if haveKeyword {
				value := m.unicodeValues[current]
				if value == "" {
					value = segment
				} else {
					value += "-" + segment
				}
				m.unicodeValues[current] = value
				continue
			}
			if !m.setAttributeUnique(segment) {
				return fmt.Errorf("%w: %q", ErrDuplicateAttribute, segment)
			}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidSubtag, segment)
		}
	}
	return nil
}

// setAttributeUnique adds the attribute and reports false when it already
// exists. The segment has been charset-checked by the caller.
func (m *ExtensionsMap) setAttributeUnique(attribute string) bool {
	for _, a := range m.unicodeAttributes {
		if a == attribute {
			return false
		}
	}
	m.unicodeAttributes = append(m.unicodeAttributes, attribute)
	return true
}

func (m *ExtensionsMap) parseTransform(segments []string) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty transform extension", ErrUnexpectedEnd)
	}

	// A leading tfield key means the sequence has no transformed-from tag;
	// otherwise the longest valid language identifier prefix is the tag.
	if !isTransformFieldKey(segments[0]) {
		tag, rest, err := langid.ParsePrefix(strings.Join(segments, "-"))
		if err != nil {
			return err
		}
		m.transformLanguage = &tag
		if rest == "" {
			return nil
		}
		segments = strings.Split(rest, "-")
	}

	for i := 0; i < len(segments); i += 2 {
		key := strings.ToLower(segments[i])
		if !isTransformFieldKey(key) {
			return fmt.Errorf("%w: %q", ErrInvalidSubtag, segments[i])
		}
		if _, dup := m.transformFields[key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKeyword, key)
		}
		if i+1 >= len(segments) {
			return fmt.Errorf("%w: transform field %q has no value", ErrUnexpectedEnd, key)
		}
		if err := m.SetTransformField(key, segments[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (m *ExtensionsMap) parsePrivate(segments []string) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty private-use extension", ErrUnexpectedEnd)
	}
	for _, segment := range segments {
		if err := m.SetPrivateValue(segment); err != nil {
			return err
		}
	}
	return nil
}

func (m *ExtensionsMap) parseOther(letter string, segments []string) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty %q extension", ErrUnexpectedEnd, letter)
	}
	values := make([]string, 0, len(segments))
	for _, segment := range segments {
		if len(segment) < 2 || len(segment) > 8 || !isAlphanumStr(segment) {
			return fmt.Errorf("%w: %q", ErrInvalidSubtag, segment)
		}
		values = append(values, strings.ToLower(segment))
	}
	if m.other == nil {
		m.other = make(map[string][]string)
	}
	m.other[letter] = values
	return nil
}
