// Package locale parses, canonicalizes, compares, and mutates IETF BCP 47
// locale identifiers, including their extension sequences: the unicode
// locale extension ("u"), the transform extension ("t"), the private-use
// extension ("x"), and arbitrary single-letter extensions.
//
// The language/script/region/variants head of a tag is handled by the
// companion langid package; this package adds the extension data model and
// the locale-level matching rules on top of it.
//
// # Parsing and Canonicalization
//
// Parse is all-or-nothing: a Locale is either fully valid or the parse
// fails, never partially applied. Serialization is canonical, so parsing and
// printing a tag normalizes it:
//
//	loc, err := locale.Parse("en-x-foo-u-hc-h12")
//	if err != nil {
//		// malformed tag
//	}
//	loc.String() // "en-u-hc-h12-x-foo"
//
// The same round trip is available in one call:
//
//	out, err := locale.Canonicalize("EN_us-U-HC-H12")
//	// out == "en-US-u-hc-h12"
//
// Extension sequences always serialize "t" first, then "u", then remaining
// letters in ascending order, then "x" last, regardless of input order.
//
// # Programmatic Building
//
// Locales are built from parts, or mutated field by field; the extension map
// is a public field with validating operations of its own:
//
//	loc, _ := locale.FromParts("en", "", "US", nil, nil)
//	_ = loc.Extensions.SetUnicodeValue(locale.KeyHourCycle, "h24")
//	loc.String() // "en-US-u-hc-h24"
//
// Every setter validates against the same grammar the parser uses, so a
// Locale built programmatically and one parsed from its serialization are
// structurally equal.
//
// # Matching
//
// Matches compares two locales, optionally treating either side as a range
// whose unset fields are wildcards:
//
//	en := locale.MustParse("en")
//	enUS := locale.MustParse("en-US-u-hc-h24")
//
//	en.Matches(enUS, true, false)  // true: "en" used as a range
//	en.Matches(enUS, false, false) // false
//
// Unicode and transform extensions never affect matching. Private-use
// extensions block it entirely: a locale carrying "x" tokens matches
// nothing, since private-use semantics are application-defined.
//
// # Accept-Language Negotiation
//
// MatchAcceptLanguage picks the best of the available locales for an HTTP
// Accept-Language header, using the same range-matching rules:
//
//	available := []locale.Locale{locale.MustParse("pl"), locale.MustParse("en-US")}
//	best := locale.MatchAcceptLanguage("en,pl;q=0.8", available) // en-US
//
// # Concurrency
//
// Locale and ExtensionsMap are plain values with no internal
// synchronization. Concurrent reads are safe; mutation requires the usual
// exclusive access.
package locale
