// Package langid implements BCP 47 language identifiers: the language,
// script, region, and variant subtags of a locale tag, without extensions.
//
// A Tag is a plain value. It is parsed from text, built from parts, mutated
// field by field, compared with optional wildcard semantics, and serialized
// back to its canonical form. The zero Tag is valid and serializes as "und".
//
// # Basic Usage
//
//	tag, err := langid.Parse("de-Latn-AT-macos")
//	if err != nil {
//		// malformed identifier
//	}
//
//	tag.Language() // "de"
//	tag.Script()   // "Latn"
//	tag.Region()   // "AT"
//	tag.String()   // "de-Latn-AT-macos"
//
// Input casing and the "_" separator are tolerated; output is always the
// canonical form (lowercase language, titlecase script, uppercase region,
// lowercase sorted variants, "-" separated).
//
// # Matching
//
// Matches compares two tags field by field. When a side is marked as a
// range, its unset fields act as wildcards:
//
//	en := langid.MustParse("en")
//	enUS := langid.MustParse("en-US")
//
//	en.Matches(enUS, false, false) // false
//	en.Matches(enUS, true, false)  // true, "en" used as a range
//
// # Likely Subtags
//
// AddLikelySubtags and RemoveLikelySubtags implement the CLDR likely-subtags
// algorithm over an embedded table covering common locales:
//
//	tag := langid.MustParse("zh-TW")
//	tag.AddLikelySubtags()  // tag is now "zh-Hant-TW"
//	tag.RemoveLikelySubtags() // back to "zh-TW"
package langid
