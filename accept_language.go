package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// acceptedRange is one parsed Accept-Language entry with its quality value.
type acceptedRange struct {
	locale   Locale
	quality  float64
	wildcard bool
}

// MatchAcceptLanguage parses an Accept-Language header and returns the entry
// of available that best satisfies it. Header entries act as ranges ("en"
// accepts "en-US"), are ranked by quality value, and "*" accepts anything.
// Malformed entries are skipped rather than failing the negotiation; header
// content is untrusted and negotiation is lenient by convention. When
// nothing matches, the first available locale is returned as the fallback.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en" (highest quality match)
func MatchAcceptLanguage(header string, available []Locale) Locale {
	if len(available) == 0 {
		return Locale{}
	}

	for _, r := range parseAcceptLanguage(header) {
		for _, candidate := range available {
			if r.wildcard || r.locale.Matches(candidate, true, false) {
				return candidate
			}
		}
	}

	return available[0]
}

// parseAcceptLanguage parses the header into locale ranges sorted by quality,
// highest first. Entries that fail to parse as locale tags are dropped.
func parseAcceptLanguage(header string) []acceptedRange {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var ranges []acceptedRange

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		tagPart, qPart, hasQuality := strings.Cut(part, ";")
		tagPart = strings.TrimSpace(tagPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)

			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if tagPart == "*" {
			ranges = append(ranges, acceptedRange{quality: quality, wildcard: true})
			continue
		}

		loc, err := Parse(tagPart)
		if err != nil {
			continue
		}
		ranges = append(ranges, acceptedRange{locale: loc, quality: quality})
	}

	slices.SortStableFunc(ranges, func(a, b acceptedRange) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return ranges
}
