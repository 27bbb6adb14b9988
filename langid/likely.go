package langid

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed likely_subtags.yaml
var likelySubtagsYAML []byte

type likelyTable struct {
	Language       map[string]string `yaml:"language"`
	LanguageScript map[string]string `yaml:"language_script"`
	LanguageRegion map[string]string `yaml:"language_region"`
	Script         map[string]string `yaml:"script"`
	Region         map[string]string `yaml:"region"`
}

var likelySubtags = sync.OnceValue(func() *likelyTable {
	var table likelyTable
	if err := yaml.Unmarshal(likelySubtagsYAML, &table); err != nil {
		panic(fmt.Sprintf("langid: embedded likely-subtags table: %v", err))
	}
	return &table
})

// AddLikelySubtags fills in the most likely script and region for the tag
// (CLDR "maximize"). Variants are untouched. Reports whether the tag changed;
// tags not covered by the table are left as they are.
func (t *Tag) AddLikelySubtags() bool {
	if t.language != "" && t.script != "" && t.region != "" {
		return false
	}
	full, ok := t.lookupLikely()
	if !ok {
		return false
	}
	changed := false
	if t.language == "" && full.language != "" {
		t.language = full.language
		changed = true
	}
	if t.script == "" && full.script != "" {
		t.script = full.script
		changed = true
	}
	if t.region == "" && full.region != "" {
		t.region = full.region
		changed = true
	}
	return changed
}

// RemoveLikelySubtags reduces the tag to its shortest form that maximizes
// back to the same full tag (CLDR "minimize"), trying language-only, then
// language-region, then language-script. Variants are untouched. Reports
// whether the tag changed.
func (t *Tag) RemoveLikelySubtags() bool {
	max := t.Clone()
	max.AddLikelySubtags()

	candidates := []Tag{
		{language: max.language},
		{language: max.language, region: max.region},
		{language: max.language, script: max.script},
	}
	result := max
	for _, candidate := range candidates {
		trial := candidate
		trial.AddLikelySubtags()
		if trial.language == max.language && trial.script == max.script && trial.region == max.region {
			result = candidate
			break
		}
	}

	changed := t.language != result.language || t.script != result.script || t.region != result.region
	result.variants = slices.Clone(t.variants)
	*t = result
	return changed
}

// lookupLikely finds the maximized form for the tag's partial subtags,
// preferring the most specific table first.
func (t Tag) lookupLikely() (Tag, bool) {
	table := likelySubtags()

	if t.language != "" {
		if t.script != "" {
			if full, ok := table.LanguageScript[t.language+"-"+t.script]; ok {
				return MustParse(full), true
			}
		}
		if t.region != "" {
			if full, ok := table.LanguageRegion[t.language+"-"+t.region]; ok {
				return MustParse(full), true
			}
		}
		if full, ok := table.Language[t.language]; ok {
			return MustParse(full), true
		}
		return Tag{}, false
	}
	if t.script != "" {
		if full, ok := table.Script[t.script]; ok {
			return MustParse(full), true
		}
	}
	if t.region != "" {
		if full, ok := table.Region[t.region]; ok {
			return MustParse(full), true
		}
	}
	if t.script == "" && t.region == "" {
		if full, ok := table.Language["und"]; ok {
			return MustParse(full), true
		}
	}
	return Tag{}, false
}
