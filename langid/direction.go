package langid

// Direction is the character writing direction implied by a tag.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// Scripts written right to left. Checked first because an explicit script
// overrides whatever the language usually implies (e.g. az-Arab vs az-Latn).
var rtlScripts = map[string]struct{}{
	"Adlm": {},
	"Arab": {},
	"Hebr": {},
	"Mand": {},
	"Nkoo": {},
	"Rohg": {},
	"Samr": {},
	"Syrc": {},
	"Thaa": {},
	"Yezi": {},
}

// Languages whose default script is right to left, used when the tag does
// not carry an explicit script subtag.
var rtlLanguages = map[string]struct{}{
	"ar":  {},
	"ckb": {},
	"dv":  {},
	"fa":  {},
	"he":  {},
	"ps":  {},
	"sd":  {},
	"ug":  {},
	"ur":  {},
	"yi":  {},
}

// CharacterDirection returns the writing direction derived from the script
// subtag, falling back to the language's default script when no script is
// present. It never fails; unknown tags are LTR.
func (t Tag) CharacterDirection() Direction {
	if t.script != "" {
		if _, ok := rtlScripts[t.script]; ok {
			return DirectionRTL
		}
		return DirectionLTR
	}
	if _, ok := rtlLanguages[t.language]; ok {
		return DirectionRTL
	}
	return DirectionLTR
}
