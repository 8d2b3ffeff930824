package domain

import "strings"

// Gender is one of the three canonical catalogue labels.
type Gender string

const (
	GenderHim    Gender = "for him"
	GenderHer    Gender = "for her"
	GenderUnisex Gender = "unisex"
)

var (
	himSpellings = map[string]bool{
		"him": true, "forhim": true, "male": true, "males": true, "men": true,
		"mens": true, "man": true, "boy": true, "boys": true, "gents": true,
		"gentleman": true, "gentlemen": true, "m": true,
	}
	herSpellings = map[string]bool{
		"her": true, "forher": true, "female": true, "females": true, "women": true,
		"womens": true, "woman": true, "girl": true, "girls": true, "ladies": true,
		"lady": true, "f": true,
	}
)

// NormalizeGender maps any raw label to a canonical Gender. It never fails:
// unrecognised, empty or ambiguous input is unisex. Canonical values map to
// themselves.
func NormalizeGender(raw string) Gender {
	s := lettersOnly(raw)
	switch {
	case himSpellings[s]:
		return GenderHim
	case herSpellings[s]:
		return GenderHer
	}

	him := strings.Contains(s, "forhim") || strings.Contains(s, "boy")
	her := strings.Contains(s, "forher") || strings.Contains(s, "girl")
	switch {
	case him && !her:
		return GenderHim
	case her && !him:
		return GenderHer
	default:
		return GenderUnisex
	}
}

// Key is the short filter key: "him", "her" or "unisex".
func (g Gender) Key() string {
	switch g {
	case GenderHim:
		return "him"
	case GenderHer:
		return "her"
	default:
		return "unisex"
	}
}

// Label is the display form.
func (g Gender) Label() string {
	switch g {
	case GenderHim:
		return "For Him"
	case GenderHer:
		return "For Her"
	default:
		return "Unisex"
	}
}

func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
