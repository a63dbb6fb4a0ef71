package cleaner

import "regexp"

type abbreviation struct {
	re          *regexp.Regexp
	replacement string
}

// abbreviations maps dotted English title and rank abbreviations to their
// spoken forms. Matching is case-insensitive and anchored at a word
// boundary, so "Dr." expands while "undr." does not.
var abbreviations = compileAbbreviations([][2]string{
	{"mrs", "misess"},
	{"mr", "mister"},
	{"dr", "doctor"},
	{"st", "saint"},
	{"co", "company"},
	{"jr", "junior"},
	{"maj", "major"},
	{"gen", "general"},
	{"drs", "doctors"},
	{"rev", "reverend"},
	{"lt", "lieutenant"},
	{"hon", "honorable"},
	{"sgt", "sergeant"},
	{"capt", "captain"},
	{"esq", "esquire"},
	{"ltd", "limited"},
	{"col", "colonel"},
	{"ft", "fort"},
})

func compileAbbreviations(pairs [][2]string) []abbreviation {
	out := make([]abbreviation, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, abbreviation{
			re:          regexp.MustCompile(`(?i)\b` + p[0] + `\.`),
			replacement: p[1],
		})
	}
	return out
}

// ExpandAbbreviations replaces dotted abbreviations with their spoken forms.
func ExpandAbbreviations(text string) string {
	for _, a := range abbreviations {
		text = a.re.ReplaceAllString(text, a.replacement)
	}
	return text
}
