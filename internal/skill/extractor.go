package skill

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type category struct {
	name     Category
	keywords []string
}

// Extractor maps free text to a team category. It holds no state besides the
// keyword table, so results are recomputed on every call.
type Extractor struct {
	categories []category
}

// NewExtractor builds an Extractor. Categories are checked in the fixed
// order tech, design, pr.
func NewExtractor(m Map) *Extractor {
	pick := func(custom, def []string) []string {
		if len(custom) == 0 {
			return def
		}
		out := make([]string, 0, len(custom))
		for _, k := range custom {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				out = append(out, k)
			}
		}
		return out
	}
	return &Extractor{categories: []category{
		{CategoryTech, pick(m.Tech, DefaultMap.Tech)},
		{CategoryDesign, pick(m.Design, DefaultMap.Design)},
		{CategoryPR, pick(m.PR, DefaultMap.PR)},
	}}
}

// Detect returns the first category with a keyword present in text.
func (e *Extractor) Detect(text string) (Category, bool) {
	t := strings.ToLower(text)
	if strings.TrimSpace(t) == "" {
		return CategoryNone, false
	}
	for _, c := range e.categories {
		for _, k := range c.keywords {
			if containsKeyword(t, k) {
				return c.name, true
			}
		}
	}
	return CategoryNone, false
}

// Provenance looks for skill evidence in the user's recent messages first and
// in the stored summary second.
func (e *Extractor) Provenance(memoryUserText, summaryText string) (Origin, Category) {
	if c, ok := e.Detect(memoryUserText); ok {
		return OriginMemory, c
	}
	if c, ok := e.Detect(summaryText); ok {
		return OriginSummary, c
	}
	return OriginNone, CategoryNone
}

// containsKeyword reports whether kw occurs in s starting at a word
// boundary. The right edge is open, so "poster" matches "posters" while
// "ui" does not match "build".
func containsKeyword(s, kw string) bool {
	if kw == "" {
		return false
	}
	for start := 0; start <= len(s)-len(kw); {
		i := strings.Index(s[start:], kw)
		if i < 0 {
			return false
		}
		i += start
		if isBoundaryBefore(s, i) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		start = i + size
	}
	return false
}

func isBoundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
