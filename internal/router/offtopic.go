package router

import (
	"strings"
	"unicode/utf8"
)

// IsOffTopic reports whether text is clearly outside the organization's scope.
// It errs toward letting ambiguous or short input through.
func IsOffTopic(text string) bool {
	q := strings.ToLower(strings.TrimSpace(text))

	for _, g := range greetings {
		if q == g || strings.HasPrefix(q, g+" ") {
			return false
		}
	}

	if utf8.RuneCountInString(q) <= shortMessageMaxRunes && !strings.Contains(q, "?") {
		return false
	}

	if containsAny(q, orgKeywords) {
		return false
	}

	if containsAny(q, offTopicPatterns) {
		return true
	}

	if len(strings.Fields(q)) <= shortTechMaxWords && containsAny(q, singleWordTech) {
		return true
	}

	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
