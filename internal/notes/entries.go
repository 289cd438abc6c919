package notes

import "strings"

// Entries returns the substantive lines of a ledger: trimmed, without the
// header and without the "- " bullet.
func Entries(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, headerMark) {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, strings.TrimSpace(EntryPrefix)))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Render builds ledger text from entries in order.
func Render(entries []string) string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString("\n")
		sb.WriteString(EntryPrefix)
		sb.WriteString(e)
	}
	return sb.String()
}
