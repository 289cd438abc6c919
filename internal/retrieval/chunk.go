package retrieval

import (
	"strings"
	"unicode/utf8"
)

// Chunk splits text into passages of at most size runes. Paragraphs (blank
// line separated) are packed together while they fit; a paragraph longer
// than size is cut on word boundaries with overlap runes carried into the
// next piece.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var (
		chunks []string
		cur    strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			chunks = append(chunks, s)
		}
		cur.Reset()
	}

	for _, para := range splitParagraphs(text) {
		if utf8.RuneCountInString(para) > size {
			flush()
			chunks = append(chunks, splitLong(para, size, overlap)...)
			continue
		}
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+2+utf8.RuneCountInString(para) > size {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(para)
	}
	flush()
	return chunks
}

func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitLong(para string, size, overlap int) []string {
	words := strings.Fields(para)
	var (
		out []string
		cur []string
		n   int
	)
	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		if n > 0 && n+1+wl > size {
			out = append(out, strings.Join(cur, " "))
			cur, n = tail(cur, overlap)
		}
		if n > 0 {
			n++
		}
		cur = append(cur, w)
		n += wl
	}
	if len(cur) > 0 {
		out = append(out, strings.Join(cur, " "))
	}
	return out
}

// tail keeps the last words of cur totalling at most overlap runes.
func tail(cur []string, overlap int) ([]string, int) {
	if overlap == 0 {
		return nil, 0
	}
	n := 0
	i := len(cur)
	for i > 0 {
		wl := utf8.RuneCountInString(cur[i-1])
		if n+wl+1 > overlap {
			break
		}
		n += wl + 1
		i--
	}
	kept := append([]string(nil), cur[i:]...)
	if len(kept) == 0 {
		return nil, 0
	}
	return kept, n - 1
}
