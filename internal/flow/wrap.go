package flow

import (
	"strings"

	"github.com/jonathan/cv-compiler/internal/fonts"
)

// Line is one wrapped line of text with its measured width in points.
type Line struct {
	Text  string
	Width float64
}

// WrapText breaks text into lines no wider than maxWidth using greedy word
// wrapping. Whitespace is normalized to single spaces. A single word wider
// than maxWidth is broken between runes so no line ever overflows the frame.
// Empty or whitespace-only text yields no lines.
func WrapText(m *fonts.Metrics, text string, size, maxWidth float64) []Line {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []Line{{Text: strings.Join(words, " "), Width: m.StringWidth(strings.Join(words, " "), size)}}
	}

	spaceW := m.Advance(' ') * size

	var lines []Line
	var cur []string
	var curW float64

	flush := func() {
		if len(cur) == 0 {
			return
		}
		lines = append(lines, Line{Text: strings.Join(cur, " "), Width: curW})
		cur = cur[:0]
		curW = 0
	}

	for _, word := range words {
		wordW := m.StringWidth(word, size)

		if wordW > maxWidth {
			flush()
			for _, part := range breakWord(m, word, size, maxWidth) {
				lines = append(lines, part)
			}
			// The final fragment starts the next line so following words can
			// join it.
			if n := len(lines); n > 0 {
				last := lines[n-1]
				lines = lines[:n-1]
				cur = append(cur, last.Text)
				curW = last.Width
			}
			continue
		}

		if len(cur) == 0 {
			cur = append(cur, word)
			curW = wordW
			continue
		}
		if curW+spaceW+wordW <= maxWidth {
			cur = append(cur, word)
			curW += spaceW + wordW
		} else {
			flush()
			cur = append(cur, word)
			curW = wordW
		}
	}
	flush()

	return lines
}

// breakWord splits a single over-wide word into rune-boundary fragments that
// each fit within maxWidth.
func breakWord(m *fonts.Metrics, word string, size, maxWidth float64) []Line {
	var parts []Line
	var sb strings.Builder
	var w float64

	for _, r := range word {
		rw := m.Advance(r) * size
		if sb.Len() > 0 && w+rw > maxWidth {
			parts = append(parts, Line{Text: sb.String(), Width: w})
			sb.Reset()
			w = 0
		}
		sb.WriteRune(r)
		w += rw
	}
	if sb.Len() > 0 {
		parts = append(parts, Line{Text: sb.String(), Width: w})
	}
	return parts
}
