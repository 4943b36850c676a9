package textutil

import "strings"

// StripANSI removes escape sequences and invalid UTF-8 bytes from s.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] == esc {
			i = scanEscape(s, i)
			continue
		}

		end := len(s)
		if j := strings.IndexByte(s[i:], esc); j >= 0 {
			end = i + j
		}
		b.WriteString(strings.ToValidUTF8(s[i:end], ""))
		i = end
	}

	return b.String()
}

// VisibleWidth returns the number of terminal cells s occupies.
// Escape sequences and newlines are zero width; tabs count as three cells.
func VisibleWidth(s string) int {
	w := 0
	tokenize(s, func(t token) {
		w += t.width
	})
	return w
}

// PadRight appends spaces until s is width cells wide. It never truncates.
func PadRight(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Truncate shortens s so that it, with tail appended, fits in width cells.
// Only the first line of s is kept: anything from the first newline on
// counts as cut. s is returned unchanged when it is a single line that
// already fits. Escape sequences before the cut are kept, and styling or a
// hyperlink left open is closed before tail. A tail wider than width is
// dropped.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}

	first, _, multiline := strings.Cut(s, "\n")
	if !multiline && VisibleWidth(s) <= width {
		return s
	}
	s = strings.TrimSuffix(first, "\r")

	tailW := VisibleWidth(tail)
	if tailW > width {
		tail, tailW = "", 0
	}
	limit := width - tailW

	var (
		b     strings.Builder
		style styleState
		w     int
		done  bool
	)
	tokenize(s, func(t token) {
		if done {
			return
		}
		if t.kind == tokenEscape {
			style.apply(t.text)
			b.WriteString(t.text)
			return
		}
		if w+t.width > limit {
			done = true
			return
		}
		b.WriteString(t.text)
		w += t.width
	})

	b.WriteString(style.closing())
	b.WriteString(tail)
	return b.String()
}
