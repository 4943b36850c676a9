package textutil

import "strings"

// segment is a run of tokens wrapped as a unit: either spaces or a word.
// Escape sequences belong to the word that follows them.
type segment struct {
	space  bool
	tokens []token
	width  int
}

// Wrap breaks s into lines no wider than width cells.
//
// Lines break at spaces where possible; words wider than width are split
// at grapheme boundaries. Explicit newlines are kept. Spaces at a wrap
// point are dropped, as is trailing whitespace and indentation wider than
// width. SGR styling and OSC 8 hyperlinks active at a break are closed at
// the end of the line and reopened on the next one.
// A width below 1 is treated as 1. Empty input yields a single empty line.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	w := &wrapper{width: width}
	var cur *segment
	emit := func() {
		if cur != nil {
			w.add(*cur)
			cur = nil
		}
	}

	tokenize(s, func(t token) {
		switch t.kind {
		case tokenNewline:
			emit()
			w.hardBreak()
			return
		case tokenSpace:
			if cur == nil || !cur.space {
				emit()
				cur = &segment{space: true}
			}
		default:
			if cur == nil || cur.space {
				emit()
				cur = &segment{}
			}
		}
		cur.tokens = append(cur.tokens, t)
		cur.width += t.width
	})
	emit()
	w.flush()

	return w.lines
}

type wrapper struct {
	width int
	lines []string

	body    strings.Builder
	opening string // styling reopened at the start of the current line
	w       int
	pending []token // spaces not yet committed to the line
	pendW   int
	wrapped bool // current line is a continuation of a wrapped line
	// breakDue is set when spaces overflowed the line. The break happens
	// only if another visible word follows.
	breakDue bool
	style    styleState
}

func (w *wrapper) add(seg segment) {
	if seg.space {
		if w.breakDue || (w.wrapped && w.w == 0) {
			return
		}
		if w.w+w.pendW+seg.width > w.width {
			w.pending = w.pending[:0]
			w.pendW = 0
			w.breakDue = true
			return
		}
		w.pending = append(w.pending, seg.tokens...)
		w.pendW += seg.width
		return
	}

	if w.breakDue && seg.width > 0 {
		w.breakDue = false
		w.softBreak()
	}

	switch {
	case seg.width == 0:
		w.write(seg.tokens)
	case w.w+w.pendW+seg.width <= w.width:
		w.commitPending()
		w.write(seg.tokens)
	case seg.width <= w.width:
		w.softBreak()
		w.write(seg.tokens)
	default:
		w.breakWord(seg.tokens)
	}
}

// breakWord splits an overlong word across as many lines as it needs.
func (w *wrapper) breakWord(tokens []token) {
	if w.w+w.pendW < w.width {
		w.commitPending()
	} else {
		w.softBreak()
	}

	for _, t := range tokens {
		if t.width > 0 && w.w > 0 && w.w+t.width > w.width {
			w.softBreak()
		}
		w.write([]token{t})
	}
}

func (w *wrapper) commitPending() {
	w.write(w.pending)
	w.pending = w.pending[:0]
	w.pendW = 0
}

func (w *wrapper) write(tokens []token) {
	for _, t := range tokens {
		if t.kind == tokenEscape {
			w.style.apply(t.text)
		}
		w.body.WriteString(t.text)
		w.w += t.width
	}
}

// softBreak ends the current line because it is full. A line with no
// visible content is kept open; only its pending spaces are dropped.
func (w *wrapper) softBreak() {
	if w.w > 0 {
		w.flush()
	} else {
		w.pending = w.pending[:0]
		w.pendW = 0
	}
	w.wrapped = true
}

// hardBreak ends the current line at an explicit newline.
func (w *wrapper) hardBreak() {
	w.flush()
	w.wrapped = false
}

func (w *wrapper) flush() {
	line := w.body.String()
	if line != "" {
		line = w.opening + line + w.style.closing()
	}
	w.lines = append(w.lines, line)

	w.body.Reset()
	w.opening = w.style.prefix()
	w.breakDue = false
	w.w = 0
	w.pending = w.pending[:0]
	w.pendW = 0
}
