package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	esc = 0x1b

	// tabWidth is the number of cells a tab expands to.
	tabWidth = 3

	sgrReset = "\x1b[0m"

	hyperlinkClose = "\x1b]8;;\x07"
)

// cellWidth fixes ambiguous-width characters at one cell regardless of locale.
var cellWidth = &runewidth.Condition{StrictEmojiNeutral: true}

type tokenKind uint8

const (
	tokenText tokenKind = iota
	tokenSpace
	tokenEscape
	tokenNewline
)

// token is one grapheme cluster or one escape sequence.
type token struct {
	kind  tokenKind
	text  string
	width int
}

// scanEscape returns the index just past the escape sequence starting at s[i].
func scanEscape(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}

	switch s[i+1] {
	case '[':
		// CSI: ESC [ params final-byte
		i += 2
		for i < len(s) {
			c := s[i]
			i++
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
		return i
	case ']', 'P', '_', '^':
		// OSC, DCS, APC, PM: terminated by BEL or ST (ESC \)
		i += 2
		for i < len(s) {
			c := s[i]
			i++
			if c == 0x07 {
				break
			}
			if c == esc && i < len(s) && s[i] == '\\' {
				i++
				break
			}
		}
		return i
	default:
		// Generic 2-byte escape.
		return i + 2
	}
}

// tokenize calls fn for every escape sequence and grapheme cluster in s.
// Invalid UTF-8 bytes are dropped.
func tokenize(s string, fn func(token)) {
	for i := 0; i < len(s); {
		if s[i] == esc {
			j := scanEscape(s, i)
			fn(token{kind: tokenEscape, text: s[i:j]})
			i = j
			continue
		}

		end := len(s)
		if j := strings.IndexByte(s[i:], esc); j >= 0 {
			end = i + j
		}

		run := strings.ToValidUTF8(s[i:end], "")
		state := -1
		for len(run) > 0 {
			var cluster string
			cluster, run, _, state = uniseg.FirstGraphemeClusterInString(run, state)
			fn(clusterToken(cluster))
		}
		i = end
	}
}

func clusterToken(cluster string) token {
	switch cluster {
	case " ":
		return token{kind: tokenSpace, text: cluster, width: 1}
	case "\t":
		return token{kind: tokenSpace, text: strings.Repeat(" ", tabWidth), width: tabWidth}
	case "\n", "\r\n":
		return token{kind: tokenNewline, text: "\n"}
	}

	if c := cluster[0]; c < 0x20 || c == 0x7f {
		return token{kind: tokenText, text: cluster}
	}
	return token{kind: tokenText, text: cluster, width: cellWidth.StringWidth(cluster)}
}

// styleState tracks the SGR sequences in effect since the last reset and
// the OSC 8 hyperlink currently open.
type styleState struct {
	active []string
	link   string // sequence that opened the current hyperlink
}

func (s *styleState) apply(seq string) {
	if uri, ok := hyperlinkURI(seq); ok {
		if uri == "" {
			s.link = ""
		} else {
			s.link = seq
		}
		return
	}

	params, ok := sgrParams(seq)
	if !ok {
		return
	}
	if params == "" || strings.Trim(params, "0") == "" {
		s.active = s.active[:0]
		return
	}
	s.active = append(s.active, seq)
}

func (s *styleState) open() bool {
	return len(s.active) > 0 || s.link != ""
}

// prefix reopens the current styling.
func (s *styleState) prefix() string {
	return strings.Join(s.active, "") + s.link
}

// closing ends the current hyperlink and resets SGR styling.
func (s *styleState) closing() string {
	var out string
	if s.link != "" {
		out += hyperlinkClose
	}
	if len(s.active) > 0 {
		out += sgrReset
	}
	return out
}

// hyperlinkURI reports whether seq is an OSC 8 hyperlink and returns its
// URI, empty for the sequence that closes a link.
func hyperlinkURI(seq string) (string, bool) {
	body, ok := strings.CutPrefix(seq, "\x1b]8;")
	if !ok {
		return "", false
	}
	if b, ok := strings.CutSuffix(body, "\x07"); ok {
		body = b
	} else {
		body = strings.TrimSuffix(body, "\x1b\\")
	}
	_, uri, ok := strings.Cut(body, ";")
	return uri, ok
}

// sgrParams returns the parameter bytes of an SGR sequence (ESC [ ... m).
func sgrParams(seq string) (string, bool) {
	if len(seq) < 3 || seq[0] != esc || seq[1] != '[' || seq[len(seq)-1] != 'm' {
		return "", false
	}
	params := seq[2 : len(seq)-1]
	for i := 0; i < len(params); i++ {
		c := params[i]
		if (c < '0' || c > '9') && c != ';' && c != ':' {
			return "", false
		}
	}
	return params, true
}
