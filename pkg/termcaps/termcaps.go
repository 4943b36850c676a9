// Package termcaps detects what the host terminal can display.
//
// Detection reads the environment and probes the output file; it never writes
// escape sequences or changes terminal modes.
package termcaps

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorLevel describes the level of color support in a terminal.
type ColorLevel int

const (
	// ColorNone indicates a monochrome terminal with no color support.
	ColorNone ColorLevel = iota
	// Color16 indicates basic 16-color support (ANSI standard colors).
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color (RGB) support.
	ColorTrue
)

// String returns the level's short name.
func (l ColorLevel) String() string {
	switch l {
	case ColorNone:
		return "no-color"
	case Color16:
		return "16-color"
	case Color256:
		return "256-color"
	case ColorTrue:
		return "true-color"
	}
	return "unknown"
}

// Profile returns the matching termenv profile.
func (l ColorLevel) Profile() termenv.Profile {
	switch l {
	case ColorTrue:
		return termenv.TrueColor
	case Color256:
		return termenv.ANSI256
	case Color16:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// FromProfile maps a termenv profile to a ColorLevel.
func FromProfile(p termenv.Profile) ColorLevel {
	switch p {
	case termenv.TrueColor:
		return ColorTrue
	case termenv.ANSI256:
		return Color256
	case termenv.ANSI:
		return Color16
	default:
		return ColorNone
	}
}

// Capabilities describes what features the terminal supports.
type Capabilities struct {
	// Colors indicates the level of color support.
	Colors ColorLevel
	// Unicode indicates whether the terminal can render Unicode characters.
	Unicode bool
	// AltScreen indicates whether the terminal supports the alternate screen buffer.
	AltScreen bool
	// TTY reports whether the probed output is a terminal. Always false from DetectEnv.
	TTY bool
	// Width and Height are the terminal size in cells, zero when unknown.
	Width, Height int
}

// trueColorSessionVars are set by emulators known to support 24-bit color.
var trueColorSessionVars = []string{
	"WT_SESSION",       // Windows Terminal
	"ITERM_SESSION_ID", // iTerm2
	"KITTY_WINDOW_ID",  // Kitty
	"KONSOLE_VERSION",  // Konsole
	"VTE_VERSION",      // GNOME Terminal, Tilix and other VTE terminals
}

// DetectEnv determines capabilities from environment variables alone.
// A nil getenv reads the process environment.
// Returns conservative defaults when nothing is recognized.
func DetectEnv(getenv func(string) string) Capabilities {
	if getenv == nil {
		getenv = os.Getenv
	}

	caps := Capabilities{
		Colors:    Color16,
		Unicode:   true,
		AltScreen: true,
	}

	termName := strings.ToLower(getenv("TERM"))
	if termName == "dumb" {
		caps.Colors = ColorNone
		caps.Unicode = false
		caps.AltScreen = false
		return caps
	}

	// https://no-color.org: any non-empty value disables color.
	if getenv("NO_COLOR") != "" {
		caps.Colors = ColorNone
		return caps
	}

	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.Colors = ColorTrue
		return caps
	}
	for _, key := range trueColorSessionVars {
		if getenv(key) != "" {
			caps.Colors = ColorTrue
			return caps
		}
	}

	switch {
	case strings.Contains(termName, "truecolor"), strings.Contains(termName, "24bit"):
		caps.Colors = ColorTrue
	case strings.Contains(termName, "256color"):
		caps.Colors = Color256
	}

	return caps
}

// Detect combines environment detection with probing of f, which is usually
// os.Stdout. Output that is not a terminal gets no color unless CLICOLOR_FORCE
// is set.
func Detect(f *os.File) Capabilities {
	caps := DetectEnv(os.Getenv)
	if f == nil {
		return resolve(caps, false, termenv.Ascii, os.Getenv)
	}

	fd := int(f.Fd())
	caps.TTY = term.IsTerminal(fd)
	if caps.TTY {
		if w, h, err := term.GetSize(fd); err == nil {
			caps.Width, caps.Height = w, h
		}
	}

	profile := termenv.NewOutput(f).EnvColorProfile()
	return resolve(caps, caps.TTY, profile, os.Getenv)
}

// resolve merges env-derived capabilities with the termenv profile of the output.
func resolve(caps Capabilities, tty bool, profile termenv.Profile, getenv func(string) string) Capabilities {
	if caps.Colors == ColorNone {
		return caps
	}

	forced := getenv("CLICOLOR_FORCE")
	if !tty && (forced == "" || forced == "0") {
		caps.Colors = ColorNone
		return caps
	}

	if level := FromProfile(profile); level > caps.Colors {
		caps.Colors = level
	}
	return caps
}

// WithNoColor returns c with color disabled.
func (c Capabilities) WithNoColor() Capabilities {
	c.Colors = ColorNone
	return c
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	parts := []string{c.Colors.String()}

	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}

	if c.AltScreen {
		parts = append(parts, "altscreen")
	}

	return strings.Join(parts, ", ")
}
