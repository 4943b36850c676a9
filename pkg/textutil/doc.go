// Package textutil measures and reshapes text destined for a terminal.
//
// Widths are counted in terminal cells per grapheme cluster, so combining
// marks, emoji sequences and East Asian wide characters measure the way a
// terminal draws them. Escape sequences (CSI, OSC, DCS, APC) occupy no cells
// and are carried through Truncate and Wrap; StripANSI removes them.
package textutil
