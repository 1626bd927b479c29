// Package sanitize prepares captured command output for display inside a
// pane. Panes are plain text: escape sequences that would recolor, move the
// cursor or switch screens are removed rather than passed through.
package sanitize

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the tab stop used when expanding tabs.
const TabWidth = 8

// MaxCursorForward caps the spaces a single cursor-forward sequence expands
// to.
const MaxCursorForward = 256

// Precompiled regexps used by Line.
var (
	oscRe = regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)
	csiRe = regexp.MustCompile(`\x1b\[[0-9;?<=>]*[ -/]*[@-~]`)
	escRe = regexp.MustCompile(`\x1b[@-Z\\-_]`)
)

// Line cleans a single display line. OSC and CSI sequences are removed,
// except cursor-forward which becomes spaces so column layouts stay
// readable. Tabs are expanded and every other control character, carriage
// returns included, is dropped.
func Line(in string) string {
	out := in
	if strings.IndexByte(out, 0x1b) >= 0 {
		out = oscRe.ReplaceAllString(out, "")
		out = csiRe.ReplaceAllStringFunc(out, replaceCsi)
		out = escRe.ReplaceAllString(out, "")
	}
	out = strings.Map(func(r rune) rune {
		if r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, out)
	return expandTabs(out)
}

// replaceCsi handles a single CSI sequence match. Cursor-forward (C) becomes
// spaces and everything else, colors included, is stripped.
func replaceCsi(s string) string {
	if s[len(s)-1] == 'C' {
		return strings.Repeat(" ", min(csiParam(s, 1), MaxCursorForward))
	}
	return ""
}

// csiParam extracts the first numeric parameter from a CSI sequence like
// \x1b[<n><letter>. Returns def if the parameter is absent or invalid and
// math.MaxInt if it does not fit in an int.
func csiParam(s string, def int) int {
	body := strings.TrimLeft(s[2:len(s)-1], "?<=>")
	if idx := strings.IndexByte(body, ';'); idx >= 0 {
		body = body[:idx]
	}
	n, err := strconv.Atoi(body)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return math.MaxInt
	case err == nil && n > 0:
		return n
	}
	return def
}

func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := TabWidth - col%TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
