package treeviz

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Width returns the number of fixed-width console positions s occupies,
// counting East Asian wide characters as two and combining sequences as one.
func Width(s string) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, uax11.LatinContext)
}

// Pad right-pads s with spaces to a display width of n.
func Pad(s string, n int) string {
	if w := Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// Truncate shortens s to at most n display positions, ending in an ellipsis
// if anything was cut. n <= 0 means no limit.
func Truncate(s string, n int) string {
	if n <= 0 || Width(s) <= n {
		return s
	}
	var b strings.Builder
	w := 0
	gstr := grapheme.StringFromString(s)
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := Width(g)
		if w+gw > n-1 {
			break
		}
		b.WriteString(g)
		w += gw
	}
	b.WriteString("…")
	return b.String()
}
