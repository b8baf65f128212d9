package spatial

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Apostolique/Apos.Spatial/dtree"
)

var (
	branchColor = color.New(color.FgCyan)
	leafColor   = color.New(color.FgGreen)
)

// terminalWidth detects the terminal width on file descriptor 0 (stdin),
// falling back to 65 columns when it isn't a terminal or its size can't be
// read.
func terminalWidth() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil {
		return 65
	}
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	default:
		return 10
	}
}

// dumpConsole walks it end to end, printing one line per node: leaves and
// branches in different colors when useColor is set, each line truncated to
// the detected terminal width.
func dumpConsole[K any, V any, P any](w io.Writer, it *dtree.KeyIterator[K, V, P], keyString func(K) string, useColor bool) error {
	width := terminalWidth()
	tracer().P("op", "dump").Debugf("spatial: dumping console at width %d", width)
	for {
		ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		isLeaf, err := it.CurrentIsLeaf()
		if err != nil {
			return err
		}
		key, err := it.Current()
		if err != nil {
			return err
		}
		label := keyString(key)
		if len(label) > width {
			label = label[:width]
		}
		tag := "branch"
		c := branchColor
		if isLeaf {
			tag = "  leaf"
			c = leafColor
		}
		if useColor {
			c.Fprintf(w, "%s %s\n", tag, label)
		} else {
			fmt.Fprintf(w, "%s %s\n", tag, label)
		}
	}
}

// DumpConsole writes a colorized, terminal-width-aware listing of every node
// in the arena to w, for interactive debugging.
func (t *AABBTree[P]) DumpConsole(w io.Writer, useColor bool) error {
	return dumpConsole(w, t.inner.DebugAllNodes(), func(r Rect) string {
		return fmt.Sprintf("(%.1f,%.1f) %.1fx%.1f", r.X, r.Y, r.W, r.H)
	}, useColor)
}

// DumpConsole writes a colorized, terminal-width-aware listing of every node
// in the arena to w, for interactive debugging.
func (t *IntervalTree[P]) DumpConsole(w io.Writer, useColor bool) error {
	return dumpConsole(w, t.inner.DebugAllNodes(), func(i Interval) string {
		return fmt.Sprintf("[%.1f, %.1f]", i.Origin, i.Origin+i.Length)
	}, useColor)
}
