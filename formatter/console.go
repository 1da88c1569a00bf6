package formatter

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/rmq"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors used for the different kinds of nodes.
// Nil entries print uncolored.
type Palette struct {
	Inner   *color.Color
	Leaf    *color.Color
	Padding *color.Color
}

// DefaultPalette colors inner nodes blue and leafs red, and prints padding
// nodes faint.
func DefaultPalette() Palette {
	return Palette{
		Inner:   color.New(color.FgBlue),
		Leaf:    color.New(color.FgRed),
		Padding: color.New(color.Faint),
	}
}

// Console dumps an Rmq level by level to a console with a fixed width font.
type Console struct {
	LineWidth int            // width of a line in ‘en’s
	Context   *uax11.Context // context for display width of labels
	Colors    Palette
}

var setupGraphemes sync.Once

// NewConsole creates a console formatter with the default palette. If
// lineWidth is not positive, it is taken from the terminal.
func NewConsole(lineWidth int) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if lineWidth <= 0 {
		lineWidth = LineWidthFromTerminal()
	}
	return &Console{
		LineWidth: lineWidth,
		Context:   uax11.LatinContext,
		Colors:    DefaultPalette(),
	}
}

// Print writes the levels of r to w, one line per level, root first. Every
// node is centered within the share of the line its subtree covers.
func Print[E, A any](c *Console, w io.Writer, r *rmq.Rmq[E, A], label Label[A]) error {
	lvls, err := levels(r)
	if err != nil {
		return err
	}
	var line strings.Builder
	for _, lvl := range lvls {
		cell := c.LineWidth / len(lvl)
		if cell < 1 {
			cell = 1
		}
		line.Reset()
		for _, n := range lvl {
			text := label.of(n.Value) + "[" + span(n) + "]"
			width := c.displayWidth(text)
			left := (cell - width) / 2
			if left < 0 {
				left = 0
			}
			right := cell - width - left
			if right < 1 {
				right = 1
			}
			line.WriteString(strings.Repeat(" ", left))
			c.colorFor(n.Leaf, n.Padding).Fprint(&line, text)
			line.WriteString(strings.Repeat(" ", right))
		}
		line.WriteByte('\n')
		// a level is written in one go, so no partial line is left unreported
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) displayWidth(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	ctx := c.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

func (c *Console) colorFor(leaf, padding bool) *color.Color {
	var col *color.Color
	switch {
	case padding:
		col = c.Colors.Padding
	case leaf:
		col = c.Colors.Leaf
	default:
		col = c.Colors.Inner
	}
	if col == nil {
		return plain
	}
	return col
}

var plain = color.New(color.Reset)

// LineWidthFromTerminal checks whether stdout is a terminal, and if so
// derives a line width from the terminal's width.
func LineWidthFromTerminal() int {
	width := 80
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			width = w
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", width)
	return width
}
