package formatter

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Role denotes the part of the output a piece of text belongs to.
type Role int

// Roles to be colored by a console format.
const (
	IndexRole Role = iota
	ElementRole
	EndRole
)

// ConsoleFormat is a type for outputting sequences to a console with a fixed
// width font. It uses colors to distinguish positions, elements and the end
// marker.
type ConsoleFormat struct {
	colors map[Role]*color.Color
}

var _ Format = (*ConsoleFormat)(nil)

// NewConsoleFormat creates a new console formatter.
//
// colors is a map from roles to colors, used for display. It may contain
// just a subset of the roles. If it is nil, a default palette is used.
func NewConsoleFormat(colors map[Role]*color.Color) *ConsoleFormat {
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return &ConsoleFormat{colors: colors}
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		IndexRole: color.New(color.FgBlue),
		EndRole:   color.New(color.FgRed),
	}
	return palette
}

func (cf *ConsoleFormat) print(s string, role Role, w io.Writer) {
	if c, ok := cf.colors[role]; ok && c != nil {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Preamble is part of interface Format. Consoles do not need one.
func (cf *ConsoleFormat) Preamble(w io.Writer) {}

// Postamble is part of interface Format. Consoles do not need one.
func (cf *ConsoleFormat) Postamble(w io.Writer) {}

// Index outputs the position label of an element.
// (Part of interface Format)
func (cf *ConsoleFormat) Index(i int, w io.Writer) {
	cf.print(indexLabel(i), IndexRole, w)
}

// Element outputs the text of an element.
// (Part of interface Format)
func (cf *ConsoleFormat) Element(s string, w io.Writer) {
	cf.print(s, ElementRole, w)
}

// Separator outputs the separator between two elements.
// (Part of interface Format)
func (cf *ConsoleFormat) Separator(s string, w io.Writer) {
	io.WriteString(w, s)
}

// End outputs the end marker.
// (Part of interface Format)
func (cf *ConsoleFormat) End(w io.Writer) {
	cf.print(EndMarker, EndRole, w)
}

// Newline ends a line of output.
// (Part of interface Format)
func (cf *ConsoleFormat) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

// PlainFormat outputs sequences as uncolored text.
type PlainFormat struct{}

var _ Format = PlainFormat{}

func (PlainFormat) Preamble(w io.Writer) {}
func (PlainFormat) Postamble(w io.Writer) {}
func (PlainFormat) Index(i int, w io.Writer) { io.WriteString(w, "["+strconv.Itoa(i)+"] ") }
func (PlainFormat) Element(s string, w io.Writer) { io.WriteString(w, s) }
func (PlainFormat) Separator(s string, w io.Writer) { io.WriteString(w, s) }
func (PlainFormat) End(w io.Writer) { io.WriteString(w, EndMarker) }
func (PlainFormat) Newline(w io.Writer) { io.WriteString(w, "\n") }

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil {
			config.LineWidth = DefaultLineWidth
		} else if w > 30 {
			config.LineWidth = w - 5
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = DefaultLineWidth
	}
	T().Infof("setting line length to %d en", config.LineWidth)
	return config
}
