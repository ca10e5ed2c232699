package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/npillmayer/linear"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// DefaultLineWidth is used whenever no line width is configured.
const DefaultLineWidth = 65

// EndMarker is output after the last element of a sequence.
const EndMarker = "⊣"

// ErrInvalidConfig signals an invalid formatting configuration.
var ErrInvalidConfig = errors.New("formatter: invalid configuration")

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // target line width in fixed width ‘en’s; 0 means default
	Separator string         // between elements; empty means two spaces
	ShowIndex bool           // prefix elements by their position
	Context   *uax11.Context // for width calculation; nil means uax11.LatinContext
}

func (cfg Config) normalized() Config {
	if cfg.LineWidth == 0 {
		cfg.LineWidth = DefaultLineWidth
	}
	if cfg.Separator == "" {
		cfg.Separator = "  "
	}
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.LineWidth < 0 {
		return fmt.Errorf("%w: negative line width %d", ErrInvalidConfig, cfg.LineWidth)
	}
	return nil
}

// Format is an interface for formatting drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	Index(int, io.Writer)
	Element(string, io.Writer)
	Separator(string, io.Writer)
	End(io.Writer)
	Newline(io.Writer)
}

// cell is one element as it will be output.
type cell struct {
	index int // -1 for the end marker
	text  string
	width int // display width including the index prefix
}

// Output formats the elements of a collection using a given formatter.
//
// Neither c nor format may be nil. config may be nil, in which case defaults
// are used.
func Output[T any](c linear.Collection[T], out io.Writer, config *Config, format Format) error {
	if c == nil || out == nil || format == nil {
		return errors.New("illegal argument: nil")
	}
	var cfg Config
	if config != nil {
		cfg = *config
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	cfg = cfg.normalized()
	cells := makeCells(c.Values(), cfg)
	sepwidth := width(cfg.Separator, cfg.Context)
	format.Preamble(out)
	spaceleft := cfg.LineWidth
	linestart := true
	for _, cl := range cells {
		if !linestart && cl.width+sepwidth > spaceleft {
			format.Newline(out)
			spaceleft = cfg.LineWidth
			linestart = true
		}
		if !linestart {
			format.Separator(cfg.Separator, out)
			spaceleft -= sepwidth
		}
		if cl.index < 0 {
			format.End(out)
		} else {
			if cfg.ShowIndex {
				format.Index(cl.index, out)
			}
			format.Element(cl.text, out)
		}
		spaceleft -= cl.width
		linestart = false
	}
	format.Newline(out)
	format.Postamble(out)
	return nil
}

// Print outputs the elements of a collection to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print[T any](c linear.Collection[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
		config.ShowIndex = true
	}
	return Output(c, os.Stdout, config, NewConsoleFormat(nil))
}

func makeCells[T any](values []T, cfg Config) []cell {
	cells := make([]cell, 0, len(values)+1)
	for i, v := range values {
		text := fmt.Sprint(v)
		w := width(text, cfg.Context)
		if cfg.ShowIndex {
			w += width(indexLabel(i), cfg.Context)
		}
		cells = append(cells, cell{index: i, text: text, width: w})
	}
	cells = append(cells, cell{index: -1, text: EndMarker, width: width(EndMarker, cfg.Context)})
	return cells
}

func indexLabel(i int) string {
	return fmt.Sprintf("[%d] ", i)
}

var setupGraphemes sync.Once

// width returns the display width of s in fixed width ‘en’s.
func width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
