// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/densela/matrix"
)

// ---------- Defaults ----------

const (
	// DefaultSignificantDigits is the rounding precision of rendered entries.
	DefaultSignificantDigits = 4

	// DefaultTerminalWidth is assumed when the width cannot be detected.
	DefaultTerminalWidth = 80

	// columnMargin keeps a few columns free for brackets when the column
	// limit is derived from the terminal width.
	columnMargin = 5
)

// gradient holds the 256-color palette indices from low (green) to high (red).
// Values are bucketed by int(t*(len(gradient)-1)) with t normalised to [0,1].
var gradient = [...]int{82, 118, 226, 214, 196}

// ---------- Glyphs ----------

const (
	_glyphSingleL = "["
	_glyphSingleR = "]"
	_glyphTopL    = "⎡"
	_glyphTopR    = "⎤"
	_glyphMidL    = "⎢"
	_glyphMidR    = "⎥"
	_glyphBotL    = "⎣"
	_glyphBotR    = "⎦"
	_glyphElided  = "."
	_ansiReset    = "\033[0m"
	_ansiFg256    = "\033[38;5;%dm"
	_emptyMatrix  = "[]"
)

// Config controls Format.
type Config struct {
	SignificantDigits int  // >= 1; DefaultSignificantDigits when 0
	UseColor          bool // wrap entries in 256-color escapes
	MaxRows           int  // 0 = unlimited
	MaxCols           int  // 0 = derive from TerminalWidth()
}

// DefaultConfig returns 4 significant digits, color on and terminal-derived column limit.
func DefaultConfig() Config {
	return Config{SignificantDigits: DefaultSignificantDigits, UseColor: true}
}

// FormatEntry rounds x to digits significant figures and prints it with
// digits decimal places, e.g. FormatEntry(1.23456, 4) == "1.2350".
func FormatEntry(x float64, digits int) string {
	if digits < 1 {
		digits = 1
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'e', digits-1, 64), 64)
	return strconv.FormatFloat(rounded, 'f', digits, 64)
}

// Format renders m according to cfg. Nil or released matrices render as "[]".
func Format(m *matrix.Dense, cfg Config) string {
	var sb strings.Builder
	_ = Fprint(&sb, m, cfg) // strings.Builder never fails
	return sb.String()
}

// Fprint writes the rendering of m to w.
func Fprint(w io.Writer, m *matrix.Dense, cfg Config) error {
	if m == nil || m.Released() {
		_, err := io.WriteString(w, _emptyMatrix+"\n")
		return err
	}
	if cfg.SignificantDigits <= 0 {
		cfg.SignificantDigits = DefaultSignificantDigits
	}

	rows, cols := m.Dims()
	data := m.RawCopy()
	lo, _ := m.Min()
	hi, _ := m.Max()

	// Format every visible entry once and find the column width.
	cells := make([]string, len(data))
	width := 0
	for i, v := range data {
		cells[i] = FormatEntry(v, cfg.SignificantDigits)
		width = max(width, len(cells[i]))
	}

	maxCols := cfg.MaxCols
	if maxCols <= 0 {
		maxCols = max(TerminalWidth()/(width+1)-columnMargin, 2)
	}
	rowIdx := visible(rows, cfg.MaxRows)
	colIdx := visible(cols, maxCols)

	for r, i := range rowIdx {
		left, right := brackets(r, len(rowIdx))
		var line strings.Builder
		line.WriteString(left)
		for _, j := range colIdx {
			line.WriteByte(' ')
			if i < 0 || j < 0 {
				line.WriteString(pad(_glyphElided, width))
				continue
			}
			k := i*cols + j
			line.WriteString(colorize(pad(cells[k], width), data[k], lo, hi, cfg.UseColor))
		}
		line.WriteByte(' ')
		line.WriteString(right)
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

// visible lists the indices to print for a dimension of size n under limit.
// Elided positions are marked -1: the first limit-1 indices, one marker, then n-1.
func visible(n, limit int) []int {
	if limit <= 0 || n <= limit {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	limit = max(limit, 2)
	out := make([]int, 0, limit+1)
	for i := 0; i < limit-1; i++ {
		out = append(out, i)
	}
	return append(out, -1, n-1)
}

// brackets picks the delimiters for visual row r of total.
func brackets(r, total int) (string, string) {
	switch {
	case total == 1:
		return _glyphSingleL, _glyphSingleR
	case r == 0:
		return _glyphTopL, _glyphTopR
	case r == total-1:
		return _glyphBotL, _glyphBotR
	default:
		return _glyphMidL, _glyphMidR
	}
}

// pad right-aligns s to width (in runes).
func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// colorize wraps s in the gradient color for v within [lo, hi].
func colorize(s string, v, lo, hi float64, on bool) string {
	span := hi - lo
	if !on || !(span > 0) || math.IsNaN(v) || math.IsInf(span, 0) {
		return s
	}
	t := math.Min(math.Max((v-lo)/span, 0), 1)
	return fmt.Sprintf(_ansiFg256, gradient[int(t*float64(len(gradient)-1))]) + s + _ansiReset
}
