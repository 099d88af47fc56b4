// SPDX-License-Identifier: MIT

package render

import (
	"os"
	"strconv"
)

// TerminalWidth returns the width of the controlling terminal in columns.
// $COLUMNS wins when set to a positive integer; otherwise stdout is queried,
// falling back to DefaultTerminalWidth.
func TerminalWidth() int {
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		return v
	}
	if w, ok := queryWidth(os.Stdout.Fd()); ok {
		return w
	}
	return DefaultTerminalWidth
}
