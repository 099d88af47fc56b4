// SPDX-License-Identifier: MIT

// Package render formats matrices for humans: bracketed rows, entries rounded
// to a number of significant figures, an optional 256-color heat gradient
// between the matrix minimum and maximum, and elision of rows/columns that do
// not fit the configured limits or the terminal width.
//
// Rendering is a presentation concern layered on top of package matrix; it
// only reads matrices through their public accessors.
package render
