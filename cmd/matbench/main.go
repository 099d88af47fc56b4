// SPDX-License-Identifier: MIT

// Command matbench times the densela kernels serially and in parallel,
// checks that both paths agree bit-for-bit, and renders demo matrices.
//
// Usage:
//
//	matbench bench --sizes 64,128,256 --ops add,hadamard,mul --workers 8
//	matbench demo --digits 3
//	matbench env
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
