// SPDX-License-Identifier: MIT

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package render

func queryWidth(uintptr) (int, bool) { return 0, false }
