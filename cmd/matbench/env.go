// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/densela/dispatch"
	"github.com/katalvlaran/densela/render"
)

func newEnvCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print runtime and CPU details relevant to benchmark results",
		Run: func(cmd *cobra.Command, _ []string) {
			printEnv(cmd.OutOrStdout())
		},
	}
}

func printEnv(w io.Writer) {
	fmt.Fprintf(w, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "CPUs: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "Default workers: %d\n", dispatch.DefaultWorkers())
	fmt.Fprintf(w, "Terminal width: %d\n", render.TerminalWidth())
	for _, f := range cpuFeatures() {
		fmt.Fprintf(w, "%s: %t\n", f.name, f.on)
	}
}

type feature struct {
	name string
	on   bool
}

// cpuFeatures lists the SIMD capabilities reported by golang.org/x/sys/cpu.
// Flags for other architectures read as false.
func cpuFeatures() []feature {
	return []feature{
		{"x86 AVX", cpu.X86.HasAVX},
		{"x86 AVX2", cpu.X86.HasAVX2},
		{"x86 FMA", cpu.X86.HasFMA},
		{"x86 AVX512F", cpu.X86.HasAVX512F},
		{"arm64 ASIMD", cpu.ARM64.HasASIMD},
		{"arm64 SVE", cpu.ARM64.HasSVE},
	}
}
