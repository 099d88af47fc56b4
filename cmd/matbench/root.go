// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densela/render"
)

// app carries state shared by all subcommands after flag parsing.
type app struct {
	verbose bool
	color   bool
	digits  int

	log zerolog.Logger
}

// renderConfig maps global flags onto the renderer configuration.
func (a *app) renderConfig() render.Config {
	cfg := render.DefaultConfig()
	cfg.UseColor = a.color
	cfg.SignificantDigits = a.digits
	return cfg
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "matbench",
		Short:        "Benchmark and inspect the densela matrix kernels",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.InfoLevel
			if a.verbose {
				level = zerolog.DebugLevel
			}
			a.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen, NoColor: !a.color}).
				Level(level).
				With().Timestamp().Str("cmd", cmd.Name()).
				Logger()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log kernel dispatch decisions at debug level")
	pf.BoolVar(&a.color, "color", true, "colorize rendered matrices and logs")
	pf.IntVar(&a.digits, "digits", render.DefaultSignificantDigits, "significant digits for rendered entries")

	root.AddCommand(newBenchCmd(a), newDemoCmd(a), newEnvCmd(a))
	return root
}
