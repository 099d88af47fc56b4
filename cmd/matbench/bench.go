// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand/v2"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densela/dispatch"
	"github.com/katalvlaran/densela/matrix"
)

type benchFlags struct {
	sizes   []int
	ops     []string
	workers int
	iter    int
	seed    uint64
}

// binaryKernel is the shared signature of Add, Sub, Hadamard and Mul.
type binaryKernel func(a, b *matrix.Dense, opts ...matrix.Option) (*matrix.Dense, error)

var benchOps = map[string]binaryKernel{
	"add":      matrix.Add,
	"sub":      matrix.Sub,
	"hadamard": matrix.Hadamard,
	"mul":      matrix.Mul,
}

func newBenchCmd(a *app) *cobra.Command {
	f := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time serial vs parallel kernels and verify identical results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, a, f)
		},
	}
	fl := cmd.Flags()
	fl.IntSliceVar(&f.sizes, "sizes", []int{64, 128, 256}, "square matrix sizes")
	fl.StringSliceVar(&f.ops, "ops", []string{"add", "hadamard", "mul"}, "kernels: add, sub, hadamard, mul")
	fl.IntVarP(&f.workers, "workers", "w", 0, "parallel worker count (0 = GOMAXPROCS)")
	fl.IntVarP(&f.iter, "iter", "n", 5, "iterations per measurement")
	fl.Uint64Var(&f.seed, "seed", 1, "seed for the random operands")
	return cmd
}

func runBench(cmd *cobra.Command, a *app, f *benchFlags) error {
	if f.iter < 1 {
		return fmt.Errorf("bench: --iter must be >= 1, got %d", f.iter)
	}
	workers := f.workers
	if workers <= 0 {
		workers = dispatch.DefaultWorkers()
	}
	for _, name := range f.ops {
		if _, ok := benchOps[name]; !ok {
			return fmt.Errorf("bench: unknown op %q", name)
		}
	}

	parallel := []matrix.Option{matrix.WithWorkers(workers), matrix.WithLogger(a.log)}
	rng := rand.New(rand.NewPCG(f.seed, f.seed+1))

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "op\tn\tserial\tparallel\tspeedup\tgonum\tidentical\t")

	for _, name := range f.ops {
		kernel := benchOps[name]
		for _, n := range f.sizes {
			x, err := matrix.NewRandom(n, n, -1, 1, rng)
			if err != nil {
				return fmt.Errorf("bench: %s n=%d: %w", name, n, err)
			}
			y, err := matrix.NewRandom(n, n, -1, 1, rng)
			if err != nil {
				return fmt.Errorf("bench: %s n=%d: %w", name, n, err)
			}

			serialOut, serialDur, err := timeKernel(f.iter, func() (*matrix.Dense, error) {
				return kernel(x, y, matrix.WithSerial())
			})
			if err != nil {
				return fmt.Errorf("bench: %s n=%d serial: %w", name, n, err)
			}
			parOut, parDur, err := timeKernel(f.iter, func() (*matrix.Dense, error) {
				return kernel(x, y, parallel...)
			})
			if err != nil {
				return fmt.Errorf("bench: %s n=%d parallel: %w", name, n, err)
			}

			same := matrix.Equal(serialOut, parOut)
			if !same {
				a.log.Error().Str("op", name).Int("n", n).Msg("parallel result differs from serial")
			}

			baseline := "-"
			if name == "mul" {
				baseline = gonumMul(f.iter, x, y).String()
			}

			fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%.2fx\t%s\t%t\t\n",
				name, n, serialDur, parDur, float64(serialDur)/float64(max(parDur, 1)), baseline, same)

			a.log.Debug().Str("op", name).Int("n", n).Int("workers", workers).
				Dur("serial", serialDur).Dur("parallel", parDur).Msg("measured")
			serialOut.Release()
			parOut.Release()
			x.Release()
			y.Release()
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return nil
}

// timeKernel runs fn iter times and returns the last result and the mean duration.
func timeKernel(iter int, fn func() (*matrix.Dense, error)) (*matrix.Dense, time.Duration, error) {
	var out *matrix.Dense
	start := time.Now()
	for i := 0; i < iter; i++ {
		if out != nil {
			out.Release()
		}
		m, err := fn()
		if err != nil {
			return nil, 0, err
		}
		out = m
	}
	return out, time.Since(start) / time.Duration(iter), nil
}

// gonumMul times gonum's Dense.Mul on the same operands as a reference point.
func gonumMul(iter int, x, y *matrix.Dense) time.Duration {
	gx := mat.NewDense(x.Rows(), x.Cols(), x.RawCopy())
	gy := mat.NewDense(y.Rows(), y.Cols(), y.RawCopy())
	var out mat.Dense
	start := time.Now()
	for i := 0; i < iter; i++ {
		out.Reset()
		out.Mul(gx, gy)
	}
	return time.Since(start) / time.Duration(iter)
}
