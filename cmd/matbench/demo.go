// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/render"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render the reference 2x2 and 3x3 scenarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), a)
		},
	}
}

func runDemo(w io.Writer, a *app) error {
	cfg := a.renderConfig()
	cfg.MaxCols = 8 // demo matrices are tiny; don't depend on the terminal
	opts := []matrix.Option{matrix.WithParallel(), matrix.WithLogger(a.log)}

	A, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		return err
	}
	B, err := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
	if err != nil {
		return err
	}

	show := func(title string, m *matrix.Dense, err error) error {
		if err != nil {
			return fmt.Errorf("demo: %s: %w", title, err)
		}
		fmt.Fprintf(w, "%s\n", title)
		return render.Fprint(w, m, cfg)
	}

	sum, err := matrix.Add(A, B, opts...)
	if err = show("A + B", sum, err); err != nil {
		return err
	}
	prod, err := matrix.Mul(A, B, opts...)
	if err = show("A · B", prod, err); err != nil {
		return err
	}
	inv, err := matrix.Inverse(A, matrix.WithLogger(a.log))
	if err = show("A⁻¹", inv, err); err != nil {
		return err
	}
	det, err := matrix.Det(A)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "det(A) = %g\n", det)

	S, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if err != nil {
		return err
	}
	if err = show("S", S, nil); err != nil {
		return err
	}
	det, err = matrix.Det(S)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "det(S) = %g\n", det)
	if _, err = matrix.Inverse(S, matrix.WithLogger(a.log)); errors.Is(err, matrix.ErrSingular) {
		fmt.Fprintln(w, "S is singular")
	} else if err != nil {
		return err
	}
	return nil
}
