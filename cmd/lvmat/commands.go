package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmat/internal/watch"
	"github.com/katalvlaran/lvmat/matrix"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a sample dense and diagonal matrix",
		Long: `Builds a 2x2 dense matrix holding 1..4 in row-major order and a 3x3
diagonal matrix holding 5, 10, 15, then prints both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dense, err := matrix.NewDense(2, 2)
			if err != nil {
				return err
			}
			for k, v := range []float64{1, 2, 3, 4} {
				if err = dense.Set(k/2, k%2, v); err != nil {
					return err
				}
			}

			diag, err := matrix.NewDiagonal(3)
			if err != nil {
				return err
			}
			for i, v := range []float64{5, 10, 15} {
				if err = diag.Set(i, i, v); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if err = a.writeMatrix(out, dense, "Dense Matrix:"); err != nil {
				return err
			}
			if _, err = fmt.Fprintln(out); err != nil {
				return err
			}
			return a.writeMatrix(out, diag, "Diagonal Matrix:")
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "show PATH",
		Short: "Import a matrix file and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(kind, args[0])
			if err != nil {
				return err
			}
			return a.writeMatrix(cmd.OutOrStdout(), s, "")
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(matrix.KindDense), "storage layout: dense or diagonal")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "add A B",
		Short: "Add two dense matrix files elementwise",
		Long: `Imports A and B as dense matrices and prints A+B, or writes it to --out.
Both operands must have identical dimensions.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, err := a.load(string(matrix.KindDense), args[0])
			if err != nil {
				return err
			}
			rhs, err := a.load(string(matrix.KindDense), args[1])
			if err != nil {
				return err
			}
			sum, err := lhs.(*matrix.Dense).Add(rhs.(*matrix.Dense))
			if err != nil {
				return err
			}
			if out == "" {
				return a.writeMatrix(cmd.OutOrStdout(), sum, "")
			}
			if err = sum.Export(out, a.cfg.MatrixOptions()...); err != nil {
				return err
			}
			a.logger.Info("sum exported", zap.String("path", out), zap.Int("rows", sum.Rows()), zap.Int("cols", sum.Cols()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the sum to this file instead of printing it")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a matrix file between dense and diagonal layouts",
		Long: `Imports IN with the --from layout and exports it to OUT with the --to layout.
Converting to diagonal requires a square matrix whose off-diagonal cells are all zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.load(from, args[0])
			if err != nil {
				return err
			}
			kind, err := matrix.ParseKind(to)
			if err != nil {
				return err
			}
			dst, err := matrix.Convert(src, kind)
			if err != nil {
				return err
			}
			if err = dst.Export(args[1], a.cfg.MatrixOptions()...); err != nil {
				return err
			}
			a.logger.Info("matrix converted",
				zap.String("in", args[0]), zap.String("out", args[1]),
				zap.String("from", src.Kind().String()), zap.String("to", kind.String()))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", string(matrix.KindDiagonal), "layout of IN")
	cmd.Flags().StringVar(&to, "to", string(matrix.KindDense), "layout of OUT")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "watch PATH",
		Short: "Print a matrix file every time it changes",
		Long: `Prints PATH once, then re-imports and prints it after every change until
interrupted. A change that leaves the file malformed is logged and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			show := func(p string) error {
				s, err := a.load(kind, p)
				if err != nil {
					return err
				}
				return a.writeMatrix(cmd.OutOrStdout(), s, "")
			}
			if err := show(path); err != nil {
				return err
			}

			debounce, err := a.cfg.DebounceDuration()
			if err != nil {
				return err
			}
			w, err := watch.New(path, debounce, a.logger)
			if err != nil {
				return err
			}
			a.logger.Info("watching", zap.String("path", w.Path()), zap.Duration("debounce", debounce))
			return w.Run(cmd.Context(), show)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(matrix.KindDense), "storage layout: dense or diagonal")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "lvmat version %s\n", version)
			return err
		},
	}
}
