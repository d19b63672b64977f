// Command lvmat prints, converts, adds and watches dense and diagonal
// matrix files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/internal/logging"
	"github.com/katalvlaran/lvmat/internal/render"
	"github.com/katalvlaran/lvmat/matrix"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	styled     bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// from leaking between invocations (and between tests).
func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lvmat",
		Short: "Dense and diagonal matrix file tool",
		Long: `lvmat reads and writes matrices in a plain whitespace-separated format.

Dense files hold "<rows> <cols>" followed by every cell in row-major order.
Diagonal files hold "<size>" followed by the diagonal values.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if cmd.Flags().Changed("styled") {
				a.cfg.Render.Styled = a.styled
			}

			logger, err := logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("configuration loaded",
				zap.String("config", a.configPath),
				zap.Int("precision", cfg.Codec.Precision),
				zap.Bool("memory_map", cfg.Codec.MemoryMap))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.styled, "styled", false, "render matrices inside a bordered grid")

	root.AddCommand(
		newDemoCmd(a),
		newShowCmd(a),
		newAddCmd(a),
		newConvertCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return root
}

// writeMatrix prints m to w, styled or plain, with an optional title line.
func (a *app) writeMatrix(w io.Writer, m matrix.Storage, title string) error {
	if a.cfg.Render.Styled {
		out, err := render.Grid(m, title, render.DefaultStyles(), a.cfg.Codec.Precision)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	return m.Fprint(w, a.cfg.MatrixOptions()...)
}

// load imports path into a fresh Storage of the given kind.
func (a *app) load(kindName, path string) (matrix.Storage, error) {
	kind, err := matrix.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	s, err := matrix.New(kind)
	if err != nil {
		return nil, err
	}
	if err = s.Import(path, a.cfg.MatrixOptions()...); err != nil {
		return nil, err
	}
	a.logger.Debug("matrix imported",
		zap.String("path", path),
		zap.String("kind", kind.String()),
		zap.Int("rows", s.Rows()),
		zap.Int("cols", s.Cols()))
	return s, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
