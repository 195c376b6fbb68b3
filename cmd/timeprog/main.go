// Binary timeprog prints bounded arithmetic progressions of time points.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	debug  bool
	config string
}

func newRootCommand() *cobra.Command {
	var opts rootOptions
	root := &cobra.Command{
		Use:   "timeprog",
		Short: "timeprog prints evenly spaced time points between two instants",

		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lg := newLogger(cmd.ErrOrStderr(), opts.debug)
			cmd.SetContext(zctx.Base(cmd.Context(), lg))
		},
	}
	{
		flags := root.PersistentFlags()
		flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
		flags.StringVar(&opts.config, "config", "", "Path to config (defaults to timeprog.yml)")
	}
	root.AddCommand(
		newRangeCommand(&opts),
		newVersionCommand(),
	)
	return root
}

// ColorLevelEncoder encodes level as a single colored letter.
func ColorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString(color.New(color.FgCyan).Sprint("D"))
	case zapcore.InfoLevel:
		enc.AppendString(color.New(color.FgBlue).Sprint("I"))
	case zapcore.WarnLevel:
		enc.AppendString(color.New(color.FgYellow).Sprint("W"))
	case zapcore.ErrorLevel:
		enc.AppendString(color.New(color.FgRed).Sprint("E"))
	default:
		enc.AppendString("U")
	}
}

func newLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = ColorLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.ConsoleSeparator = " "
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, ctx.Err()) {
			fmt.Fprintln(os.Stderr, "interrupted")
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
