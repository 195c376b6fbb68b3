package main

import (
	"io"
	"maps"
	"slices"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-faster/timeprog/internal/chrono"
	"github.com/go-faster/timeprog/internal/iterators"
	"github.com/go-faster/timeprog/internal/progression"
)

type rangeOptions struct {
	start        string
	end          string
	since        string
	step         string
	rawDirection string
	instantType  string
	limit        int

	render renderOptions
}

// applyConfig fills options not set by flags from config.
func (opts *rangeOptions) applyConfig(cmd *cobra.Command, cfg Config) error {
	flags := cmd.Flags()
	if !flags.Changed("since") {
		opts.since = cfg.Since
	}
	if !flags.Changed("step") {
		opts.step = cfg.Step
	}
	if !flags.Changed("type") {
		opts.instantType = cfg.Type
	}
	if !flags.Changed("output") {
		opts.render.output = cfg.Output
	}
	if !flags.Changed("layout") {
		opts.render.layout = cfg.Layout
	}

	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return errors.Wrapf(err, "load location %q", cfg.Location)
	}
	opts.render.location = loc

	if opts.instantType, err = parseChoice("type", opts.instantType, typeTime, typeOTLP); err != nil {
		return err
	}
	if opts.render.output, err = parseChoice("output", opts.render.output, outputText, outputJSON); err != nil {
		return err
	}
	return nil
}

func newRangeCommand(root *rootOptions) *cobra.Command {
	var opts rangeOptions
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print time points from start to end by step",
		Args:  cobra.NoArgs,
		Example: heredoc.Doc(`
# Every day of the last 40 days.
timeprog range --since=40d --step=1d

# Every 6 hours between two instants, latest first.
timeprog range --start=2024-01-01T00:00:00Z --end=2024-01-03T00:00:00Z --step=6h -d desc

# Number of minutes in a day as OTLP timestamps.
timeprog range --start=1704067200 --end=1704153600 --step=1m --type=otlp --count
		`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				ctx = cmd.Context()
				lg  = zctx.From(ctx)
			)

			cfg, err := loadConfig(root.config)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			if err := opts.applyConfig(cmd, cfg); err != nil {
				return errors.Wrap(err, "apply config")
			}

			start, end, err := parseTimeRange(
				time.Now(),
				opts.start,
				opts.end,
				opts.since,
			)
			if err != nil {
				return errors.Wrap(err, "parse time range")
			}

			step, err := parseStep(opts.step, start, end)
			if err != nil {
				return errors.Wrap(err, "parse step")
			}

			direction, err := parseDirection(opts.rawDirection)
			if err != nil {
				return errors.Wrap(err, "parse direction")
			}
			first, last, step := direction.bounds(start, end, step)

			lg.Debug("Parsed parameters",
				zap.Time("first", first),
				zap.Time("last", last),
				zap.Duration("step", step),
				zap.String("direction", string(direction)),
				zap.String("type", opts.instantType),
			)

			var n int
			switch opts.instantType {
			case typeOTLP:
				n, err = printRange(
					cmd.OutOrStdout(),
					renderer[chrono.Timestamp]{opts: opts.render, asTime: chrono.Timestamp.AsTime},
					chrono.NewTimestampFromTime(first),
					chrono.NewTimestampFromTime(last),
					step,
					opts.limit,
				)
			default:
				n, err = printRange(
					cmd.OutOrStdout(),
					renderer[time.Time]{opts: opts.render, asTime: func(t time.Time) time.Time { return t }},
					first,
					last,
					step,
					opts.limit,
				)
			}
			if err != nil {
				return err
			}

			lg.Info("Done", zap.String("elements", humanize.Comma(int64(n))))
			return nil
		},
	}
	{
		flags := cmd.Flags()
		flags.StringVar(&opts.start, "start", "", "Start of range, defaults to `end - since`")
		flags.StringVar(&opts.end, "end", "", "End of range (inclusive), defaults to now")
		flags.StringVar(&opts.since, "since", "", "A duration used to calculate `start` relative to `end`, defaults to 6h")
		flags.StringVar(&opts.step, "step", "", "Step between elements, negative for descending, defaults to (end - start)/250")
		flags.StringVarP(&opts.rawDirection, "direction", "d", "asc", "Direction of iteration")
		errors.Must(true, cmd.RegisterFlagCompletionFunc("direction", cobra.FixedCompletions(
			slices.Sorted(maps.Keys(directionMap)),
			cobra.ShellCompDirectiveDefault,
		)))
		flags.StringVar(&opts.instantType, "type", "", "Instant implementation (time or otlp)")
		flags.IntVarP(&opts.limit, "limit", "l", -1, "Limit number of elements")
		opts.render.Register(flags)
	}
	return cmd
}

func printRange[T chrono.Instant[T]](
	w io.Writer,
	r renderer[T],
	first, last T,
	step time.Duration,
	limit int,
) (int, error) {
	p, err := progression.FromClosedRange(first, last, step)
	if err != nil {
		return 0, errors.Wrap(err, "create progression")
	}
	iter := iterators.Limit(p.Values(), limit)
	defer func() {
		_ = iter.Close()
	}()

	n, err := r.Render(w, p, iter)
	if err != nil {
		return n, errors.Wrap(err, "render")
	}
	return n, nil
}
