package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/go-faster/jx"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/go-faster/timeprog/internal/chrono"
	"github.com/go-faster/timeprog/internal/iterators"
	"github.com/go-faster/timeprog/internal/progression"
)

type renderOptions struct {
	output   string
	layout   string
	location *time.Location
	count    bool
	color    bool
}

func (opts *renderOptions) Register(set *pflag.FlagSet) {
	set.StringVarP(&opts.output, "output", "o", "", "Output format (text or json), defaults to config")
	set.StringVar(&opts.layout, "layout", "", "Go time layout of text output, defaults to RFC3339Nano")
	set.BoolVarP(&opts.count, "count", "c", false, "Print only the number of elements")
	disableColor := os.Getenv("NO_COLOR") != "" ||
		os.Getenv("TERM") == "dumb" ||
		(!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()))
	set.BoolVar(&opts.color, "color", !disableColor, "Enable color")
}

// renderer writes progression elements.
type renderer[T chrono.Instant[T]] struct {
	opts   renderOptions
	asTime func(T) time.Time
}

func (r renderer[T]) format(buf []byte, t T) []byte {
	tt := r.asTime(t)
	if r.opts.location != nil {
		tt = tt.In(r.opts.location)
	}
	return tt.AppendFormat(buf, r.opts.layout)
}

// Render writes elements of iterator and returns the number of written
// elements.
func (r renderer[T]) Render(w io.Writer, p progression.Progression[T], iter iterators.Iterator[T]) (int, error) {
	switch {
	case r.opts.output == outputJSON:
		return r.renderJSON(w, p, iter)
	case r.opts.count:
		var n int
		if err := iterators.ForEach(iter, func(T) error {
			n++
			return nil
		}); err != nil {
			return n, err
		}
		buf := strconv.AppendInt(nil, int64(n), 10)
		_, err := w.Write(append(buf, '\n'))
		return n, err
	default:
		return r.renderText(w, iter)
	}
}

func (r renderer[T]) renderText(w io.Writer, iter iterators.Iterator[T]) (n int, _ error) {
	ts := color.New(color.FgBlue)
	if r.opts.color {
		ts.EnableColor()
	} else {
		ts.DisableColor()
	}

	var buf []byte
	err := iterators.ForEach(iter, func(t T) error {
		buf = r.format(buf[:0], t)
		if _, err := ts.Fprintln(w, string(buf)); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

func (r renderer[T]) renderJSON(w io.Writer, p progression.Progression[T], iter iterators.Iterator[T]) (n int, _ error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	var buf []byte
	e.ObjStart()
	e.FieldStart("range")
	e.Str(p.String())
	e.FieldStart("empty")
	e.Bool(p.IsEmpty())
	e.FieldStart("step")
	e.Str(p.Step().String())
	if !r.opts.count {
		e.FieldStart("values")
		e.ArrStart()
	}
	if err := iterators.ForEach(iter, func(t T) error {
		if !r.opts.count {
			buf = r.format(buf[:0], t)
			e.Str(string(buf))
		}
		n++
		return nil
	}); err != nil {
		return n, err
	}
	if !r.opts.count {
		e.ArrEnd()
	}
	e.FieldStart("count")
	e.Int(n)
	e.ObjEnd()

	_, err := w.Write(append(e.Bytes(), '\n'))
	return n, err
}
