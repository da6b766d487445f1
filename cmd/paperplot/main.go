// Paperplot renders figure descriptions and smooths series files.
//
//	paperplot [-v] figure.yaml ...
//	paperplot -smooth size,step [-o out.txt] in.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vdobler/paperplot"
	"github.com/vdobler/paperplot/series"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("paperplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log debug messages")
	smooth := fs.String("smooth", "", "apply a sliding-window mean `size,step` to a series file")
	out := fs.String("o", "", "output file for -smooth (default: stdout)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: paperplot [-v] figure.yaml ...")
		fmt.Fprintln(stderr, "       paperplot -smooth size,step [-o out.txt] in.txt")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	loader := &series.Loader{Log: log}

	if *smooth != "" {
		w, err := parseWindow(*smooth)
		if err != nil {
			log.Error("bad -smooth", "err", err)
			return 2
		}
		if fs.NArg() != 1 {
			log.Error("-smooth takes exactly one input file")
			return 2
		}
		if err := smoothFile(log, loader, fs.Arg(0), *out, w); err != nil {
			log.Error("smoothing failed", "input", fs.Arg(0), "err", err)
			return 1
		}
		return 0
	}

	failed := 0
	for _, path := range fs.Args() {
		if err := render(loader, path); err != nil {
			log.Error("cannot render figure", "spec", path, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func render(loader *series.Loader, path string) error {
	spec, err := paperplot.LoadSpec(path)
	if err != nil {
		return err
	}
	fig, err := paperplot.Build(spec, loader)
	if err != nil {
		return err
	}
	return fig.Save(spec.OutputPath())
}

// parseWindow parses "size,step"; a missing step means 1.
func parseWindow(s string) (series.Window, error) {
	size, step, found := strings.Cut(s, ",")
	w := series.Window{Step: 1}
	var err error
	if w.Size, err = strconv.Atoi(strings.TrimSpace(size)); err != nil {
		return w, fmt.Errorf("window size: %w", err)
	}
	if found {
		if w.Step, err = strconv.Atoi(strings.TrimSpace(step)); err != nil {
			return w, fmt.Errorf("window step: %w", err)
		}
	}
	return w, w.Check()
}

func smoothFile(log *slog.Logger, loader *series.Loader, in, out string, w series.Window) error {
	s, _, err := loader.ReadFile(in)
	if err != nil {
		return err
	}
	smoothed, err := series.WindowedMean(s, w)
	if err != nil {
		return err
	}
	log.Info("smoothed series", "input", in, "window", w.String(),
		"n", s.Len(), "mean", s.Mean(),
		"out_n", smoothed.Len(), "min", smoothed.Min(), "max", smoothed.Max())
	if out == "" {
		return series.Write(os.Stdout, smoothed)
	}
	if err := series.WriteFile(out, smoothed); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
