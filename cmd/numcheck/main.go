package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"numericadt/pkg/conformance"
	num "numericadt/pkg/numeric"
)

var (
	logPath string
	kinds   []string
	samples int
	seed    uint64
	workers int
	asJSON  bool
	verbose bool
	logCfg  slog.HandlerOptions = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

func cmdLineParse() {
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stdout")
	pflag.StringSliceVarP(&kinds, "kinds", "k", []string{"real", "complex", "rational", "decimal"}, "numeric variants to check")
	pflag.IntVarP(&samples, "samples", "n", 1000, "number of random samples per variant")
	pflag.Uint64VarP(&seed, "seed", "s", 1, "seed for sample generation")
	pflag.IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of samples evaluated concurrently")
	pflag.BoolVarP(&asJSON, "json", "j", false, "print reports as JSON")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

func check(ctx context.Context, kind string, opts ...conformance.Option) (conformance.Report, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "real":
		return conformance.Check[num.Real](ctx, conformance.RealGenerator, opts...)
	case "complex":
		return conformance.Check[num.Complex](ctx, conformance.ComplexGenerator, opts...)
	case "rational":
		return conformance.Check[num.Rational](ctx, conformance.RationalGenerator, opts...)
	case "decimal":
		return conformance.Check[num.Decimal](ctx, conformance.DecimalGenerator, opts...)
	}
	return conformance.Report{}, errors.Errorf("unknown numeric kind %q", kind)
}

func printText(w io.Writer, reports []conformance.Report) {
	p := message.NewPrinter(language.English)
	for _, r := range reports {
		status := "ok"
		if !r.Passed() {
			status = "FAIL"
		}
		p.Fprintf(w, "%-8s %-4s %d samples, seed %d\n", r.Kind, status, r.Samples, r.Seed)
		if r.GeneratorFailed > 0 {
			p.Fprintf(w, "  %-24s %8d failed\n", "generator", r.GeneratorFailed)
			p.Fprintf(w, "  %-24s %s\n", "", r.GeneratorExample)
		}
		for _, prop := range r.Properties {
			p.Fprintf(w, "  %-24s %8d checked %8d failed\n", prop.Name, prop.Checked, prop.Failed)
			if prop.Example != "" {
				p.Fprintf(w, "  %-24s %s\n", "", prop.Example)
			}
		}
	}
}

func main() {
	cmdLineParse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	var output = os.Stdout
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", logPath, err)
		}
		defer f.Close()
		output = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &logCfg)))

	opts := []conformance.Option{
		conformance.WithSamples(samples),
		conformance.WithSeed(seed),
		conformance.WithWorkers(workers),
	}

	reports := make([]conformance.Report, 0, len(kinds))
	for _, kind := range kinds {
		report, err := check(ctx, kind, opts...)
		if err != nil {
			slog.Error("Error checking variant", "kind", kind, "error", err)
			stop()
			os.Exit(2)
		}
		reports = append(reports, report)
	}

	if asJSON {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			slog.Error("Error encoding reports", "error", err)
			stop()
			os.Exit(2)
		}
		fmt.Println(string(data))
	} else {
		printText(os.Stdout, reports)
	}

	for _, r := range reports {
		if !r.Passed() {
			stop()
			os.Exit(1)
		}
	}
}
