// Command pdfoutline extracts heading outlines from PDF documents.
//
// Usage:
//
//	pdfoutline -in ./input -out ./output [-workers 4] [-format json|md|html] [-v]
//
// Every *.pdf file in the input directory (or the single input file) produces
// one output file named after the document stem. A document that fails to
// extract is logged and produces no output; the exit status is 1 when any
// document failed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/logging"
	"github.com/tsawler/pdfoutline/outline"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// options holds the parsed command line
type options struct {
	in      string
	out     string
	workers int
	format  outline.ExportFormat
	verbose bool
	layout  layout.Config
	dedupe  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("pdfoutline", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := layout.DefaultConfig()
	opts := options{layout: defaults}
	var format string
	var keepBoilerplate bool

	fs.StringVar(&opts.in, "in", "input", "input PDF file or directory of PDFs")
	fs.StringVar(&opts.out, "out", "output", "output directory")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "documents processed in parallel")
	fs.StringVar(&format, "format", "json", "output format: json, md or html")
	fs.BoolVar(&opts.verbose, "v", false, "log pipeline details")
	fs.BoolVar(&opts.dedupe, "dedupe", false, "drop headings repeated on the same page")
	fs.BoolVar(&keepBoilerplate, "keep-headers", false, "keep running headers and footers")
	fs.Float64Var(&opts.layout.Line.Tolerance, "line-tolerance", defaults.Line.Tolerance, "vertical tolerance (points) for line clustering")
	fs.Float64Var(&opts.layout.HeaderFooter.PositionTolerance, "position-tolerance", defaults.HeaderFooter.PositionTolerance, "position band (points) for header/footer matching")
	fs.Float64Var(&opts.layout.HeaderFooter.RecurrenceThreshold, "recurrence", defaults.HeaderFooter.RecurrenceThreshold, "fraction of pages a header/footer must repeat on")
	fs.BoolVar(&opts.layout.HeaderFooter.MatchPageNumbers, "match-page-numbers", false, "treat page number footers as one running footer")
	fs.Float64Var(&opts.layout.Block.MergeGapFactor, "merge-gap", defaults.Block.MergeGapFactor, "largest line gap, as a multiple of font size, for block merging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.workers < 1 {
		opts.workers = 1
	}

	f, err := outline.ParseExportFormat(format)
	if err != nil {
		return opts, err
	}
	opts.format = f
	opts.layout.FilterHeadersFooters = !keepBoilerplate

	return opts, opts.layout.Validate()
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "pdfoutline: %v\n", err)
		return 2
	}

	log := logging.NewTextLogger(stderr, opts.verbose)
	logging.SetLogger(log)

	docs, err := collect(opts.in)
	if err != nil {
		log.Error("cannot read input", slog.String("path", opts.in), slog.Any("error", err))
		return 1
	}
	if len(docs) == 0 {
		log.Warn("no PDF documents found", slog.String("path", opts.in))
		return 0
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		log.Error("cannot create output directory", slog.String("path", opts.out), slog.Any("error", err))
		return 1
	}

	exporter := outline.NewExporterWithConfig(outline.ExportConfig{
		Format: opts.format,
		Indent: "  ",
	})

	var failed atomic.Int32
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)

	for _, doc := range docs {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := process(doc, opts, exporter); err != nil {
				failed.Add(1)
				log.Error("extraction failed", slog.String("document", doc), slog.Any("error", err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("interrupted", slog.Any("error", err))
		return 1
	}

	n := int(failed.Load())
	log.Info("done", slog.Int("documents", len(docs)), slog.Int("failed", n))
	if n > 0 {
		return 1
	}
	return 0
}

// process extracts one document and writes <out>/<stem><ext>
func process(doc string, opts options, exporter *outline.Exporter) error {
	ext := pdfoutline.Open(doc).WithConfig(opts.layout)
	if opts.dedupe {
		ext = ext.DropDuplicates()
	}

	o, warnings, err := ext.Outline()
	if err != nil {
		return err
	}
	if len(warnings) > 0 {
		logging.Logger().Warn("document warnings",
			slog.String("document", doc),
			slog.String("warnings", pdfoutline.FormatWarnings(warnings)))
	}

	stem := strings.TrimSuffix(filepath.Base(doc), filepath.Ext(doc))
	target := filepath.Join(opts.out, stem+opts.format.FileExtension())
	if err := exporter.ExportToFile(o, target); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	logging.Logger().Info("outline written",
		slog.String("document", doc),
		slog.String("output", target),
		slog.Int("headings", len(o.Headings)))
	return nil
}

// collect returns the PDFs named by path: the file itself, or every *.pdf in
// the directory in name order
func collect(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		docs = append(docs, filepath.Join(path, entry.Name()))
	}
	sort.Strings(docs)
	return docs, nil
}
