package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3"

	"dategen/internal/adapters/cli"
	"dategen/internal/application"
	"dategen/internal/config"
	"dategen/internal/infrastructure/i18n"
	"dategen/internal/infrastructure/logging"
	"dategen/internal/infrastructure/sink"
	"dategen/internal/infrastructure/source"
	"dategen/internal/ports/output"
)

var errStale = errors.New("generated translation data is out of date")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errStale) {
			fmt.Fprintf(os.Stderr, "dategen: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dategen", flag.ContinueOnError)

	var (
		flRoot       = fs.String("root", "", "repository root holding dateparser_data/ and dateparser/ (default $DATEGEN_ROOT or ..)")
		flInMemory   = fs.Bool("in-memory", false, "capture generated files in memory and list them instead of writing")
		flCheck      = fs.Bool("check", false, "compare generated files with the ones on disk and fail when they differ")
		flExclusions = fs.String("exclusions", "", "TOML exclusion list replacing the built-in one")
		flLang       = fs.String("lang", "", "locale of the run report (en, fr)")
		flDebug      = fs.Bool("debug", false, "use a debug logger")
	)
	_ = fs.String("config", "", "config file (optional)")

	if err := ff.Parse(fs, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}

	var opts []config.Option
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			opts = append(opts, func(c *config.Config) { c.Root = *flRoot })
		case "in-memory":
			opts = append(opts, func(c *config.Config) { c.InMemory = *flInMemory })
		case "exclusions":
			opts = append(opts, func(c *config.Config) { c.ExclusionsFile = *flExclusions })
		case "lang":
			opts = append(opts, func(c *config.Config) { c.ReportLocale = *flLang })
		case "debug":
			opts = append(opts, func(c *config.Config) {
				if *flDebug {
					c.LogLevel = "debug"
				}
			})
		}
	})

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Level(), cfg.LogColored)
	slog.SetDefault(logger)
	for _, code := range config.UnrecognizedExclusions(cfg.Exclusions) {
		logger.Warn("exclusion is not a valid language tag", "code", code)
	}

	capture := cfg.InMemory || *flCheck
	var out output.Sink = sink.NewDisk(logger)
	if capture {
		out = sink.NewMemory()
	}

	layout := cfg.Layout()
	gen := application.NewGenerator(layout, source.New(os.DirFS(cfg.Root)), out, logger)
	summary, files, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	catalog, err := i18n.NewCatalog(logger)
	if err != nil {
		return err
	}
	reporter := cli.NewReporter(os.Stdout, catalog, cfg.ReportLocale)
	if !*flCheck {
		reporter.Summary(summary, files, cfg.InMemory)
		return nil
	}

	stale, err := application.Diff(layout, files, os.DirFS(cfg.Root))
	if err != nil {
		return err
	}
	reporter.Check(stale)
	if len(stale) > 0 {
		logger.Error("generated translation data is out of date", "files", len(stale))
		return errStale
	}
	return nil
}
