package application

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"

	"dategen/internal/domain"
	"dategen/internal/domain/entities"
	"dategen/internal/infrastructure/codec"
	"dategen/internal/ports/input"
	"dategen/internal/ports/output"
)

const (
	cldrExt          = ".json"
	supplementaryExt = ".yaml"
	moduleExt        = ".py"
	initModule       = "__init__.py"
	baseDataFile     = "base_data.yaml"
)

var _ input.GenerateUseCase = (*Generator)(nil)

// Generator builds the date and numeral translation modules.
type Generator struct {
	layout entities.Layout
	source output.RecordSource
	sink   output.Sink
	logger *slog.Logger
}

func NewGenerator(
	layout entities.Layout,
	source output.RecordSource,
	sink output.Sink,
	logger *slog.Logger,
) *Generator {
	return &Generator{
		layout: layout,
		source: source,
		sink:   sink,
		logger: logger,
	}
}

// Generate runs the whole conversion. The returned map holds whatever the
// sink captured: every generated file for a memory sink, nothing for a disk
// sink. The first error aborts the run.
func (g *Generator) Generate(ctx context.Context) (*entities.Summary, map[string][]byte, error) {
	summary := &entities.Summary{}

	outputDir := g.target(g.layout.OutputDir)
	dateDir := g.target(g.layout.DateOutputDir)
	numeralDir := g.target(g.layout.NumeralOutputDir)

	if err := g.sink.Prepare(ctx, outputDir, false); err != nil {
		return nil, nil, err
	}
	if err := g.sink.Prepare(ctx, dateDir, true); err != nil {
		return nil, nil, err
	}

	if err := g.writeDateModules(ctx, summary); err != nil {
		return nil, nil, err
	}

	if err := g.sink.Prepare(ctx, numeralDir, true); err != nil {
		return nil, nil, err
	}
	if err := g.writeNumeralModules(ctx, summary); err != nil {
		return nil, nil, err
	}

	inits := []struct {
		path string
		text string
	}{
		{filepath.Join(outputDir, initModule), codec.DataInitModule},
		{filepath.Join(dateDir, initModule), codec.PackageInitModule},
		{filepath.Join(numeralDir, initModule), codec.PackageInitModule},
	}
	for _, f := range inits {
		if err := g.write(ctx, summary, f.path, []byte(f.text)); err != nil {
			return nil, nil, err
		}
	}

	files, err := g.sink.Finalize(ctx)
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(summary.Paths)

	g.logger.Info("translation data generated",
		"date_modules", summary.DateModules,
		"numeral_modules", summary.NumeralModules,
		"excluded", len(summary.Excluded),
	)
	return summary, files, nil
}

func (g *Generator) writeDateModules(ctx context.Context, summary *entities.Summary) error {
	base, err := g.loadBaseData(ctx)
	if err != nil {
		return err
	}

	cldr, err := g.source.List(ctx, g.layout.CLDRDateDir, cldrExt)
	if err != nil {
		return err
	}
	supplementary, err := g.source.List(ctx, g.layout.SupplementaryDateDir, supplementaryExt)
	if err != nil {
		return err
	}

	languages, excluded := BuildLanguageSet(cldr, supplementary, g.layout.Exclusions)
	for _, lang := range excluded {
		g.logger.Debug("language excluded", "language", lang)
	}
	summary.Excluded = excluded

	inCLDR, inSupplementary := toSet(cldr), toSet(supplementary)
	for _, lang := range languages {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, fromCLDR := inCLDR[lang]
		_, fromSupplementary := inSupplementary[lang]

		record, err := g.dateRecord(ctx, lang, fromCLDR, fromSupplementary, base)
		if err != nil {
			return err
		}
		payload, err := codec.EncodeModule(record)
		if err != nil {
			return fmt.Errorf("language %s: %w", lang, err)
		}
		if err := g.write(ctx, summary, g.target(g.layout.DateOutputDir, lang+moduleExt), payload); err != nil {
			return err
		}
		summary.DateModules++
		g.logger.Debug("date module written", "language", lang, "cldr", fromCLDR, "supplementary", fromSupplementary)
	}
	return nil
}

// dateRecord merges one language: supplementary over CLDR, then base data
// beneath, with relative patterns rewritten last.
func (g *Generator) dateRecord(
	ctx context.Context,
	lang string,
	fromCLDR, fromSupplementary bool,
	base *entities.Record,
) (*entities.Record, error) {
	cldr := entities.NewRecord()
	supplementary := entities.NewRecord()

	var err error
	if fromCLDR {
		cldr, err = g.source.Load(ctx, path.Join(g.layout.CLDRDateDir, lang+cldrExt))
		if err != nil {
			return nil, err
		}
	}
	if fromSupplementary {
		supplementary, err = g.source.Load(ctx, path.Join(g.layout.SupplementaryDateDir, lang+supplementaryExt))
		if err != nil {
			return nil, err
		}
	}

	record := domain.Overlay(cldr, supplementary)
	domain.DefaultName(record, lang)
	record = domain.Underlay(record, base)
	domain.RewriteRelativePatterns(record)
	return record, nil
}

func (g *Generator) loadBaseData(ctx context.Context) (*entities.Record, error) {
	name := path.Join(g.layout.SupplementaryDir, baseDataFile)
	base, err := g.source.Load(ctx, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingBaseData, name)
	}
	return base, err
}

func (g *Generator) writeNumeralModules(ctx context.Context, summary *entities.Summary) error {
	languages, err := g.source.List(ctx, g.layout.CLDRNumeralDir, cldrExt)
	if err != nil {
		return err
	}
	for _, lang := range languages {
		record, err := g.source.Load(ctx, path.Join(g.layout.CLDRNumeralDir, lang+cldrExt))
		if err != nil {
			return err
		}
		payload, err := codec.EncodeModule(record)
		if err != nil {
			return fmt.Errorf("numerals %s: %w", lang, err)
		}
		if err := g.write(ctx, summary, g.target(g.layout.NumeralOutputDir, lang+moduleExt), payload); err != nil {
			return err
		}
		summary.NumeralModules++
	}
	return nil
}

func (g *Generator) write(ctx context.Context, summary *entities.Summary, target string, payload []byte) error {
	if err := g.sink.Write(ctx, target, payload); err != nil {
		return err
	}
	summary.Paths = append(summary.Paths, target)
	return nil
}

// target maps slash-separated layout elements to an output path under Root.
func (g *Generator) target(elem ...string) string {
	return filepath.Join(g.layout.Root, filepath.FromSlash(path.Join(elem...)))
}
