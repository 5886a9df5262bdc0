package config

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"dategen/internal/domain"
	"dategen/internal/domain/entities"
)

type Config struct {
	// Root sert de base à tous les autres répertoires. La valeur par défaut
	// suppose que l'outil est lancé depuis scripts/.
	Root string `env:"DATEGEN_ROOT" envDefault:".."`

	CLDRDateDir          string `env:"DATEGEN_CLDR_DATE_DIR"          envDefault:"dateparser_data/cldr_language_data/date_translation_data"`
	CLDRNumeralDir       string `env:"DATEGEN_CLDR_NUMERAL_DIR"       envDefault:"dateparser_data/cldr_language_data/numeral_translation_data"`
	SupplementaryDir     string `env:"DATEGEN_SUPPLEMENTARY_DIR"      envDefault:"dateparser_data/supplementary_language_data"`
	SupplementaryDateDir string `env:"DATEGEN_SUPPLEMENTARY_DATE_DIR" envDefault:"dateparser_data/supplementary_language_data/date_translation_data"`

	OutputDir        string `env:"DATEGEN_OUTPUT_DIR"         envDefault:"dateparser/data"`
	DateOutputDir    string `env:"DATEGEN_DATE_OUTPUT_DIR"    envDefault:"dateparser/data/date_translation_data"`
	NumeralOutputDir string `env:"DATEGEN_NUMERAL_OUTPUT_DIR" envDefault:"dateparser/data/numeral_translation_data"`

	// ExclusionsFile remplace la liste d'exclusions embarquée lorsqu'il est défini.
	ExclusionsFile string `env:"DATEGEN_EXCLUSIONS"`
	InMemory       bool   `env:"DATEGEN_IN_MEMORY"  envDefault:"false"`
	ReportLocale   string `env:"DATEGEN_LANG"       envDefault:"en"`

	LogLevel   string `env:"LOG_LEVEL"   envDefault:"info"`
	LogColored bool   `env:"LOG_COLORED" envDefault:"true"`

	Exclusions []entities.Exclusion `env:"-"`
}

// Option ajuste la configuration après la lecture de l'environnement et avant
// la validation. Les flags de la ligne de commande passent par là.
type Option func(*Config)

// Load charge la configuration depuis .env et l'environnement, applique opts,
// la valide puis charge la liste d'exclusions.
func Load(opts ...Option) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (CI, etc.).
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w: %w", domain.ErrInvalidConfig, err)
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	exclusions, err := LoadExclusions(cfg.ExclusionsFile)
	if err != nil {
		return nil, err
	}
	cfg.Exclusions = exclusions

	return cfg, nil
}

// validate applique toutes les règles sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("config: %w: DATEGEN_ROOT est requis et ne peut pas être vide", domain.ErrInvalidConfig)
	}

	dirs := []struct {
		name  string
		value string
	}{
		{"DATEGEN_CLDR_DATE_DIR", c.CLDRDateDir},
		{"DATEGEN_CLDR_NUMERAL_DIR", c.CLDRNumeralDir},
		{"DATEGEN_SUPPLEMENTARY_DIR", c.SupplementaryDir},
		{"DATEGEN_SUPPLEMENTARY_DATE_DIR", c.SupplementaryDateDir},
		{"DATEGEN_OUTPUT_DIR", c.OutputDir},
		{"DATEGEN_DATE_OUTPUT_DIR", c.DateOutputDir},
		{"DATEGEN_NUMERAL_OUTPUT_DIR", c.NumeralOutputDir},
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir.value) == "" {
			return fmt.Errorf("config: %w: %s est requis et ne peut pas être vide", domain.ErrInvalidConfig, dir.name)
		}
		clean := path.Clean(dir.value)
		if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
			return fmt.Errorf("config: %w: %s (%q) doit être relatif à DATEGEN_ROOT", domain.ErrInvalidConfig, dir.name, dir.value)
		}
	}

	if err := c.validateOutputs(); err != nil {
		return err
	}

	if _, err := language.Parse(c.ReportLocale); err != nil {
		return fmt.Errorf("config: %w: DATEGEN_LANG (%q) invalide: %w", domain.ErrInvalidConfig, c.ReportLocale, err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: %w: LOG_LEVEL (%q) invalide: %w", domain.ErrInvalidConfig, c.LogLevel, err)
	}

	return nil
}

// validateOutputs refuse toute disposition où la réinitialisation d'un
// répertoire de sortie effacerait la racine, une source ou une autre sortie.
func (c *Config) validateOutputs() error {
	dirs := []struct {
		name  string
		value string
		fresh bool
	}{
		{"DATEGEN_OUTPUT_DIR", path.Clean(c.OutputDir), false},
		{"DATEGEN_DATE_OUTPUT_DIR", path.Clean(c.DateOutputDir), true},
		{"DATEGEN_NUMERAL_OUTPUT_DIR", path.Clean(c.NumeralOutputDir), true},
		{"DATEGEN_CLDR_DATE_DIR", path.Clean(c.CLDRDateDir), false},
		{"DATEGEN_CLDR_NUMERAL_DIR", path.Clean(c.CLDRNumeralDir), false},
		{"DATEGEN_SUPPLEMENTARY_DIR", path.Clean(c.SupplementaryDir), false},
		{"DATEGEN_SUPPLEMENTARY_DATE_DIR", path.Clean(c.SupplementaryDateDir), false},
	}

	for i, out := range dirs[:3] {
		if out.value == "." {
			return fmt.Errorf("config: %w: %s ne peut pas être la racine", domain.ErrInvalidConfig, out.name)
		}
		if !out.fresh {
			continue
		}
		for j, other := range dirs {
			if i == j || !within(other.value, out.value) {
				continue
			}
			return fmt.Errorf("config: %w: %s (%q) contient %s (%q), qui serait supprimé",
				domain.ErrInvalidConfig, out.name, out.value, other.name, other.value)
		}
	}
	return nil
}

// within indique si dir est parent ou se trouve sous parent (chemins nettoyés).
func within(dir, parent string) bool {
	return dir == parent || strings.HasPrefix(dir, parent+"/")
}

// Layout renvoie la disposition des répertoires et les exclusions transmises au générateur.
func (c *Config) Layout() entities.Layout {
	return entities.Layout{
		Root:                 c.Root,
		CLDRDateDir:          path.Clean(c.CLDRDateDir),
		CLDRNumeralDir:       path.Clean(c.CLDRNumeralDir),
		SupplementaryDir:     path.Clean(c.SupplementaryDir),
		SupplementaryDateDir: path.Clean(c.SupplementaryDateDir),
		OutputDir:            path.Clean(c.OutputDir),
		DateOutputDir:        path.Clean(c.DateOutputDir),
		NumeralOutputDir:     path.Clean(c.NumeralOutputDir),
		Exclusions:           c.Exclusions,
	}
}

// Level renvoie LOG_LEVEL analysé.
func (c *Config) Level() slog.Level {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.LogLevel))
	return level
}
