package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"dategen/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.Messages = (*Catalog)(nil)

// Catalog holds the run report messages of every embedded locale. English
// is the fallback.
type Catalog struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
	logger  *slog.Logger
}

// NewCatalog loads every embedded active.<locale>.toml file.
func NewCatalog(logger *slog.Logger) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "active.*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: loading %s: %w", file, err)
		}
	}

	return &Catalog{
		bundle:  bundle,
		matcher: language.NewMatcher(bundle.LanguageTags()),
		logger:  logger,
	}, nil
}

// Locales returns the locales messages exist for, English first.
func (c *Catalog) Locales() []language.Tag {
	return c.bundle.LanguageTags()
}

// Resolve maps locale to the closest supported one, English when none is
// close or locale does not parse.
func (c *Catalog) Resolve(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return c.bundle.LanguageTags()[index]
}

// Message falls back to English for a missing translation and to id itself
// for an unknown message.
func (c *Catalog) Message(locale, id string, data map[string]any) string {
	if id == "" {
		return ""
	}

	cfg := &i18n.LocalizeConfig{MessageID: id, TemplateData: data}
	if count, ok := data["Count"]; ok {
		cfg.PluralCount = count
	}

	tag := c.Resolve(locale)
	msg, err := i18n.NewLocalizer(c.bundle, tag.String(), language.English.String()).Localize(cfg)
	if err != nil {
		c.logger.Warn("i18n: message not rendered", "id", id, "locale", tag, "err", err)
		return id
	}
	return msg
}
