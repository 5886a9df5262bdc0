package domain

import (
	"strings"

	"dategen/internal/domain/entities"
)

const (
	// RelativePlaceholder marks the number slot in a relative-time template.
	RelativePlaceholder = "{0}"
	// RelativeCapture replaces RelativePlaceholder in generated patterns.
	RelativeCapture = `(\d+)`

	relativeTypeRegexKey = "relative-type-regex"
	localeSpecificKey    = "locale_specific"
)

// RewriteRelativePatterns turns relative-time templates into regex fragments
// by replacing every RelativePlaceholder with RelativeCapture.
//
// It rewrites the top-level relative-type-regex mapping and the one inside
// each locale_specific entry. Sequences are modified in place; items that are
// not strings, or carry no placeholder, are left alone.
func RewriteRelativePatterns(r *entities.Record) {
	rewriteRelativeData(r)

	v, ok := r.Get(localeSpecificKey)
	if !ok {
		return
	}
	locales, ok := v.(*entities.Record)
	if !ok {
		return
	}
	for _, locale := range locales.Keys() {
		info, _ := locales.Get(locale)
		if rec, ok := info.(*entities.Record); ok {
			rewriteRelativeData(rec)
		}
	}
}

func rewriteRelativeData(r *entities.Record) {
	v, ok := r.Get(relativeTypeRegexKey)
	if !ok {
		return
	}
	relative, ok := v.(*entities.Record)
	if !ok {
		return
	}
	for _, key := range relative.Keys() {
		value, _ := relative.Get(key)
		templates, ok := value.([]any)
		if !ok {
			continue
		}
		for i, item := range templates {
			if s, ok := item.(string); ok {
				templates[i] = strings.ReplaceAll(s, RelativePlaceholder, RelativeCapture)
			}
		}
	}
}
