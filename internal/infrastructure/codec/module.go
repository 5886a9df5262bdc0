package codec

import (
	"fmt"

	"dategen/pkg/prettyjson"
)

// EncodingComment opens every generated module.
const EncodingComment = "# -*- coding: utf-8 -*-\n"

// DataInitModule re-exports the generated packages and the language tables
// maintained next to them.
const DataInitModule = EncodingComment +
	"from dateparser.data import date_translation_data, numeral_translation_data\n" +
	"from .languages_info import language_order, language_locale_dict"

// PackageInitModule marks a generated directory as a package.
const PackageInitModule = EncodingComment

// EncodeModule renders v as a generated module assigning the data to info.
func EncodeModule(v any) ([]byte, error) {
	data, err := prettyjson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode module: %w", err)
	}
	out := make([]byte, 0, len(EncodingComment)+len("info = ")+len(data))
	out = append(out, EncodingComment...)
	out = append(out, "info = "...)
	return append(out, data...), nil
}
