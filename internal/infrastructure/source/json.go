package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"dategen/internal/domain/entities"
	"dategen/pkg/prettyjson"
)

// DecodeJSON parses a JSON document whose top level is an object, keeping key
// order. A duplicated key keeps its first position and its last value.
func DecodeJSON(data []byte) (*entities.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("offset %d: top level must be an object", dec.InputOffset())
	}
	rec, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("offset %d: unexpected data after top-level object", dec.InputOffset())
	}
	return rec, nil
}

func decodeJSONValue(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("offset %d: unexpected %q", dec.InputOffset(), t)
	case string:
		return t, nil
	case json.Number:
		return jsonNumber(t)
	case bool:
		return entities.Scalar(strconv.FormatBool(t)), nil
	case nil:
		return entities.Scalar("null"), nil
	default:
		return nil, fmt.Errorf("offset %d: unexpected token %v", dec.InputOffset(), tok)
	}
}

// decodeObject reads members up to the closing brace; '{' is already consumed.
func decodeObject(dec *json.Decoder) (*entities.Record, error) {
	rec := entities.NewRecord()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("offset %d: object key must be a string", dec.InputOffset())
		}
		v, err := nextJSONValue(dec)
		if err != nil {
			return nil, err
		}
		rec.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	items := []any{}
	for dec.More() {
		v, err := nextJSONValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}

func nextJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONValue(dec, tok)
}

// jsonNumber normalizes a number: integers keep every digit, other numbers
// take their shortest float form.
func jsonNumber(n json.Number) (entities.Scalar, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return "", fmt.Errorf("invalid number %q", s)
		}
		return entities.Scalar(v.String()), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("number %q: %w", s, err)
	}
	out, err := prettyjson.FormatFloat(f)
	if err != nil {
		return "", err
	}
	return entities.Scalar(out), nil
}
