// Package prettyjson writes indented JSON in the exact layout produced by
// Python's json.dumps(v, indent=4, separators=(",", ": "), ensure_ascii=False).
//
// Mapping order is taken from the value itself, non-ASCII text is written
// literally and only quotes, backslashes and control characters are escaped.
package prettyjson

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Object is an ordered mapping.
type Object interface {
	Keys() []string
	Get(key string) (any, bool)
}

// Literal is a value written verbatim, such as a number kept as JSON text.
type Literal interface {
	Literal() string
}

const indentUnit = "    "

// Marshal encodes v. Supported values are Object, Literal, string, bool, nil,
// integer and float types, []any, []string and map[string]any (sorted keys).
func Marshal(v any) ([]byte, error) {
	var b strings.Builder
	if err := encode(&b, v, 0); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func encode(b *strings.Builder, v any, depth int) error {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case Literal:
		b.WriteString(t.Literal())
	case Object:
		return encodeObject(b, t, depth)
	case string:
		writeString(b, t)
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case int:
		b.WriteString(strconv.Itoa(t))
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case float64:
		s, err := FormatFloat(t)
		if err != nil {
			return err
		}
		b.WriteString(s)
	case []any:
		return encodeArray(b, len(t), func(i int) any { return t[i] }, depth)
	case []string:
		return encodeArray(b, len(t), func(i int) any { return t[i] }, depth)
	case map[string]any:
		return encodeObject(b, sortedMap(t), depth)
	default:
		return fmt.Errorf("prettyjson: unsupported type %T", v)
	}
	return nil
}

func encodeObject(b *strings.Builder, o Object, depth int) error {
	keys := o.Keys()
	if len(keys) == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteString("{")
	for i, key := range keys {
		if i > 0 {
			b.WriteString(",")
		}
		newline(b, depth+1)
		writeString(b, key)
		b.WriteString(": ")
		value, _ := o.Get(key)
		if err := encode(b, value, depth+1); err != nil {
			return err
		}
	}
	newline(b, depth)
	b.WriteString("}")
	return nil
}

func encodeArray(b *strings.Builder, n int, item func(int) any, depth int) error {
	if n == 0 {
		b.WriteString("[]")
		return nil
	}
	b.WriteString("[")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		newline(b, depth+1)
		if err := encode(b, item(i), depth+1); err != nil {
			return err
		}
	}
	newline(b, depth)
	b.WriteString("]")
	return nil
}

func newline(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indentUnit)
	}
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				b.WriteRune(utf8.RuneError)
			} else {
				b.WriteString(s[i : i+size])
			}
			i += size
			continue
		}
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
		i++
	}
	b.WriteByte('"')
}

// FormatFloat renders f the way Python's float repr does for finite values:
// the shortest round-trip form, always with a fraction or an exponent.
func FormatFloat(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("prettyjson: unsupported float %v", f)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[0]
		digits := strings.TrimLeft(exp[1:], "0")
		if len(digits) < 2 {
			digits = "0" + digits
		}
		return mantissa + "e" + string(sign) + digits, nil
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

type mapObject struct {
	keys []string
	m    map[string]any
}

func sortedMap(m map[string]any) mapObject {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return mapObject{keys: keys, m: m}
}

func (o mapObject) Keys() []string { return o.keys }

func (o mapObject) Get(key string) (any, bool) {
	v, ok := o.m[key]
	return v, ok
}
