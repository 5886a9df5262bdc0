package entities

// Scalar is a non-string JSON scalar (number, boolean or null) kept as its
// JSON text so it can be written back unchanged.
type Scalar string

// Literal returns the JSON text of the scalar.
func (s Scalar) Literal() string { return string(s) }

// Record is an ordered mapping decoded from a translation file.
//
// Values are string, Scalar, []any or *Record. Keys keep the order in which
// they were first set. A nil *Record behaves as an empty record for reads.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	out := NewRecord()
	for _, key := range r.Keys() {
		out.Set(key, CloneValue(r.values[key]))
	}
	return out
}

// CloneValue deep-copies a record value. Strings and scalars are immutable
// and returned as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}
