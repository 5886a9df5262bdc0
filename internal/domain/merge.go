package domain

import "dategen/internal/domain/entities"

// NameKey is the record field holding the language's display name.
const NameKey = "name"

// Overlay combines primary with override, override taking precedence.
//
// Mappings present on both sides are combined recursively and sequences are
// concatenated, primary items first. For any other pair, including a shape
// mismatch, the override value wins. Keys keep primary order, followed by
// keys only override defines.
func Overlay(primary, override *entities.Record) *entities.Record {
	return combine(primary, override, true)
}

// Underlay places base beneath record so base only fills gaps. Mappings and
// sequences combine as in Overlay; any other conflict keeps record's value.
func Underlay(record, base *entities.Record) *entities.Record {
	return combine(record, base, false)
}

// DefaultName sets the name field to language unless the record has one.
func DefaultName(r *entities.Record, language string) {
	if !r.Has(NameKey) {
		r.Set(NameKey, language)
	}
}

func combine(primary, secondary *entities.Record, secondaryWins bool) *entities.Record {
	out := entities.NewRecord()
	for _, key := range primary.Keys() {
		pv, _ := primary.Get(key)
		sv, ok := secondary.Get(key)
		if !ok {
			out.Set(key, entities.CloneValue(pv))
			continue
		}
		out.Set(key, combineValue(pv, sv, secondaryWins))
	}
	for _, key := range secondary.Keys() {
		if primary.Has(key) {
			continue
		}
		sv, _ := secondary.Get(key)
		out.Set(key, entities.CloneValue(sv))
	}
	return out
}

func combineValue(pv, sv any, secondaryWins bool) any {
	switch p := pv.(type) {
	case []any:
		if s, ok := sv.([]any); ok {
			joined := make([]any, 0, len(p)+len(s))
			for _, item := range p {
				joined = append(joined, entities.CloneValue(item))
			}
			for _, item := range s {
				joined = append(joined, entities.CloneValue(item))
			}
			return joined
		}
	case *entities.Record:
		if s, ok := sv.(*entities.Record); ok {
			return combine(p, s, secondaryWins)
		}
	}
	if secondaryWins {
		return entities.CloneValue(sv)
	}
	return entities.CloneValue(pv)
}
