package source

import (
	"fmt"
	"math/big"
	"strconv"

	"gopkg.in/yaml.v3"

	"dategen/internal/domain/entities"
	"dategen/pkg/prettyjson"
)

// DecodeYAML parses a YAML document into an ordered record. An empty document
// yields an empty record.
func DecodeYAML(data []byte) (*entities.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return entities.NewRecord(), nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		root = root.Content[0]
	}
	v, err := decodeNode(root)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case *entities.Record:
		return t, nil
	case entities.Scalar:
		if t == "null" {
			return entities.NewRecord(), nil
		}
	}
	return nil, fmt.Errorf("line %d: top level must be a mapping", root.Line)
}

func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.MappingNode:
		return decodeMapping(n)
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.ScalarNode:
		return decodeScalar(n)
	default:
		return nil, fmt.Errorf("line %d: unexpected node kind %d", n.Line, n.Kind)
	}
}

func decodeMapping(n *yaml.Node) (*entities.Record, error) {
	rec := entities.NewRecord()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key must be a scalar", key.Line)
		}
		if key.ShortTag() == "!!merge" {
			if err := mergeInto(rec, value); err != nil {
				return nil, err
			}
			continue
		}
		v, err := decodeNode(value)
		if err != nil {
			return nil, err
		}
		rec.Set(key.Value, v)
	}
	return rec, nil
}

// mergeInto applies a YAML merge key: keys from the merged mappings are added
// unless already present.
func mergeInto(rec *entities.Record, value *yaml.Node) error {
	sources := []*yaml.Node{value}
	if value.Kind == yaml.SequenceNode {
		sources = value.Content
	}
	for _, src := range sources {
		v, err := decodeNode(src)
		if err != nil {
			return err
		}
		merged, ok := v.(*entities.Record)
		if !ok {
			return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
		}
		for _, k := range merged.Keys() {
			if !rec.Has(k) {
				mv, _ := merged.Get(k)
				rec.Set(k, mv)
			}
		}
	}
	return nil
}

func decodeScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return entities.Scalar("null"), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return entities.Scalar(strconv.FormatBool(b)), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return entities.Scalar(strconv.FormatInt(i, 10)), nil
		}
		// Beyond int64.
		v, ok := new(big.Int).SetString(n.Value, 0)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
		}
		return entities.Scalar(v.String()), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		s, err := prettyjson.FormatFloat(f)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return entities.Scalar(s), nil
	default:
		return n.Value, nil
	}
}
