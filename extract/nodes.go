package extract

import (
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/specsheet/sheeterrors"
)

// Node access policy: a node that is absent (or explicit null) defaults to
// the empty mapping/sequence, a node that is present with the wrong shape is
// an error. The extractors never silently coerce malformed structure.

func asMapping(node any, context string) (yaml.MapSlice, error) {
	switch v := node.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		return v, nil
	default:
		return nil, sheeterrors.NewShapeError("%s must be a mapping, got %T", context, node)
	}
}

func asSequence(node any, context string) ([]any, error) {
	switch v := node.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	default:
		return nil, sheeterrors.NewShapeError("%s must be a sequence, got %T", context, node)
	}
}

func lookup(m yaml.MapSlice, key string) (any, bool) {
	for _, item := range m {
		if name, ok := scalarString(item.Key); ok && name == key {
			return item.Value, true
		}
	}
	return nil, false
}

// mappingAt resolves m[key] as a mapping, defaulting to empty when absent.
func mappingAt(m yaml.MapSlice, key string) (yaml.MapSlice, error) {
	node, _ := lookup(m, key)
	return asMapping(node, key)
}

// sequenceAt resolves m[key] as a sequence, defaulting to empty when absent.
func sequenceAt(m yaml.MapSlice, key string) ([]any, error) {
	node, _ := lookup(m, key)
	return asSequence(node, key)
}

// stringAt resolves m[key] as a scalar rendered to a string, defaulting to
// "" when absent.
func stringAt(m yaml.MapSlice, key, context string) (string, error) {
	node, found := lookup(m, key)
	if !found || node == nil {
		return "", nil
	}
	s, ok := scalarString(node)
	if !ok {
		return "", sheeterrors.NewShapeError("%s.%s must be a scalar, got %T", context, key, node)
	}
	return s, nil
}

// scalarString renders a scalar node to its textual cell form. Integers keep
// their integral rendering, floats use the shortest representation.
func scalarString(node any) (string, bool) {
	switch v := node.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case nil:
		return "", true
	default:
		return "", false
	}
}
