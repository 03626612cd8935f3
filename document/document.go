// Package document loads raw specification bytes into a generic ordered
// document tree. No schema is imposed at load time; downstream consumers
// treat every field as optional.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/specsheet/sheeterrors"
)

// Format identifies the declared encoding of the input bytes.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Tree is a generic recursive document value: a yaml.MapSlice (ordered
// mapping), a []any sequence, or a scalar.
type Tree = any

// ParseFormat maps a format tag to a Format. "yml" and "yaml" are synonyms.
// Any other tag is rejected with an UnsupportedFormatError.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(tag) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &sheeterrors.UnsupportedFormatError{Tag: tag}
	}
}

// FormatFromPath derives the format tag from a filename extension. Only the
// presentation shells call this; the core itself never inspects filenames.
func FormatFromPath(path string) (Format, error) {
	idx := strings.LastIndex(path, ".")
	if idx == -1 {
		return "", &sheeterrors.UnsupportedFormatError{Tag: ""}
	}
	return ParseFormat(path[idx+1:])
}

// Load parses raw bytes into a document tree according to the declared
// format. Mappings decode into yaml.MapSlice so traversal order matches
// document key order for both formats.
func Load(data []byte, format Format) (Tree, error) {
	switch format {
	case FormatJSON:
		return loadJSON(data)
	case FormatYAML:
		return loadYAML(data)
	default:
		return nil, &sheeterrors.UnsupportedFormatError{Tag: string(format)}
	}
}

// loadJSON checks the bytes against the strict JSON grammar first, then
// builds the ordered tree with the YAML decoder (JSON is a YAML subset, and
// the shared decoder guarantees identical trees for both formats).
func loadJSON(data []byte) (Tree, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		line, col := positionAt(data, offsetOf(err))
		return nil, &sheeterrors.ParseError{
			Format: string(FormatJSON),
			Line:   line,
			Column: col,
			Cause:  err,
		}
	}
	tree, err := loadYAML(data)
	if err != nil {
		return nil, &sheeterrors.ParseError{Format: string(FormatJSON), Cause: err}
	}
	return tree, nil
}

func loadYAML(data []byte) (Tree, error) {
	var tree any
	if err := yaml.UnmarshalWithOptions(data, &tree, yaml.UseOrderedMap()); err != nil {
		return nil, &sheeterrors.ParseError{
			Format: string(FormatYAML),
			Cause:  err,
		}
	}
	return tree, nil
}

// offsetOf extracts the byte offset from an encoding/json error, 0 if the
// error carries none.
func offsetOf(err error) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Offset
	}
	return 0
}

// positionAt converts a byte offset into a 1-based line and column.
func positionAt(data []byte, offset int64) (line, col int) {
	if offset <= 0 || offset > int64(len(data)) {
		return 0, 0
	}
	head := data[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	col = len(head) - bytes.LastIndexByte(head, '\n')
	return line, col
}
