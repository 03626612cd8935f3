// Package convert composes the pipeline: load the document, extract flat
// records with the selected policy, write the tabular artifact.
package convert

import (
	"bytes"
	"fmt"

	"github.com/masnyjimmy/specsheet/document"
	"github.com/masnyjimmy/specsheet/extract"
	"github.com/masnyjimmy/specsheet/tabular"
)

// Mode selects the extraction policy and with it the column layout of the
// artifact. The two layouts have different column sets and are never mixed.
type Mode string

const (
	// ModeSchemas emits one row per schema property. Production default.
	ModeSchemas Mode = "schemas"
	// ModeOperations emits one row per path+method operation.
	ModeOperations Mode = "operations"
)

// ParseMode maps a mode tag to a Mode.
func ParseMode(tag string) (Mode, error) {
	switch Mode(tag) {
	case ModeSchemas, ModeOperations:
		return Mode(tag), nil
	default:
		return "", fmt.Errorf("unknown mode %q: expected %q or %q", tag, ModeSchemas, ModeOperations)
	}
}

// Extract runs load + extraction and returns the records alongside their
// column order.
func Extract(data []byte, format document.Format, mode Mode) ([]tabular.Record, []string, error) {
	tree, err := document.Load(data, format)
	if err != nil {
		return nil, nil, err
	}

	switch mode {
	case ModeOperations:
		rows, err := extract.Operations(tree)
		if err != nil {
			return nil, nil, err
		}
		return extract.Records(rows), extract.OperationColumns, nil
	default:
		rows, err := extract.SchemaProperties(tree)
		if err != nil {
			return nil, nil, err
		}
		return extract.Records(rows), extract.SchemaPropertyColumns, nil
	}
}

// Convert runs the full pipeline and materializes the artifact at outPath.
// Each call is self-contained; the caller guarantees destination uniqueness
// when runs happen concurrently. A failed run produces no artifact.
func Convert(data []byte, format document.Format, mode Mode, outPath string) error {
	records, columns, err := Extract(data, format, mode)
	if err != nil {
		return err
	}
	return tabular.WriteFile(outPath, columns, records)
}

// Render runs the pipeline in memory and returns the serialized artifact
// bytes. The preview server uses this to avoid a scratch file per request.
func Render(data []byte, format document.Format, mode Mode) ([]byte, error) {
	records, columns, err := Extract(data, format, mode)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tabular.Write(&buf, columns, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
