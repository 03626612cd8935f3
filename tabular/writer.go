// Package tabular serializes flat records into a delimited text artifact
// with an explicit caller-supplied column order.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/masnyjimmy/specsheet/sheeterrors"
)

// Record is one output row keyed by column name. Values are scalars; absent
// columns render as empty cells.
type Record map[string]any

// Write emits a header line with the given column order, then one line per
// record in input order. Every record key must appear in columns; an extra
// key is an error rather than a silent drop, so extractor/writer drift
// surfaces loudly. Rows are streamed one at a time rather than buffered.
func Write(w io.Writer, columns []string, records []Record) error {
	known := make(map[string]int, len(columns))
	for idx, column := range columns {
		known[column] = idx
	}

	out := csv.NewWriter(w)

	if err := out.Write(columns); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for idx := range row {
			row[idx] = ""
		}
		for key, value := range record {
			idx, ok := known[key]
			if !ok {
				return fmt.Errorf("record key %q is not in the declared column order", key)
			}
			row[idx] = cell(value)
		}
		if err := out.Write(row); err != nil {
			return err
		}
		out.Flush()
		if err := out.Error(); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}

// WriteFile writes the artifact atomically: rows go to a temporary file in
// the destination directory, which is renamed over the final path only after
// the full record sequence is written without error. A failed run leaves no
// partial artifact behind.
func WriteFile(path string, columns []string, records []Record) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return &sheeterrors.IOError{Path: path, Op: "create", Cause: err}
	}
	tmpName := tmp.Name()

	if err := Write(tmp, columns, records); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &sheeterrors.IOError{Path: path, Op: "write", Cause: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &sheeterrors.IOError{Path: path, Op: "write", Cause: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &sheeterrors.IOError{Path: path, Op: "rename", Cause: err}
	}

	return nil
}

// cell renders one scalar value to its textual cell form. Booleans use the
// fixed True/False tokens.
func cell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
