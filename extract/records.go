// Package extract walks a loaded document tree and flattens it into tabular
// records. Two independent policies are provided: one row per path+method
// operation, or one row per schema property. The column sets differ, so rows
// from the two policies must never be mixed into one artifact.
package extract

import "github.com/masnyjimmy/specsheet/tabular"

// The join separator for multi-valued cells (parameters, responses, enum).
// Flattening to one string is lossy when a value itself contains the
// separator; that limitation is accepted rather than worked around.
const joinSeparator = ", "

// OperationColumns is the column order for records produced by Operations.
var OperationColumns = []string{
	"path",
	"method",
	"summary",
	"description",
	"parameters",
	"responses",
}

// SchemaPropertyColumns is the column order for records produced by
// SchemaProperties.
var SchemaPropertyColumns = []string{
	"schema_name",
	"property_name",
	"type",
	"format",
	"description",
	"example",
	"required",
	"enum",
}

// Operation is one row of the operations layout: one path+method pair.
type Operation struct {
	Path        string
	Method      string
	Summary     string
	Description string
	Parameters  string
	Responses   string
}

// Record converts the operation into the writer's generic row shape.
func (o Operation) Record() tabular.Record {
	return tabular.Record{
		"path":        o.Path,
		"method":      o.Method,
		"summary":     o.Summary,
		"description": o.Description,
		"parameters":  o.Parameters,
		"responses":   o.Responses,
	}
}

// SchemaProperty is one row of the schema layout: one property of one named
// schema.
type SchemaProperty struct {
	SchemaName   string
	PropertyName string
	Type         string
	Format       string
	Description  string
	Example      string
	Required     bool
	Enum         string
}

// Record converts the property into the writer's generic row shape.
func (p SchemaProperty) Record() tabular.Record {
	return tabular.Record{
		"schema_name":   p.SchemaName,
		"property_name": p.PropertyName,
		"type":          p.Type,
		"format":        p.Format,
		"description":   p.Description,
		"example":       p.Example,
		"required":      p.Required,
		"enum":          p.Enum,
	}
}

// Records maps a slice of typed rows into the writer's shape.
func Records[T interface{ Record() tabular.Record }](rows []T) []tabular.Record {
	out := make([]tabular.Record, len(rows))
	for idx, row := range rows {
		out[idx] = row.Record()
	}
	return out
}
