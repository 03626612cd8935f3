package extract

import (
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/specsheet/document"
	"github.com/masnyjimmy/specsheet/sheeterrors"
)

// SchemaProperties flattens tree.components.schemas into one record per
// schema property, in declaration order (schemas first, then properties
// within each schema). A document without components or schemas yields an
// empty slice.
//
// This is the production default layout of the end-to-end pipeline.
func SchemaProperties(tree document.Tree) ([]SchemaProperty, error) {
	root, err := asMapping(tree, "document root")
	if err != nil {
		return nil, err
	}

	components, err := mappingAt(root, "components")
	if err != nil {
		return nil, err
	}

	schemas, err := mappingAt(components, "components.schemas")
	if err != nil {
		return nil, err
	}

	records := make([]SchemaProperty, 0)

	for _, schemaItem := range schemas {
		name, ok := scalarString(schemaItem.Key)
		if !ok {
			return nil, sheeterrors.NewShapeError("schema name must be a scalar, got %T", schemaItem.Key)
		}

		schemaRecords, err := schemaProperties(name, schemaItem.Value)
		if err != nil {
			return nil, err
		}
		records = append(records, schemaRecords...)
	}

	return records, nil
}

func schemaProperties(name string, node any) ([]SchemaProperty, error) {
	schema, err := asMapping(node, "schema "+name)
	if err != nil {
		return nil, err
	}

	properties, err := mappingAt(schema, "properties")
	if err != nil {
		return nil, err
	}

	required, err := requiredNames(schema, name)
	if err != nil {
		return nil, err
	}

	records := make([]SchemaProperty, 0, len(properties))

	for _, propItem := range properties {
		propName, ok := scalarString(propItem.Key)
		if !ok {
			return nil, sheeterrors.NewShapeError("property name in schema %s must be a scalar, got %T", name, propItem.Key)
		}

		record, err := propertyRecord(name, propName, propItem.Value)
		if err != nil {
			return nil, err
		}
		record.Required = slices.Contains(required, propName)
		records = append(records, record)
	}

	return records, nil
}

// requiredNames resolves the schema's required list to property names. The
// required flag on a record is purely a membership test against this list,
// never a field read off the property itself.
func requiredNames(schema yaml.MapSlice, name string) ([]string, error) {
	seq, err := sequenceAt(schema, "required")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(seq))
	for _, entry := range seq {
		s, ok := scalarString(entry)
		if !ok {
			return nil, sheeterrors.NewShapeError("required entry in schema %s must be a scalar, got %T", name, entry)
		}
		names = append(names, s)
	}
	return names, nil
}

func propertyRecord(schemaName, propName string, node any) (SchemaProperty, error) {
	context := schemaName + "." + propName

	prop, err := asMapping(node, context)
	if err != nil {
		return SchemaProperty{}, err
	}

	record := SchemaProperty{
		SchemaName:   schemaName,
		PropertyName: propName,
	}

	if record.Type, err = stringAt(prop, "type", context); err != nil {
		return SchemaProperty{}, err
	}
	if record.Format, err = stringAt(prop, "format", context); err != nil {
		return SchemaProperty{}, err
	}
	if record.Description, err = stringAt(prop, "description", context); err != nil {
		return SchemaProperty{}, err
	}
	if record.Example, err = stringAt(prop, "example", context); err != nil {
		return SchemaProperty{}, err
	}

	enum, err := sequenceAt(prop, "enum")
	if err != nil {
		return SchemaProperty{}, err
	}
	values := make([]string, 0, len(enum))
	for _, entry := range enum {
		s, ok := scalarString(entry)
		if !ok {
			return SchemaProperty{}, sheeterrors.NewShapeError("enum value of %s must be a scalar, got %T", context, entry)
		}
		values = append(values, s)
	}
	record.Enum = strings.Join(values, joinSeparator)

	return record, nil
}
