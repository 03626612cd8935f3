package extract

import (
	"strings"

	"github.com/masnyjimmy/specsheet/document"
	"github.com/masnyjimmy/specsheet/sheeterrors"
)

// Operations flattens tree.paths into one record per path+method pair, in
// document order. A document without a paths mapping yields an empty slice.
func Operations(tree document.Tree) ([]Operation, error) {
	root, err := asMapping(tree, "document root")
	if err != nil {
		return nil, err
	}

	paths, err := mappingAt(root, "paths")
	if err != nil {
		return nil, err
	}

	records := make([]Operation, 0)

	for _, pathItem := range paths {
		path, ok := scalarString(pathItem.Key)
		if !ok {
			return nil, sheeterrors.NewShapeError("path key must be a scalar, got %T", pathItem.Key)
		}

		methods, err := asMapping(pathItem.Value, "paths."+path)
		if err != nil {
			return nil, err
		}

		for _, methodItem := range methods {
			method, ok := scalarString(methodItem.Key)
			if !ok {
				return nil, sheeterrors.NewShapeError("method key under %s must be a scalar, got %T", path, methodItem.Key)
			}

			record, err := operationRecord(path, method, methodItem.Value)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}

	return records, nil
}

func operationRecord(path, method string, node any) (Operation, error) {
	context := method + " " + path

	details, err := asMapping(node, context)
	if err != nil {
		return Operation{}, err
	}

	record := Operation{
		Path:   path,
		Method: strings.ToUpper(method),
	}

	if record.Summary, err = stringAt(details, "summary", context); err != nil {
		return Operation{}, err
	}
	if record.Description, err = stringAt(details, "description", context); err != nil {
		return Operation{}, err
	}

	params, err := sequenceAt(details, "parameters")
	if err != nil {
		return Operation{}, err
	}
	names := make([]string, 0, len(params))
	for _, param := range params {
		paramMap, err := asMapping(param, context+" parameter")
		if err != nil {
			return Operation{}, err
		}
		name, err := stringAt(paramMap, "name", context+" parameter")
		if err != nil {
			return Operation{}, err
		}
		names = append(names, name)
	}
	record.Parameters = strings.Join(names, joinSeparator)

	responses, err := mappingAt(details, "responses")
	if err != nil {
		return Operation{}, err
	}
	codes := make([]string, 0, len(responses))
	for _, response := range responses {
		code, ok := scalarString(response.Key)
		if !ok {
			return Operation{}, sheeterrors.NewShapeError("response code under %s must be a scalar, got %T", context, response.Key)
		}
		codes = append(codes, code)
	}
	record.Responses = strings.Join(codes, joinSeparator)

	return record, nil
}
