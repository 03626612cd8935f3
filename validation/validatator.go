package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed request-schema.json
var schemaBytes []byte

var schema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)

	var object any

	if err := json.Unmarshal(schemaBytes, &object); err != nil {
		panic(err)
	}

	if err := compiler.AddResource("request-schema.json", object); err != nil {
		panic(err)
	}

	schema = compiler.MustCompile("request-schema.json")
}

// Validate checks a conversion request envelope against the embedded
// schema. It validates the envelope shape only, never the specification
// document carried inside it.
func Validate(requestBytes []byte) error {
	var request any

	if err := json.Unmarshal(requestBytes, &request); err != nil {
		return fmt.Errorf("unable to parse request: %w", err)
	}

	return schema.Validate(request)
}
