package rut

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	dErrors "rutid/pkg/domain-errors"
)

// Schema returns the JSON Schema document for RUT, for API contracts and
// form builders that embed it.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(RUT{})

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to marshal RUT schema")
	}
	return b, nil
}
