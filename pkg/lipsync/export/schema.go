package export

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Schema returns the JSON Schema of Document.
func Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[Document](&jsonschema.ForOptions{})
}
