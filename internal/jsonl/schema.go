package jsonl

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed record.schema.json
var recordSchemaJSON string

// recordSchema is compiled once; the embedded document is fixed at build time.
var recordSchema = mustCompileSchema(recordSchemaJSON)

func mustCompileSchema(doc string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("jsonl: invalid record schema: %v", err))
	}
	return schema
}

// validateLine checks one stored line against the record schema.
func validateLine(line []byte) error {
	result, err := recordSchema.Validate(gojsonschema.NewBytesLoader(line))
	if err != nil {
		return fmt.Errorf("validating record: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(errs, "; "))
}
