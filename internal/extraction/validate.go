package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// invoiceSchema is compiled once; the schema map is static for the process
// lifetime and every upload validates against the same instance.
var invoiceSchema = mustCompileInvoiceSchema()

func mustCompileInvoiceSchema() *jsonschema.Schema {
	b, err := json.Marshal(BuildInvoiceJSONSchema())
	if err != nil {
		panic(fmt.Sprintf("marshal invoice schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("invoice.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add invoice schema: %v", err))
	}
	schema, err := compiler.Compile("invoice.json")
	if err != nil {
		panic(fmt.Sprintf("compile invoice schema: %v", err))
	}
	return schema
}

// ValidateExtraction checks that data is recognizably an extraction payload:
// a JSON object whose fields have plausible types. Field-level coercion is
// the normalizer's job, not validation's.
func ValidateExtraction(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal extraction: %w", err)
	}
	if err := invoiceSchema.Validate(v); err != nil {
		return fmt.Errorf("extraction does not match schema: %w", err)
	}
	return nil
}
