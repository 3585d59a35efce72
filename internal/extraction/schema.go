package extraction

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the shape we expect back from the vision model. It
// is deliberately loose on value types: models return amounts as numbers or
// locale-formatted strings, and the normalizer owns coercion. Validation here
// only separates "recognizably an extraction" from garbage.
func BuildInvoiceJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"description":    map[string]any{"type": []string{"string", "null"}},
			"quantity":       looseDecimalProp(),
			"unit_price":     looseDecimalProp(),
			"total":          looseDecimalProp(),
			"vat_percentage": looseDecimalProp(),
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vendor_name":    map[string]any{"type": []string{"string", "null"}},
			"invoice_number": map[string]any{"type": []string{"string", "null"}},
			"invoice_date":   map[string]any{"type": []string{"string", "null"}},
			"due_date":       map[string]any{"type": []string{"string", "null"}},
			"total_amount":   looseDecimalProp(),
			"vat_amount":     looseDecimalProp(),
			"vat_percentage": looseDecimalProp(),
			"currency":       map[string]any{"type": []string{"string", "null"}},
			"iban":           map[string]any{"type": []string{"string", "null"}},
			"line_items": map[string]any{
				"type":  []string{"array", "null"},
				"items": lineItem,
			},
			"confidence": map[string]any{"type": []string{"number", "null"}},
		},
	}
}

func looseDecimalProp() map[string]any {
	return map[string]any{
		"type": []string{"number", "string", "null"},
	}
}
