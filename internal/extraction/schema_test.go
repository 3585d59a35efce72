package extraction

import "testing"

func TestValidateExtractionAcceptsPartialPayload(t *testing.T) {
	// nulls and missing fields are fine; partial extraction beats failure
	valid := [][]byte{
		[]byte(`{"vendor_name": "Acme", "total_amount": "12.50"}`),
		[]byte(`{"vendor_name": null, "total_amount": null}`),
		[]byte(`{"total_amount": 12.5, "confidence": 0.8}`),
		[]byte(`{}`),
	}
	for _, data := range valid {
		if err := ValidateExtraction(data); err != nil {
			t.Fatalf("ValidateExtraction(%s): %v", data, err)
		}
	}
}

func TestValidateExtractionRejectsNonObjects(t *testing.T) {
	for _, data := range [][]byte{
		[]byte(`[]`),
		[]byte(`"just a string"`),
		[]byte(`not json at all`),
	} {
		if err := ValidateExtraction(data); err == nil {
			t.Fatalf("expected error for %s", data)
		}
	}
}
