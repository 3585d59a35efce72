package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/docstream/docstream/internal/entity"
)

func normalizeJSON(t *testing.T, raw string) (entity.ExtractionPayload, []string) {
	t.Helper()
	p, flags, err := New(nil).Normalize(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return p, flags
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

func TestNormalizeHappyPath(t *testing.T) {
	p, flags := normalizeJSON(t, `{
		"vendor_name": "Coolblue B.V.",
		"invoice_number": "F2026-0042",
		"invoice_date": "2026-01-15",
		"due_date": "2026-02-14",
		"total_amount": "121,00",
		"vat_amount": "21,00",
		"vat_percentage": 21,
		"currency": "eur",
		"iban": "nl91 abna 0417 1643 00",
		"line_items": [
			{"description": "Laptop", "quantity": 1, "unit_price": "121,00", "total": "121,00"}
		],
		"confidence": 0.95
	}`)

	if len(flags) != 0 {
		t.Fatalf("expected no anomaly flags, got %v", flags)
	}
	if p.VendorName == nil || *p.VendorName != "Coolblue B.V." {
		t.Fatalf("vendor_name = %v", p.VendorName)
	}
	if p.TotalAmount == nil || *p.TotalAmount != "121.00" {
		t.Fatalf("total_amount = %v, want 121.00", p.TotalAmount)
	}
	if p.VATAmount == nil || *p.VATAmount != "21.00" {
		t.Fatalf("vat_amount = %v, want 21.00", p.VATAmount)
	}
	if p.Currency == nil || *p.Currency != "EUR" {
		t.Fatalf("currency = %v, want EUR", p.Currency)
	}
	if p.IBAN == nil || *p.IBAN != "NL91ABNA0417164300" {
		t.Fatalf("iban = %v", p.IBAN)
	}
	if len(p.LineItems) != 1 || p.LineItems[0].Description != "Laptop" {
		t.Fatalf("line_items = %+v", p.LineItems)
	}
	if p.LineItems[0].Total == nil || *p.LineItems[0].Total != "121.00" {
		t.Fatalf("line item total = %v", p.LineItems[0].Total)
	}
	if math.Abs(float64(p.Confidence)-0.95) > 1e-6 {
		t.Fatalf("confidence = %v, want 0.95", p.Confidence)
	}
}

func TestNormalizeCommaDecimal(t *testing.T) {
	p, _ := normalizeJSON(t, `{"total_amount": "6013,10", "currency": "EUR"}`)
	if p.TotalAmount == nil || *p.TotalAmount != "6013.10" {
		t.Fatalf("total_amount = %v, want 6013.10", p.TotalAmount)
	}
}

func TestNormalizeDutchDate(t *testing.T) {
	p, flags := normalizeJSON(t, `{"invoice_date": "31-12-2025", "currency": "EUR"}`)
	if p.InvoiceDate == nil || *p.InvoiceDate != "2025-12-31" {
		t.Fatalf("invoice_date = %v, want 2025-12-31", p.InvoiceDate)
	}
	if hasFlag(flags, "invoice_date_invalid") {
		t.Fatalf("unexpected invalid-date flag: %v", flags)
	}
}

func TestNormalizeBadFieldsBecomeNull(t *testing.T) {
	p, flags := normalizeJSON(t, `{
		"invoice_date": "soon",
		"total_amount": "call us",
		"iban": "not-an-iban",
		"currency": "EUR"
	}`)
	if p.InvoiceDate != nil || p.TotalAmount != nil || p.IBAN != nil {
		t.Fatalf("expected nil coerced fields, got date=%v total=%v iban=%v",
			p.InvoiceDate, p.TotalAmount, p.IBAN)
	}
	for _, want := range []string{"invoice_date_invalid", "total_amount_invalid", "iban_invalid"} {
		if !hasFlag(flags, want) {
			t.Fatalf("missing flag %q in %v", want, flags)
		}
	}
}

func TestNormalizeMissingCurrency(t *testing.T) {
	_, flags := normalizeJSON(t, `{"vendor_name": "Acme"}`)
	if !hasFlag(flags, entity.AnomalyMissingCurrency) {
		t.Fatalf("expected missing_currency flag, got %v", flags)
	}
}

func TestNormalizeVATMismatch(t *testing.T) {
	_, flags := normalizeJSON(t, `{
		"total_amount": "100.00",
		"vat_amount": "30.00",
		"vat_percentage": 21,
		"currency": "EUR"
	}`)
	if !hasFlag(flags, entity.AnomalyVATMismatch) {
		t.Fatalf("expected vat_mismatch flag, got %v", flags)
	}
}

func TestNormalizeLineItemMismatch(t *testing.T) {
	_, flags := normalizeJSON(t, `{
		"total_amount": "100.00",
		"currency": "EUR",
		"line_items": [
			{"description": "a", "total": "60.00"},
			{"description": "b", "total": "20.00"}
		]
	}`)
	if !hasFlag(flags, entity.AnomalyLineItemMismatch) {
		t.Fatalf("expected line_items_mismatch flag, got %v", flags)
	}
}

func TestNormalizeHeuristicConfidence(t *testing.T) {
	// no model confidence: vendor + total + date present scores 1.0, then one
	// missing_currency flag discounts it to 0.9
	p, flags := normalizeJSON(t, `{
		"vendor_name": "Acme",
		"total_amount": "50.00",
		"invoice_date": "2026-01-15"
	}`)
	if len(flags) != 1 || flags[0] != entity.AnomalyMissingCurrency {
		t.Fatalf("flags = %v", flags)
	}
	if math.Abs(float64(p.Confidence)-0.9) > 1e-6 {
		t.Fatalf("confidence = %v, want 0.9", p.Confidence)
	}
}

func TestNormalizeConfidenceClamped(t *testing.T) {
	p, _ := normalizeJSON(t, `{"currency": "EUR", "confidence": 1.7}`)
	if p.Confidence != 1 {
		t.Fatalf("confidence = %v, want 1", p.Confidence)
	}
}

func TestNormalizeRejectsBrokenJSON(t *testing.T) {
	if _, _, err := New(nil).Normalize(json.RawMessage(`{"vendor_name":`)); err == nil {
		t.Fatal("expected error for broken JSON")
	}
}
