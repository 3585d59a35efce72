package entity

// LineItem is a single invoice line in the canonical extraction payload.
// Money fields are canonical decimal strings ("12.50"); nil means the model
// could not find or we could not coerce the value.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    *string `json:"quantity,omitempty"`
	UnitPrice   *string `json:"unit_price,omitempty"`
	Total       *string `json:"total,omitempty"`
}

// ExtractionPayload is the canonical structured representation of an invoice
// or receipt. All amounts are decimal strings so values round-trip without
// binary-float drift.
type ExtractionPayload struct {
	VendorName    *string    `json:"vendor_name"`
	InvoiceNumber *string    `json:"invoice_number"`
	InvoiceDate   *string    `json:"invoice_date"` // YYYY-MM-DD
	DueDate       *string    `json:"due_date"`     // YYYY-MM-DD
	TotalAmount   *string    `json:"total_amount"` // incl. VAT
	VATAmount     *string    `json:"vat_amount"`
	VATPercentage *string    `json:"vat_percentage"`
	Currency      *string    `json:"currency"` // ISO 4217
	IBAN          *string    `json:"iban"`
	LineItems     []LineItem `json:"line_items"`
	Confidence    float32    `json:"confidence"` // 0..1
}

// Anomaly flag values surfaced by the normalizer. Non-fatal: they lower
// confidence and ride along with the stored payload.
const (
	AnomalyVATMismatch      = "vat_mismatch"
	AnomalyLineItemMismatch = "line_items_mismatch"
	AnomalyMissingCurrency  = "missing_currency"
)
