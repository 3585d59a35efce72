package normalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/docstream/docstream/internal/entity"
)

// reconcileToleranceCents is the slack allowed when checking that amounts on
// the document add up (rounding on printed invoices).
const reconcileToleranceCents = 2

var (
	reCurrency = regexp.MustCompile(`^[A-Z]{3}$`)
	// loose IBAN check: country code, check digits, plausible length
	reIBAN = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{10,30}$`)
)

// date layouts the models actually produce, most specific first
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

// Normalizer coerces raw model output into the canonical extraction payload.
type Normalizer struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// Normalize validates and coerces the raw AI output. Field-level coercion
// failures become nulls plus a flag; only structurally broken JSON errors
// out. Partial extraction beats total failure.
func (n *Normalizer) Normalize(raw json.RawMessage) (entity.ExtractionPayload, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return entity.ExtractionPayload{}, nil, fmt.Errorf("decode raw extraction: %w", err)
	}

	var flags []string
	flag := func(f string) { flags = append(flags, f) }

	p := entity.ExtractionPayload{}
	p.VendorName = cleanString(m["vendor_name"])
	p.InvoiceNumber = cleanString(m["invoice_number"])
	p.InvoiceDate = coerceDate(m["invoice_date"], "invoice_date", flag)
	p.DueDate = coerceDate(m["due_date"], "due_date", flag)
	p.TotalAmount = coerceAmount(m["total_amount"], "total_amount", flag)
	p.VATAmount = coerceAmount(m["vat_amount"], "vat_amount", flag)
	p.VATPercentage = coerceAmount(m["vat_percentage"], "vat_percentage", flag)
	p.IBAN = coerceIBAN(m["iban"], flag)

	if cur := cleanString(m["currency"]); cur != nil {
		c := strings.ToUpper(*cur)
		if reCurrency.MatchString(c) {
			p.Currency = &c
		}
	}
	if p.Currency == nil {
		flag(entity.AnomalyMissingCurrency)
	}

	p.LineItems = coerceLineItems(m["line_items"], flag)

	n.reconcile(&p, flag)

	p.Confidence = scoreConfidence(m["confidence"], &p, flags)

	n.logger.Debug("normalize.ok",
		"confidence", p.Confidence,
		"anomalies", len(flags),
		"line_items", len(p.LineItems),
	)
	return p, flags, nil
}

// reconcile cross-checks the stated amounts and flags inconsistencies. Flags
// never block storage; they lower confidence and surface to the caller.
func (n *Normalizer) reconcile(p *entity.ExtractionPayload, flag func(string)) {
	total, haveTotal := centsOf(p.TotalAmount)
	vat, haveVAT := centsOf(p.VATAmount)
	pct, havePct := centsOf(p.VATPercentage)

	// VAT check: vat should be net * pct, where net = total - vat
	if haveTotal && haveVAT && havePct && pct > 0 {
		net := total - vat
		expected := (net*pct + 5000) / 10000 // pct carries two implied decimals
		if abs(expected-vat) > reconcileToleranceCents {
			flag(entity.AnomalyVATMismatch)
		}
	}

	// line items should sum to the stated total
	if haveTotal && len(p.LineItems) > 0 {
		var sum int64
		counted := 0
		for _, item := range p.LineItems {
			if c, ok := centsOf(item.Total); ok {
				sum += c
				counted++
			}
		}
		if counted > 0 && abs(sum-total) > reconcileToleranceCents {
			flag(entity.AnomalyLineItemMismatch)
		}
	}
}

func coerceAmount(v any, field string, flag func(string)) *string {
	if v == nil {
		return nil
	}
	out := CanonicalAmount(v)
	if out == nil {
		flag(field + "_invalid")
	}
	return out
}

func coerceDate(v any, field string, flag func(string)) *string {
	s := cleanString(v)
	if s == nil {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	flag(field + "_invalid")
	return nil
}

func coerceIBAN(v any, flag func(string)) *string {
	s := cleanString(v)
	if s == nil {
		return nil
	}
	iban := strings.ToUpper(strings.ReplaceAll(*s, " ", ""))
	if !reIBAN.MatchString(iban) {
		flag("iban_invalid")
		return nil
	}
	return &iban
}

func coerceLineItems(v any, flag func(string)) []entity.LineItem {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	items := make([]entity.LineItem, 0, len(list))
	for _, raw := range list {
		obj, ok := raw.(map[string]any)
		if !ok {
			flag("line_item_invalid")
			continue
		}
		item := entity.LineItem{
			Quantity:  CanonicalAmount(obj["quantity"]),
			UnitPrice: CanonicalAmount(obj["unit_price"]),
			Total:     CanonicalAmount(obj["total"]),
		}
		if desc := cleanString(obj["description"]); desc != nil {
			item.Description = *desc
		}
		items = append(items, item)
	}
	return items
}

func cleanString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}

func centsOf(s *string) (int64, bool) {
	if s == nil {
		return 0, false
	}
	return ParseCents(*s)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
