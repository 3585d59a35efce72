package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docstream/docstream/internal/entity"
	"github.com/docstream/docstream/internal/repository"
)

type stubDocs struct {
	docs []*entity.Document
}

func (s *stubDocs) GetByHash(context.Context, uuid.UUID, []byte) (*entity.Document, error) {
	return nil, errors.New("not used")
}
func (s *stubDocs) CreateWithUsage(context.Context, *repository.CreateDocumentRequest) (*entity.Document, bool, error) {
	return nil, false, errors.New("not used")
}
func (s *stubDocs) CountByHash(context.Context, []byte) (int, error) {
	return len(s.docs), nil
}
func (s *stubDocs) List(context.Context, uuid.UUID, int, int) ([]*entity.Document, int, error) {
	return s.docs, len(s.docs), nil
}
func (s *stubDocs) Get(context.Context, uuid.UUID, uuid.UUID) (*entity.Document, error) {
	return nil, errors.New("not used")
}
func (s *stubDocs) Delete(context.Context, uuid.UUID, uuid.UUID) (*entity.Document, error) {
	return nil, errors.New("not used")
}

func strp(s string) *string { return &s }

func sampleDocs() []*entity.Document {
	conf := float32(0.92)
	return []*entity.Document{
		{
			ID:       uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Filename: "later.pdf",
			Payload: entity.ExtractionPayload{
				VendorName:  strp("Bol.com"),
				TotalAmount: strp("49.99"),
				Currency:    strp("EUR"),
			},
			CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Filename:   "earlier.pdf",
			Confidence: &conf,
			Payload: entity.ExtractionPayload{
				VendorName:    strp("Coolblue B.V."),
				InvoiceNumber: strp("F2026-0042"),
				InvoiceDate:   strp("2026-01-15"),
				TotalAmount:   strp("121.00"),
				VATAmount:     strp("21.00"),
				VATPercentage: strp("21.00"),
				Currency:      strp("EUR"),
				IBAN:          strp("NL91ABNA0417164300"),
				LineItems: []entity.LineItem{
					{Description: "Laptop", Quantity: strp("1.00"), UnitPrice: strp("100.00"), Total: strp("100.00")},
					{Description: "Muis", Quantity: strp("1.00"), UnitPrice: strp("21.00"), Total: strp("21.00")},
				},
			},
			CreatedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportCSVLayout(t *testing.T) {
	svc := NewService(&stubDocs{docs: sampleDocs()}, nil)

	data, err := svc.ExportCSV(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	wantHeader := "Leverancier;Factuurnummer;Factuurdatum;Vervaldatum;Totaal (incl. BTW);BTW bedrag;BTW %;Valuta;IBAN;Regelomschrijving;Aantal;Stukprijs;Regeltotaal"
	if lines[0] != wantHeader {
		t.Fatalf("header = %q, want %q", lines[0], wantHeader)
	}
	// two line items for the older document plus one row for the newer one
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %v", len(lines), lines)
	}
	// oldest document first
	if !strings.HasPrefix(lines[1], "Coolblue B.V.;F2026-0042;2026-01-15;;121.00;21.00;21.00;EUR;NL91ABNA0417164300;Laptop;1.00;100.00;100.00") {
		t.Fatalf("first data row = %q", lines[1])
	}
	if !strings.Contains(lines[2], ";Muis;") {
		t.Fatalf("second data row = %q", lines[2])
	}
	// document without line items still gets one row, line columns blank
	if !strings.HasPrefix(lines[3], "Bol.com;;;;49.99;;;EUR;;;;;") {
		t.Fatalf("third data row = %q", lines[3])
	}
}

func TestExportCSVEmptyAccount(t *testing.T) {
	svc := NewService(&stubDocs{}, nil)
	data, err := svc.ExportCSV(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}

func TestExportCSVDeterministic(t *testing.T) {
	svc := NewService(&stubDocs{docs: sampleDocs()}, nil)
	first, err := svc.ExportCSV(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.ExportCSV(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("repeated CSV exports are not byte-identical")
	}
}

func TestExportJSONShape(t *testing.T) {
	svc := NewService(&stubDocs{docs: sampleDocs()}, nil)
	data, err := svc.ExportJSON(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d documents, want 2", len(out))
	}
	if out[0]["filename"] != "earlier.pdf" {
		t.Fatalf("first document = %v, want oldest first", out[0]["filename"])
	}
	if !bytes.HasPrefix(data, []byte("[\n  {")) {
		t.Fatal("export is not indented")
	}
}

func TestExportJSONEmptyAccount(t *testing.T) {
	svc := NewService(&stubDocs{}, nil)
	data, err := svc.ExportJSON(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("empty export = %q, want []", data)
	}
}
