package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docstream/docstream/internal/entity"
	"github.com/docstream/docstream/internal/repository"
)

// columnHeaders is the fixed export header row. Dutch labels, matching the
// bookkeeping tools the exports are imported into.
var columnHeaders = []string{
	"Leverancier",
	"Factuurnummer",
	"Factuurdatum",
	"Vervaldatum",
	"Totaal (incl. BTW)",
	"BTW bedrag",
	"BTW %",
	"Valuta",
	"IBAN",
	"Regelomschrijving",
	"Aantal",
	"Stukprijs",
	"Regeltotaal",
}

// Service produces CSV, JSON and XLSX exports of a user's stored extractions.
// Output is deterministic: the same stored documents always yield the same
// bytes.
type Service struct {
	documents repository.DocumentRepository
	logger    *slog.Logger
}

func NewService(documents repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{documents: documents, logger: logger}
}

// ExportCSV returns a semicolon-delimited CSV, one row per invoice line item.
// A document without line items still contributes one row with the line
// columns blank. An empty account exports the header row only.
func (s *Service) ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()
	docs, err := s.fetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(columnHeaders); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	rows := 0
	for _, doc := range docs {
		for _, record := range documentRows(doc) {
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("csv write: %w", err)
			}
			rows++
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"user_id", userID.String(),
		"documents", len(docs),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// exportedDocument is the JSON export shape for one stored extraction.
type exportedDocument struct {
	ID         uuid.UUID                `json:"id"`
	Filename   string                   `json:"filename"`
	CreatedAt  time.Time                `json:"created_at"`
	Confidence *float32                 `json:"confidence,omitempty"`
	Anomalies  []string                 `json:"anomalies,omitempty"`
	Payload    entity.ExtractionPayload `json:"payload"`
}

// ExportJSON returns an indented JSON array of the user's extractions. An
// empty account exports "[]".
func (s *Service) ExportJSON(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()
	docs, err := s.fetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]exportedDocument, len(docs))
	for i, doc := range docs {
		out[i] = exportedDocument{
			ID:         doc.ID,
			Filename:   doc.Filename,
			CreatedAt:  doc.CreatedAt.UTC(),
			Confidence: doc.Confidence,
			Anomalies:  doc.Anomalies,
			Payload:    doc.Payload,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}

	s.logger.Info("export.json.ok",
		"user_id", userID.String(),
		"documents", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}

// ExportXLSX returns an XLSX workbook with the same columns as the CSV.
func (s *Service) ExportXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()
	docs, err := s.fetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, doc := range docs {
		for _, record := range documentRows(doc) {
			for col, v := range record {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // vendor
	_ = f.SetColWidth(sheet, "B", "B", 18) // invoice number
	_ = f.SetColWidth(sheet, "C", "D", 12) // dates
	_ = f.SetColWidth(sheet, "E", "G", 14) // amounts
	_ = f.SetColWidth(sheet, "I", "I", 24) // iban
	_ = f.SetColWidth(sheet, "J", "J", 40) // line description

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"documents", len(docs),
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// fetchAll loads every document for the user in a stable order: oldest first,
// ties broken by ID, so repeated exports of unchanged data are byte-identical.
func (s *Service) fetchAll(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error) {
	docs, _, err := s.documents.List(ctx, userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.Before(docs[j].CreatedAt)
		}
		return docs[i].ID.String() < docs[j].ID.String()
	})
	return docs, nil
}

// documentRows flattens one document to export records, one per line item.
func documentRows(doc *entity.Document) [][]string {
	p := doc.Payload
	head := []string{
		deref(p.VendorName),
		deref(p.InvoiceNumber),
		deref(p.InvoiceDate),
		deref(p.DueDate),
		deref(p.TotalAmount),
		deref(p.VATAmount),
		deref(p.VATPercentage),
		deref(p.Currency),
		deref(p.IBAN),
	}
	if len(p.LineItems) == 0 {
		return [][]string{append(head, "", "", "", "")}
	}
	rows := make([][]string, 0, len(p.LineItems))
	for _, item := range p.LineItems {
		record := make([]string, 0, len(columnHeaders))
		record = append(record, head...)
		record = append(record, item.Description, deref(item.Quantity), deref(item.UnitPrice), deref(item.Total))
		rows = append(rows, record)
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
