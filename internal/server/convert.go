package server

import (
	"encoding/hex"
	"time"

	v1 "github.com/docstream/docstream/gen/proto/docstream/v1"
	"github.com/docstream/docstream/internal/entity"
)

func toProtoUser(u *entity.User) *v1.User {
	return &v1.User{
		Id:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Plan:      string(u.Plan),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toProtoDocument(d *entity.Document) *v1.Document {
	out := &v1.Document{
		Id:             d.ID.String(),
		UserId:         d.UserID.String(),
		ContentHashHex: hex.EncodeToString(d.ContentHash),
		Filename:       d.Filename,
		Payload:        toProtoPayload(&d.Payload),
		Anomalies:      d.Anomalies,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.Confidence != nil {
		out.Confidence = *d.Confidence
	}
	return out
}

func toProtoPayload(p *entity.ExtractionPayload) *v1.ExtractionPayload {
	out := &v1.ExtractionPayload{
		VendorName:    str(p.VendorName),
		InvoiceNumber: str(p.InvoiceNumber),
		InvoiceDate:   str(p.InvoiceDate),
		DueDate:       str(p.DueDate),
		TotalAmount:   str(p.TotalAmount),
		VatAmount:     str(p.VATAmount),
		VatPercentage: str(p.VATPercentage),
		Currency:      str(p.Currency),
		Iban:          str(p.IBAN),
		Confidence:    p.Confidence,
	}
	for _, item := range p.LineItems {
		out.LineItems = append(out.LineItems, &v1.LineItem{
			Description: item.Description,
			Quantity:    str(item.Quantity),
			UnitPrice:   str(item.UnitPrice),
			Total:       str(item.Total),
		})
	}
	return out
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
