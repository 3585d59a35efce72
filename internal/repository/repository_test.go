package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"modernc.org/sqlite"

	"github.com/docstream/docstream/constants"
	"github.com/docstream/docstream/gen/ent/enttest"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/entity"
)

// sqliteDriver registers modernc's cgo-free sqlite under the driver name ent
// expects, with foreign keys enabled per connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

func openTestRepos(t *testing.T) (UserRepository, DocumentRepository, UsageRepository) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.Default()
	return NewUserRepository(client, logger),
		NewDocumentRepository(client, logger),
		NewUsageRepository(client, logger)
}

func samplePayload() entity.ExtractionPayload {
	vendor := "Coolblue B.V."
	total := "121.00"
	currency := "EUR"
	return entity.ExtractionPayload{
		VendorName:  &vendor,
		TotalAmount: &total,
		Currency:    &currency,
		Confidence:  0.9,
	}
}

func createReq(userID uuid.UUID, hash []byte, filename string) *CreateDocumentRequest {
	conf := float32(0.9)
	return &CreateDocumentRequest{
		UserID:        userID,
		ContentHash:   hash,
		Filename:      filename,
		StoredExt:     "pdf",
		Payload:       samplePayload(),
		RawExtraction: json.RawMessage(`{"vendor_name": "Coolblue B.V."}`),
		Confidence:    &conf,
		Anomalies:     nil,
		Month:         "2026-03",
	}
}

func TestUserLifecycle(t *testing.T) {
	users, _, _ := openTestRepos(t)
	ctx := context.Background()

	u, created, err := users.GetOrCreateByEmail(ctx, "a@example.com", "Alice")
	if err != nil {
		t.Fatalf("GetOrCreateByEmail: %v", err)
	}
	if !created {
		t.Fatal("first call did not create the user")
	}
	if u.Plan != constants.PlanFree {
		t.Fatalf("default plan = %s, want free", u.Plan)
	}

	again, created, err := users.GetOrCreateByEmail(ctx, "a@example.com", "Alice")
	if err != nil {
		t.Fatalf("second GetOrCreateByEmail: %v", err)
	}
	if created || again.ID != u.ID {
		t.Fatal("second call did not return the existing user")
	}

	upgraded, err := users.SetPlan(ctx, u.ID, constants.PlanPro)
	if err != nil {
		t.Fatalf("SetPlan: %v", err)
	}
	if upgraded.Plan != constants.PlanPro {
		t.Fatalf("plan = %s, want pro", upgraded.Plan)
	}

	if _, err := users.GetByID(ctx, uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("GetByID unknown = %v, want not-found", err)
	}
}

func TestCreateWithUsageDedup(t *testing.T) {
	users, docs, usage := openTestRepos(t)
	ctx := context.Background()

	u, _, err := users.GetOrCreateByEmail(ctx, "b@example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	hash := []byte("0123456789abcdef0123456789abcdef")

	doc, created, err := docs.CreateWithUsage(ctx, createReq(u.ID, hash, "invoice.pdf"))
	if err != nil {
		t.Fatalf("CreateWithUsage: %v", err)
	}
	if !created {
		t.Fatal("first create reported created=false")
	}

	count, err := usage.Current(ctx, u.ID, "2026-03")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if count != 1 {
		t.Fatalf("usage after first create = %d, want 1", count)
	}

	// same bytes under a different filename resolves to the winner and
	// leaves the usage counter untouched
	winner, created, err := docs.CreateWithUsage(ctx, createReq(u.ID, hash, "renamed.pdf"))
	if err != nil {
		t.Fatalf("second CreateWithUsage: %v", err)
	}
	if created {
		t.Fatal("second create of identical hash reported created=true")
	}
	if winner.ID != doc.ID {
		t.Fatal("second create did not return the winning row")
	}
	count, err = usage.Current(ctx, u.ID, "2026-03")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("usage after lost race = %d, want 1", count)
	}
}

func TestSameHashDifferentUsers(t *testing.T) {
	users, docs, _ := openTestRepos(t)
	ctx := context.Background()

	a, _, _ := users.GetOrCreateByEmail(ctx, "a@example.com", "")
	b, _, _ := users.GetOrCreateByEmail(ctx, "b@example.com", "")
	hash := []byte("feedfacefeedfacefeedfacefeedface")

	docA, created, err := docs.CreateWithUsage(ctx, createReq(a.ID, hash, "x.pdf"))
	if err != nil || !created {
		t.Fatalf("user a create: created=%v err=%v", created, err)
	}
	// dedup is scoped per user, not global
	if _, created, err := docs.CreateWithUsage(ctx, createReq(b.ID, hash, "x.pdf")); err != nil || !created {
		t.Fatalf("user b create: created=%v err=%v", created, err)
	}

	// the blob reference count spans owners
	if n, err := docs.CountByHash(ctx, hash); err != nil || n != 2 {
		t.Fatalf("CountByHash = %d/%v, want 2", n, err)
	}
	if _, err := docs.Delete(ctx, a.ID, docA.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n, err := docs.CountByHash(ctx, hash); err != nil || n != 1 {
		t.Fatalf("CountByHash after delete = %d/%v, want 1", n, err)
	}
}

func TestDistinctUploadsShareMonthCounter(t *testing.T) {
	users, docs, usage := openTestRepos(t)
	ctx := context.Background()

	u, _, err := users.GetOrCreateByEmail(ctx, "e@example.com", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, created, err := docs.CreateWithUsage(ctx, createReq(u.ID, []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), "a.pdf")); err != nil || !created {
		t.Fatalf("first create: created=%v err=%v", created, err)
	}
	// the second document of the month lands on the existing usage row; the
	// upsert resolves the unique(user_id, month) conflict instead of erroring
	if _, created, err := docs.CreateWithUsage(ctx, createReq(u.ID, []byte("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"), "b.pdf")); err != nil || !created {
		t.Fatalf("second create: created=%v err=%v", created, err)
	}

	count, err := usage.Current(ctx, u.ID, "2026-03")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if count != 2 {
		t.Fatalf("usage after two distinct documents = %d, want 2", count)
	}
}

func TestDocumentListGetDelete(t *testing.T) {
	users, docs, _ := openTestRepos(t)
	ctx := context.Background()

	u, _, err := users.GetOrCreateByEmail(ctx, "c@example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		hash := []byte(fmt.Sprintf("hash-%02d-hash-%02d-hash-%02d-hash-%02d", i, i, i, i))
		doc, _, err := docs.CreateWithUsage(ctx, createReq(u.ID, hash, fmt.Sprintf("doc-%d.pdf", i)))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, doc.ID)
	}

	all, total, err := docs.List(ctx, u.ID, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("List = %d rows, total %d, want 3/3", len(all), total)
	}

	page, total, err := docs.List(ctx, u.ID, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(page) != 2 {
		t.Fatalf("paged List = %d rows, total %d, want 2/3", len(page), total)
	}

	got, err := docs.Get(ctx, u.ID, ids[0])
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Payload.VendorName == nil || *got.Payload.VendorName != "Coolblue B.V." {
		t.Fatalf("payload did not round-trip: %+v", got.Payload)
	}
	if got.StoredExt != "pdf" {
		t.Fatalf("stored_ext = %q, want pdf", got.StoredExt)
	}

	// documents are owner-scoped
	if _, err := docs.Get(ctx, uuid.New(), ids[0]); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("cross-user Get = %v, want not-found", err)
	}

	deleted, err := docs.Delete(ctx, u.ID, ids[0])
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != ids[0] {
		t.Fatal("Delete returned the wrong row")
	}
	if _, err := docs.Get(ctx, u.ID, ids[0]); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Get after delete = %v, want not-found", err)
	}
	if _, total, _ := docs.List(ctx, u.ID, 0, 0); total != 2 {
		t.Fatalf("total after delete = %d, want 2", total)
	}
}

func TestUsageRecordAbsentIsZero(t *testing.T) {
	users, _, usage := openTestRepos(t)
	ctx := context.Background()

	u, _, err := users.GetOrCreateByEmail(ctx, "d@example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	count, err := usage.Current(ctx, u.ID, "2026-01")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
	rec, err := usage.Record(ctx, u.ID, "2026-01")
	if err != nil {
		t.Fatal(err)
	}
	if rec != nil {
		t.Fatalf("record = %+v, want nil", rec)
	}
}
