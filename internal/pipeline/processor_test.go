package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docstream/docstream/constants"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/entity"
	"github.com/docstream/docstream/internal/normalize"
	"github.com/docstream/docstream/internal/repository"
	"github.com/docstream/docstream/internal/storage"
)

var (
	testUserID = uuid.MustParse("5f0c0d52-7f91-4f3e-9a57-2f1f6b2a9c01")
	testNow    = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
)

type stubUsers struct {
	user *entity.User
	err  error
}

func (s *stubUsers) GetByID(context.Context, uuid.UUID) (*entity.User, error) {
	return s.user, s.err
}
func (s *stubUsers) GetOrCreateByEmail(context.Context, string, string) (*entity.User, bool, error) {
	return nil, false, errors.New("not used")
}
func (s *stubUsers) SetPlan(context.Context, uuid.UUID, constants.PlanTier) (*entity.User, error) {
	return nil, errors.New("not used")
}
func (s *stubUsers) Exists(context.Context, uuid.UUID) (bool, error) { return s.user != nil, nil }

type stubDocs struct {
	byHash      *entity.Document
	createRes   *entity.Document
	createdFlag bool
	lastCreate  *repository.CreateDocumentRequest
}

func (s *stubDocs) GetByHash(context.Context, uuid.UUID, []byte) (*entity.Document, error) {
	return s.byHash, nil
}
func (s *stubDocs) CreateWithUsage(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, bool, error) {
	s.lastCreate = req
	return s.createRes, s.createdFlag, nil
}
func (s *stubDocs) CountByHash(context.Context, []byte) (int, error) {
	return 0, nil
}
func (s *stubDocs) List(context.Context, uuid.UUID, int, int) ([]*entity.Document, int, error) {
	return nil, 0, nil
}
func (s *stubDocs) Get(context.Context, uuid.UUID, uuid.UUID) (*entity.Document, error) {
	return nil, errors.New("not used")
}
func (s *stubDocs) Delete(context.Context, uuid.UUID, uuid.UUID) (*entity.Document, error) {
	return nil, errors.New("not used")
}

type stubUsage struct {
	count int
	calls int
}

func (s *stubUsage) Current(context.Context, uuid.UUID, string) (int, error) {
	s.calls++
	return s.count, nil
}
func (s *stubUsage) Record(context.Context, uuid.UUID, string) (*entity.UsageRecord, error) {
	return nil, nil
}

type stubStore struct {
	stored    *storage.StoredFile
	acceptErr error
	content   []byte
	removed   []string
}

func (s *stubStore) Accept(string, string, io.Reader, int64) (*storage.StoredFile, error) {
	if s.acceptErr != nil {
		return nil, s.acceptErr
	}
	return s.stored, nil
}
func (s *stubStore) Read(string, string) ([]byte, error) { return s.content, nil }
func (s *stubStore) Remove(hashHex, ext string) error {
	s.removed = append(s.removed, hashHex+"."+ext)
	return nil
}

type stubExtractor struct {
	raw   json.RawMessage
	err   error
	calls int
}

func (s *stubExtractor) Extract(context.Context, []byte, string) (json.RawMessage, error) {
	s.calls++
	return s.raw, s.err
}

func freeUser() *entity.User {
	return &entity.User{ID: testUserID, Email: "t@example.com", Plan: constants.PlanFree}
}

func storedPDF() *storage.StoredFile {
	return &storage.StoredFile{
		Path:     "/tmp/abcd.pdf",
		Filename: "invoice.pdf",
		Ext:      "pdf",
		MIME:     "application/pdf",
		Size:     4,
		Hash:     []byte{0xab, 0xcd},
		HashHex:  "abcd",
	}
}

func uploadReq() *UploadRequest {
	return &UploadRequest{
		UserID:   testUserID,
		Filename: "invoice.pdf",
		MIMEType: "application/pdf",
		Content:  bytes.NewReader([]byte("%PDF")),
		Size:     4,
	}
}

func newTestProcessor(store BlobStore, users repository.UserRepository, docs repository.DocumentRepository, usage repository.UsageRepository, ex *stubExtractor) *Processor {
	p := NewProcessor(store, users, docs, usage, ex, normalize.New(nil), nil)
	p.now = func() time.Time { return testNow }
	return p
}

func TestProcessCompleted(t *testing.T) {
	docs := &stubDocs{
		createRes:   &entity.Document{ID: uuid.New(), UserID: testUserID},
		createdFlag: true,
	}
	usage := &stubUsage{count: 3}
	ex := &stubExtractor{raw: json.RawMessage(`{
		"vendor_name": "Acme",
		"total_amount": "121,00",
		"invoice_date": "2026-01-15",
		"currency": "EUR",
		"confidence": 0.9
	}`)}
	p := newTestProcessor(&stubStore{stored: storedPDF(), content: []byte("%PDF")}, &stubUsers{user: freeUser()}, docs, usage, ex)

	res, err := p.Process(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Status != constants.UploadStatusCompleted {
		t.Fatalf("status = %s, want completed", res.Status)
	}
	if ex.calls != 1 {
		t.Fatalf("extractor calls = %d, want 1", ex.calls)
	}
	if docs.lastCreate == nil {
		t.Fatal("CreateWithUsage was not called")
	}
	if docs.lastCreate.Month != "2026-03" {
		t.Fatalf("usage month = %s, want 2026-03", docs.lastCreate.Month)
	}
	if docs.lastCreate.StoredExt != "pdf" {
		t.Fatalf("stored ext = %s, want pdf", docs.lastCreate.StoredExt)
	}
	if docs.lastCreate.Payload.TotalAmount == nil || *docs.lastCreate.Payload.TotalAmount != "121.00" {
		t.Fatalf("payload total = %v, want 121.00", docs.lastCreate.Payload.TotalAmount)
	}
	if res.MonthlyUsed != 4 || res.MonthlyLimit != 10 {
		t.Fatalf("usage = %d/%d, want 4/10", res.MonthlyUsed, res.MonthlyLimit)
	}
}

func TestProcessDuplicateSkipsExtraction(t *testing.T) {
	existing := &entity.Document{ID: uuid.New(), UserID: testUserID}
	docs := &stubDocs{byHash: existing}
	usage := &stubUsage{}
	ex := &stubExtractor{}
	p := newTestProcessor(&stubStore{stored: storedPDF()}, &stubUsers{user: freeUser()}, docs, usage, ex)

	res, err := p.Process(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Status != constants.UploadStatusDuplicate {
		t.Fatalf("status = %s, want duplicate", res.Status)
	}
	if res.Document != existing {
		t.Fatal("duplicate result did not return the stored document")
	}
	if ex.calls != 0 {
		t.Fatalf("extractor called %d times for a duplicate", ex.calls)
	}
	if usage.calls != 0 {
		t.Fatal("quota checked for a duplicate")
	}
}

func TestProcessQuotaExceededSkipsExtraction(t *testing.T) {
	store := &stubStore{stored: storedPDF()}
	usage := &stubUsage{count: 10} // at the free-tier ceiling
	ex := &stubExtractor{}
	p := newTestProcessor(store, &stubUsers{user: freeUser()}, &stubDocs{}, usage, ex)

	res, err := p.Process(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Status != constants.UploadStatusQuotaExceeded {
		t.Fatalf("status = %s, want quota_exceeded", res.Status)
	}
	if res.MonthlyUsed != 10 || res.MonthlyLimit != 10 {
		t.Fatalf("usage = %d/%d, want 10/10", res.MonthlyUsed, res.MonthlyLimit)
	}
	if ex.calls != 0 {
		t.Fatal("extractor called despite exhausted quota")
	}
	if len(store.removed) != 1 {
		t.Fatalf("stored bytes not swept, removed = %v", store.removed)
	}
}

func TestProcessUnlimitedPlanSkipsQuotaCheck(t *testing.T) {
	user := freeUser()
	user.Plan = constants.PlanUnlimited
	docs := &stubDocs{
		createRes:   &entity.Document{ID: uuid.New(), UserID: testUserID},
		createdFlag: true,
	}
	usage := &stubUsage{count: 1_000_000}
	ex := &stubExtractor{raw: json.RawMessage(`{"currency": "EUR"}`)}
	p := newTestProcessor(&stubStore{stored: storedPDF(), content: []byte("%PDF")}, &stubUsers{user: user}, docs, usage, ex)

	res, err := p.Process(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Status != constants.UploadStatusCompleted {
		t.Fatalf("status = %s, want completed", res.Status)
	}
	if usage.calls != 0 {
		t.Fatal("quota checked for unlimited plan")
	}
	if res.MonthlyLimit != 0 {
		t.Fatalf("limit = %d, want 0 (unlimited)", res.MonthlyLimit)
	}
}

func TestProcessRejectsBadUpload(t *testing.T) {
	store := &stubStore{acceptErr: common.NewAppError("UNSUPPORTED_TYPE", "unsupported file extension", common.ErrValidation)}
	ex := &stubExtractor{}
	p := newTestProcessor(store, &stubUsers{user: freeUser()}, &stubDocs{}, &stubUsage{}, ex)

	res, err := p.Process(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Status != constants.UploadStatusRejected {
		t.Fatalf("status = %s, want rejected", res.Status)
	}
	if res.FailureCode != "UNSUPPORTED_TYPE" {
		t.Fatalf("failure code = %s", res.FailureCode)
	}
	if ex.calls != 0 {
		t.Fatal("extractor called for a rejected upload")
	}
}

func TestProcessMalformedExtractionFails(t *testing.T) {
	store := &stubStore{stored: storedPDF(), content: []byte("%PDF")}
	ex := &stubExtractor{err: common.NewAppError("MALFORMED_OUTPUT", "not json", common.ErrExtractionMalformed)}
	p := newTestProcessor(store, &stubUsers{user: freeUser()}, &stubDocs{}, &stubUsage{}, ex)

	res, err := p.Process(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Status != constants.UploadStatusFailed {
		t.Fatalf("status = %s, want failed", res.Status)
	}
	if res.FailureCode != "MALFORMED_OUTPUT" {
		t.Fatalf("failure code = %s", res.FailureCode)
	}
	// no row references the bytes, so they must not linger on disk
	if len(store.removed) != 1 {
		t.Fatalf("stored bytes not swept after failure, removed = %v", store.removed)
	}
}

func TestProcessTransientExtractionBubblesUp(t *testing.T) {
	store := &stubStore{stored: storedPDF(), content: []byte("%PDF")}
	ex := &stubExtractor{err: common.NewAppError("UPSTREAM_UNAVAILABLE", "model overloaded", common.ErrExtractionTransient)}
	p := newTestProcessor(store, &stubUsers{user: freeUser()}, &stubDocs{}, &stubUsage{}, ex)

	_, err := p.Process(context.Background(), uploadReq())
	if !errors.Is(err, common.ErrExtractionTransient) {
		t.Fatalf("err = %v, want transient extraction error", err)
	}
	// a retry of the same upload should land on the already stored bytes
	if len(store.removed) != 0 {
		t.Fatalf("bytes swept on a retryable failure, removed = %v", store.removed)
	}
}

func TestProcessLostCreateRaceReportsDuplicate(t *testing.T) {
	winner := &entity.Document{ID: uuid.New(), UserID: testUserID}
	docs := &stubDocs{createRes: winner, createdFlag: false}
	ex := &stubExtractor{raw: json.RawMessage(`{"currency": "EUR"}`)}
	p := newTestProcessor(&stubStore{stored: storedPDF(), content: []byte("%PDF")}, &stubUsers{user: freeUser()}, docs, &stubUsage{}, ex)

	res, err := p.Process(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Status != constants.UploadStatusDuplicate {
		t.Fatalf("status = %s, want duplicate", res.Status)
	}
	if res.Document != winner {
		t.Fatal("race loser did not surface the winning document")
	}
}

func TestProcessUnknownUserRejected(t *testing.T) {
	users := &stubUsers{err: common.NewAppError("USER_NOT_FOUND", "user does not exist", common.ErrNotFound)}
	p := newTestProcessor(&stubStore{stored: storedPDF()}, users, &stubDocs{}, &stubUsage{}, &stubExtractor{})

	res, err := p.Process(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Status != constants.UploadStatusRejected {
		t.Fatalf("status = %s, want rejected", res.Status)
	}
	if res.FailureCode != "USER_NOT_FOUND" {
		t.Fatalf("failure code = %s", res.FailureCode)
	}
}
