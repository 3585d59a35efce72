package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docstream/docstream/internal/common"
)

func messagesReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	})
	return string(b)
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
}

func TestExtractReturnsValidatedJSON(t *testing.T) {
	var gotVersion, gotKey string
	var gotBody map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		gotKey = r.Header.Get("x-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(messagesReply(`{"vendor_name": "Acme", "total_amount": "12.50"}`)))
	})

	raw, err := c.Extract(context.Background(), []byte("%PDF"), "application/pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if out["vendor_name"] != "Acme" {
		t.Fatalf("vendor_name = %v", out["vendor_name"])
	}
	if gotVersion != "2023-06-01" {
		t.Fatalf("anthropic-version = %q", gotVersion)
	}
	if gotKey != "test-key" {
		t.Fatalf("x-api-key = %q", gotKey)
	}

	// PDFs go up as a document block, not an image block
	messages := gotBody["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	if blockType := content[0].(map[string]any)["type"]; blockType != "document" {
		t.Fatalf("first block type = %v, want document", blockType)
	}
}

func TestExtractSendsImageBlockForImages(t *testing.T) {
	var gotBody map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(messagesReply(`{"vendor_name": "Acme"}`)))
	})

	if _, err := c.Extract(context.Background(), []byte{0x89, 0x50}, "image/png"); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	messages := gotBody["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	if blockType := content[0].(map[string]any)["type"]; blockType != "image" {
		t.Fatalf("first block type = %v, want image", blockType)
	}
}

func TestExtractUnwrapsCodeFences(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(messagesReply("```json\n{\"vendor_name\": \"Acme\"}\n```")))
	})
	raw, err := c.Extract(context.Background(), []byte("x"), "image/png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if string(raw) != `{"vendor_name": "Acme"}` {
		t.Fatalf("raw = %s", raw)
	}
}

func TestExtractNonJSONReplyIsMalformed(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(messagesReply("I could not read this document, sorry.")))
	})
	_, err := c.Extract(context.Background(), []byte("x"), "image/png")
	if !errors.Is(err, common.ErrExtractionMalformed) {
		t.Fatalf("err = %v, want malformed", err)
	}
}

func TestExtractEmptyReplyIsMalformed(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(messagesReply("")))
	})
	_, err := c.Extract(context.Background(), []byte("x"), "image/png")
	if !errors.Is(err, common.ErrExtractionMalformed) {
		t.Fatalf("err = %v, want malformed", err)
	}
}

func TestExtractOverloadedIsTransient(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.Extract(context.Background(), []byte("x"), "image/png")
	if !errors.Is(err, common.ErrExtractionTransient) {
		t.Fatalf("err = %v, want transient", err)
	}

	c = testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err = c.Extract(context.Background(), []byte("x"), "image/png")
	if !errors.Is(err, common.ErrExtractionTransient) {
		t.Fatalf("err = %v, want transient", err)
	}
}

func TestExtractBadRequestIsUnsupported(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	_, err := c.Extract(context.Background(), []byte("x"), "image/png")
	if !errors.Is(err, common.ErrExtractionUnsupported) {
		t.Fatalf("err = %v, want unsupported", err)
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := stripCodeFences(tc.in); got != tc.want {
			t.Fatalf("stripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
