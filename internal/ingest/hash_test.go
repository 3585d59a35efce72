package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// sha256 of "hello", independently computed
const helloHex = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func TestContentHashKnownVector(t *testing.T) {
	sum, hexSum, err := ContentHash(strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("ContentHash: %v", err)
	}
	if hexSum != helloHex {
		t.Fatalf("hex = %s, want %s", hexSum, helloHex)
	}
	if len(sum) != 32 {
		t.Fatalf("digest length = %d, want 32", len(sum))
	}
}

func TestContentHashEmptyInput(t *testing.T) {
	_, _, err := ContentHash(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestContentHashIgnoresChunking(t *testing.T) {
	// identical bytes must hash identically regardless of how they arrive
	whole, _, err := HashBytes([]byte("the quick brown fox"))
	if err != nil {
		t.Fatalf("HashBytes: %v", err)
	}

	h := NewHasher()
	for _, chunk := range []string{"the quick", " brown", " fox"} {
		if _, err := h.Write([]byte(chunk)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	sum, _ := h.Sum()
	if !bytes.Equal(whole, sum) {
		t.Fatal("incremental digest differs from one-shot digest")
	}
}

func TestHashBytesMatchesStreaming(t *testing.T) {
	payload := []byte("invoice bytes")
	bSum, bHex, err := HashBytes(payload)
	if err != nil {
		t.Fatalf("HashBytes: %v", err)
	}
	sSum, sHex, err := ContentHash(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("ContentHash: %v", err)
	}
	if !bytes.Equal(bSum, sSum) || bHex != sHex {
		t.Fatal("HashBytes and ContentHash disagree")
	}
}
