package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
	"io"
)

// ErrEmptyInput is returned when hashing zero bytes; an empty upload is never
// a valid document.
var ErrEmptyInput = errors.New("empty input")

// ContentHash streams r through SHA-256 and returns the raw digest plus its
// hex form. The digest depends only on the byte sequence, never on filename
// or upload time, and is the sole dedup key.
func ContentHash(r io.Reader) (sum []byte, hexSum string, err error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, "", err
	}
	if n == 0 {
		return nil, "", ErrEmptyInput
	}
	sum = h.Sum(nil)
	return sum, hex.EncodeToString(sum), nil
}

// Hasher accumulates a content hash while an upload is being spooled, so the
// bytes are only streamed once.
type Hasher struct {
	h hash.Hash
}

func NewHasher() *Hasher {
	return &Hasher{h: sha256.New()}
}

func (h *Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

func (h *Hasher) Sum() (sum []byte, hexSum string) {
	sum = h.h.Sum(nil)
	return sum, hex.EncodeToString(sum)
}

// HashBytes is a convenience wrapper for in-memory payloads.
func HashBytes(b []byte) (sum []byte, hexSum string, err error) {
	if len(b) == 0 {
		return nil, "", ErrEmptyInput
	}
	h := sha256.Sum256(b)
	return h[:], hex.EncodeToString(h[:]), nil
}
