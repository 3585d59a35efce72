package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/docstream/docstream/constants"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/ingest"
)

// copyChunkSize bounds peak memory per concurrent upload.
const copyChunkSize = 32 * 1024

// StoredFile describes durable upload bytes addressable by content hash.
type StoredFile struct {
	Path     string
	Filename string
	Ext      string
	MIME     string
	Size     int64
	Hash     []byte
	HashHex  string
	// Existed is true when identical bytes were already on disk, so the
	// upload skipped re-storage.
	Existed bool
}

// Store validates uploads against the type allowlist and size ceiling, and
// writes accepted bytes to <dir>/<hexdigest>.<ext>.
type Store struct {
	dir      string
	maxBytes int64
	logger   *slog.Logger
}

func NewStore(dir string, maxSizeMB int, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if maxSizeMB <= 0 {
		maxSizeMB = constants.MaxFileSizeMBDefault
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:      dir,
		maxBytes: int64(maxSizeMB) * 1024 * 1024,
		logger:   logger,
	}, nil
}

// Accept checks filename extension, declared MIME and size, then streams the
// payload to disk in bounded chunks while hashing it. declaredSize may be
// negative when unknown; the ceiling is enforced on actual bytes either way.
func (s *Store) Accept(filename, declaredMIME string, r io.Reader, declaredSize int64) (*StoredFile, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; ext == "" || !ok {
		return nil, common.NewAppError("UNSUPPORTED_TYPE",
			fmt.Sprintf("unsupported file extension %q", ext), common.ErrValidation)
	}
	if _, ok := constants.AllowedMIMETypes[declaredMIME]; !ok {
		return nil, common.NewAppError("UNSUPPORTED_TYPE",
			fmt.Sprintf("unsupported mime type %q", declaredMIME), common.ErrValidation)
	}
	if declaredSize > s.maxBytes {
		return nil, common.NewAppError("FILE_TOO_LARGE",
			fmt.Sprintf("declared size %d exceeds %d byte limit", declaredSize, s.maxBytes), common.ErrValidation)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	tmpPath := tmp.Name()
	discard := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	// hash while spooling; cap the reader one byte past the ceiling so
	// oversized streams are caught without buffering them.
	hasher := ingest.NewHasher()
	limited := io.LimitReader(r, s.maxBytes+1)
	buf := make([]byte, copyChunkSize)
	written, err := io.CopyBuffer(io.MultiWriter(tmp, hasher), limited, buf)
	if err != nil {
		discard()
		return nil, fmt.Errorf("write upload: %w", err)
	}
	if written > s.maxBytes {
		discard()
		return nil, common.NewAppError("FILE_TOO_LARGE",
			fmt.Sprintf("upload exceeds %d byte limit", s.maxBytes), common.ErrValidation)
	}
	if written == 0 {
		discard()
		return nil, common.NewAppError("EMPTY_UPLOAD", "upload contains no bytes", common.ErrValidation)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("close upload: %w", err)
	}

	sum, hexSum := hasher.Sum()
	final := s.pathFor(hexSum, ext)
	existed := false
	if _, err := os.Stat(final); err == nil {
		// identical bytes already stored; keep the original
		existed = true
		_ = os.Remove(tmpPath)
	} else if err := os.Rename(tmpPath, final); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("store upload: %w", err)
	}

	s.logger.Debug("storage.accept", "filename", filename, "hash", hexSum, "bytes", written, "existed", existed)
	return &StoredFile{
		Path:     final,
		Filename: filename,
		Ext:      ext,
		MIME:     declaredMIME,
		Size:     written,
		Hash:     sum,
		HashHex:  hexSum,
		Existed:  existed,
	}, nil
}

// Read returns the stored bytes for a previously accepted file.
func (s *Store) Read(hashHex, ext string) ([]byte, error) {
	return os.ReadFile(s.pathFor(hashHex, ext))
}

// Remove deletes the backing bytes for a document. Missing files are not an
// error; the row may have been stored before the bytes were swept.
func (s *Store) Remove(hashHex, ext string) error {
	err := os.Remove(s.pathFor(hashHex, ext))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) pathFor(hashHex, ext string) string {
	return filepath.Join(s.dir, hashHex+"."+constants.NormalizeExt(ext))
}
