package extraction

import (
	"context"
	"encoding/json"
)

// Extractor is the single opaque vision-AI call the pipeline depends on. It
// returns the model's raw JSON payload; shape coercion happens in the
// normalizer, not here.
//
// Failures carry exactly one of the common.ErrExtraction* kinds so callers
// can decide whether retrying the whole upload makes sense. The client never
// retries internally: one upload attempt means one remote call.
type Extractor interface {
	Extract(ctx context.Context, fileBytes []byte, mimeType string) (json.RawMessage, error)
}
