package bills

import (
	"context"
	"fmt"
	"strings"
	"time"

	"billscan-backend/internal/llm"
)

// extractionTemperature is fixed low but non-zero: deterministic enough that
// the response structure stays stable, with some robustness to phrasing
// variance in the OCR text.
const extractionTemperature = 0.2

// Extractor turns raw bill text into a Record via a single LLM call.
type Extractor struct {
	LLM llm.Client
	now func() time.Time
}

// NewExtractor constructs an Extractor.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{LLM: client, now: time.Now}
}

// Extract sends the built prompt to the LLM and strictly parses the response
// as a JSON object. The parsed fields are accepted as-is with no schema
// enforcement; created_at is attached server-side on success. One attempt
// only, no repair loop.
func (e *Extractor) Extract(ctx context.Context, text string) (*Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingInput
	}

	raw, err := e.LLM.Complete(ctx, BuildPrompt(text), extractionTemperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}

	rec := NewRecord()
	if err := rec.UnmarshalJSON([]byte(raw)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	clock := e.now
	if clock == nil {
		clock = time.Now
	}
	rec.Set("created_at", clock().UTC().Format(time.RFC3339))
	return rec, nil
}
