package bills

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured (dev)
// and in tests. Records are stored as serialized payloads so callers cannot
// mutate stored state through shared pointers.
type MemoryRepo struct {
	mu       sync.Mutex
	payloads [][]byte
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Insert appends a record.
func (r *MemoryRepo) Insert(ctx context.Context, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrStorage, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
	return nil
}

// ListAll returns every record in insertion order.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Record, 0, len(r.payloads))
	for _, payload := range r.payloads {
		rec := NewRecord()
		if err := json.Unmarshal(payload, rec); err != nil {
			return nil, fmt.Errorf("%w: decode payload: %v", ErrStorage, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
