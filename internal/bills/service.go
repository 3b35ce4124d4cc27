package bills

import (
	"context"
	"time"

	"billscan-backend/internal/shared/metrics"
	"billscan-backend/internal/shared/telemetry"
)

// Exporter writes a record snapshot and returns the file path.
type Exporter interface {
	Export(rec *Record) (string, error)
}

// Service orchestrates extraction and dual persistence of bill records.
type Service struct {
	Extractor *Extractor
	Repo      Repo
	Exporter  Exporter
}

// Analyze runs the extraction pipeline on raw bill text and persists the
// result. Returns the stored record and the CSV export path.
func (s *Service) Analyze(ctx context.Context, text string) (*Record, string, error) {
	metrics.IncExtractionStarted()
	start := time.Now()

	rec, err := s.Extractor.Extract(ctx, text)
	if err != nil {
		metrics.IncExtractionFailed()
		return nil, "", err
	}

	csvPath, err := s.Store(ctx, rec)
	if err != nil {
		metrics.IncExtractionFailed()
		return nil, "", err
	}

	metrics.IncExtractionStored()
	metrics.ObserveExtractionDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return rec, csvPath, nil
}

// Store writes the record to the document store, then to a CSV snapshot. The
// store insert is primary: if it fails, no export is attempted. The export is
// a best-effort projection: its failure is logged and reported as an empty
// path while the stored record stands; the insert is never rolled back.
func (s *Service) Store(ctx context.Context, rec *Record) (string, error) {
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return "", err
	}

	csvPath, err := s.Exporter.Export(rec)
	if err != nil {
		metrics.IncExportFailed()
		telemetry.Warn("bills.export.failed", map[string]any{
			"err": err.Error(),
		})
		return "", nil
	}
	return csvPath, nil
}

// List returns every stored record in the store's insertion order.
func (s *Service) List(ctx context.Context) ([]*Record, error) {
	return s.Repo.ListAll(ctx)
}
