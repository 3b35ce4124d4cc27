package bills

import (
	"context"
	"errors"
	"testing"
)

type spyRepo struct {
	insertCalls int
	insertErr   error
	records     []*Record
}

func (s *spyRepo) Insert(ctx context.Context, rec *Record) error {
	s.insertCalls++
	if s.insertErr != nil {
		return s.insertErr
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *spyRepo) ListAll(ctx context.Context) ([]*Record, error) {
	return s.records, nil
}

type spyExporter struct {
	exportCalls int
	err         error
	path        string
}

func (s *spyExporter) Export(rec *Record) (string, error) {
	s.exportCalls++
	if s.err != nil {
		return "", s.err
	}
	return s.path, nil
}

func newTestService(llmResponse string, llmErr error, repo *spyRepo, exporter *spyExporter) *Service {
	return &Service{
		Extractor: fixedExtractor(&fakeLLM{response: llmResponse, err: llmErr}),
		Repo:      repo,
		Exporter:  exporter,
	}
}

func TestAnalyzeStoresThenExports(t *testing.T) {
	repo := &spyRepo{}
	exporter := &spyExporter{path: "csv_exports/bill_x.csv"}
	svc := newTestService(`{"Vendor Name":"Acme"}`, nil, repo, exporter)

	rec, csvPath, err := svc.Analyze(context.Background(), "Vendor: Acme")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if repo.insertCalls != 1 || exporter.exportCalls != 1 {
		t.Fatalf("expected one insert and one export, got %d/%d", repo.insertCalls, exporter.exportCalls)
	}
	if csvPath != "csv_exports/bill_x.csv" {
		t.Fatalf("unexpected csv path %q", csvPath)
	}
	if _, ok := rec.Get("created_at"); !ok {
		t.Fatalf("expected stored record to carry created_at")
	}
}

func TestAnalyzeParseFailureTouchesNothing(t *testing.T) {
	repo := &spyRepo{}
	exporter := &spyExporter{}
	svc := newTestService("Sorry, I can't help.", nil, repo, exporter)

	_, _, err := svc.Analyze(context.Background(), "some bill text")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected no store insert, got %d", repo.insertCalls)
	}
	if exporter.exportCalls != 0 {
		t.Fatalf("expected no export, got %d", exporter.exportCalls)
	}
}

func TestStoreInsertFailureSkipsExport(t *testing.T) {
	repo := &spyRepo{insertErr: ErrStorage}
	exporter := &spyExporter{}
	svc := newTestService(`{"Vendor Name":"Acme"}`, nil, repo, exporter)

	_, _, err := svc.Analyze(context.Background(), "some bill text")
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if exporter.exportCalls != 0 {
		t.Fatalf("expected export not attempted after insert failure, got %d", exporter.exportCalls)
	}
}

func TestStoreExportFailureIsPartialSuccess(t *testing.T) {
	repo := &spyRepo{}
	exporter := &spyExporter{err: ErrExport}
	svc := newTestService(`{"Vendor Name":"Acme"}`, nil, repo, exporter)

	rec, csvPath, err := svc.Analyze(context.Background(), "some bill text")
	if err != nil {
		t.Fatalf("expected export failure to be tolerated, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected stored record on partial success")
	}
	if csvPath != "" {
		t.Fatalf("expected empty csv path on export failure, got %q", csvPath)
	}
	if repo.insertCalls != 1 {
		t.Fatalf("expected the insert to stand, got %d calls", repo.insertCalls)
	}
}

func TestListReturnsStoredRecords(t *testing.T) {
	repo := &spyRepo{}
	svc := newTestService(`{"Vendor Name":"Acme"}`, nil, repo, &spyExporter{})

	if _, _, err := svc.Analyze(context.Background(), "first"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if _, _, err := svc.Analyze(context.Background(), "second"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	recs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
}
