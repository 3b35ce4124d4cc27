package bills

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// CSVExporter writes one CSV file per stored record into a fixed export
// directory. The export is a snapshot: never updated after creation.
type CSVExporter struct {
	Dir string
	now func() time.Time
}

// NewCSVExporter constructs an exporter, creating the directory if absent.
func NewCSVExporter(dir string) (*CSVExporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create export dir: %v", ErrExport, err)
	}
	return &CSVExporter{Dir: dir, now: time.Now}, nil
}

// Export writes the record as a header row derived from its own keys plus one
// data row, and returns the file path. Filenames carry a seconds-resolution
// timestamp and a short random suffix so two records in the same second
// cannot collide.
func (e *CSVExporter) Export(rec *Record) (string, error) {
	clock := e.now
	if clock == nil {
		clock = time.Now
	}
	name := fmt.Sprintf("bill_%s_%s.csv", clock().Format("20060102150405"), uuid.NewString()[:8])
	path := filepath.Join(e.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	defer f.Close()

	keys := rec.Keys()
	row := make([]string, 0, len(keys))
	for _, key := range keys {
		value, _ := rec.Get(key)
		row = append(row, cellValue(value))
	}

	w := csv.NewWriter(f)
	if err := w.Write(keys); err != nil {
		return "", fmt.Errorf("%w: write header: %v", ErrExport, err)
	}
	if err := w.Write(row); err != nil {
		return "", fmt.Errorf("%w: write row: %v", ErrExport, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%w: flush: %v", ErrExport, err)
	}

	return path, nil
}

// cellValue flattens a record value into a CSV cell. Scalars are written
// plainly; structured values like line items are JSON-encoded in place.
func cellValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
