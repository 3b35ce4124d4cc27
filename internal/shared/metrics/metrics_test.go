package metrics

import (
	"strings"
	"testing"
)

func TestRenderExposesCounters(t *testing.T) {
	IncUpload()
	IncExtractionStarted()
	IncExtractionStored()
	ObserveExtractionDurationMs(42)

	out := Render()
	for _, metric := range []string{
		"uploads_total",
		"extraction_started_total",
		"extraction_stored_total",
		"extraction_failed_total",
		"export_failed_total",
		"extraction_duration_ms_bucket",
		"extraction_duration_ms_sum",
	} {
		if !strings.Contains(out, metric) {
			t.Fatalf("expected %s in output:\n%s", metric, out)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(100); got != "100" {
		t.Fatalf("expected integral format, got %s", got)
	}
	if got := formatFloat(0.25); got != "0.25" {
		t.Fatalf("expected decimal format, got %s", got)
	}
}
