// Package extract pulls the text layer out of digital PDF bills so they can
// skip OCR entirely. Scanned PDFs with no text layer fall back to
// rasterization and OCR at the call site.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// IsPDF reports whether the upload is a PDF, by declared MIME type, file
// extension or the %PDF- magic header.
func IsPDF(mimeType, fileName string, data []byte) bool {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean == "application/pdf" {
		return true
	}
	if strings.ToLower(filepath.Ext(fileName)) == ".pdf" {
		return true
	}
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// PDFText extracts the embedded text layer from a PDF. An empty result with
// nil error means the PDF has no text layer (a scan).
func PDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
