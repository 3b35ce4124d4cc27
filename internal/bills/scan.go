package bills

import (
	"context"
	"strings"

	"billscan-backend/internal/extract"
	"billscan-backend/internal/imaging"
	"billscan-backend/internal/ocr"
)

// Scanner turns an uploaded bill file into normalized text. Images go through
// decode and OCR; digital PDFs yield their text layer directly, and scanned
// PDFs are rasterized into the OCR path.
type Scanner struct {
	Engine ocr.Engine
}

// Text extracts normalized text from an upload.
func (s *Scanner) Text(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if extract.IsPDF(mimeType, fileName, data) {
		return s.pdfText(ctx, data)
	}

	buf, err := imaging.Decode(data)
	if err != nil {
		return "", err
	}
	return s.recognize(ctx, buf)
}

func (s *Scanner) pdfText(ctx context.Context, data []byte) (string, error) {
	if text, err := extract.PDFText(data); err == nil && strings.TrimSpace(text) != "" {
		return ocr.Normalize(text), nil
	}

	// No usable text layer: treat as a scan.
	buf, err := imaging.RasterizePDF(data)
	if err != nil {
		return "", err
	}
	return s.recognize(ctx, buf)
}

func (s *Scanner) recognize(ctx context.Context, buf *imaging.PixelBuffer) (string, error) {
	raw, err := s.Engine.Recognize(ctx, buf)
	if err != nil {
		return "", err
	}
	return ocr.Normalize(raw), nil
}
