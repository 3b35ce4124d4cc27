// Package ocr wraps the OCR engine behind a narrow capability interface and
// normalizes whatever text the engine returns.
package ocr

import (
	"context"
	"errors"
	"strings"

	"billscan-backend/internal/imaging"
)

// ErrService indicates the underlying OCR engine itself failed, e.g. a
// missing binary or unsupported language configuration.
var ErrService = errors.New("ocr engine failure")

// Engine converts a pixel buffer into best-effort text. Any string result,
// including empty, is valid; quality is not this layer's concern.
type Engine interface {
	Recognize(ctx context.Context, buf *imaging.PixelBuffer) (string, error)
}

// Normalize collapses every newline in raw OCR output to a single space and
// trims leading/trailing whitespace.
func Normalize(text string) string {
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	return strings.TrimSpace(replacer.Replace(text))
}
