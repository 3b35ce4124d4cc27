package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"billscan-backend/internal/imaging"
)

// Tesseract runs a local Tesseract engine via gosseract. A fresh client is
// created per call; gosseract clients are not safe for concurrent use.
type Tesseract struct {
	languages []string
}

// NewTesseract constructs a Tesseract engine recognizing the given languages.
func NewTesseract(languages []string) *Tesseract {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &Tesseract{languages: languages}
}

// Recognize feeds the BGR pixel buffer to Tesseract and returns raw text.
func (t *Tesseract) Recognize(ctx context.Context, buf *imaging.PixelBuffer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("%w: set language: %v", ErrService, err)
	}
	if err := client.SetImageFromBytes(encodeBMP(buf)); err != nil {
		return "", fmt.Errorf("%w: set image: %v", ErrService, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	return text, nil
}
