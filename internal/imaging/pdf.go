package imaging

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// RasterizePDF renders the first page of a PDF into a BGR pixel buffer so
// scanned PDFs without a text layer can go through OCR. Most bill PDFs are
// single page; further pages are ignored.
func RasterizePDF(data []byte) (*PixelBuffer, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: open pdf: %v", ErrDecode, err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("%w: render pdf page: %v", ErrDecode, err)
	}

	return FromImage(img), nil
}
