package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/gen2brain/heic"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrDecode indicates the uploaded bytes could not be decoded as an image.
var ErrDecode = errors.New("image decode failed")

// PixelBuffer is a three-channel color image with interleaved BGR samples,
// the channel order the OCR engine consumes. Pix holds Width*Height*3 bytes
// in row-major order.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// Decode turns uploaded image bytes into a BGR pixel buffer. Supported inputs
// are JPEG, PNG, GIF, BMP, TIFF, WebP and HEIC. Empty or corrupt data fails
// with ErrDecode.
func Decode(data []byte) (*PixelBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	var img image.Image
	var err error
	if isHEIC(data) {
		img, err = heic.Decode(bytes.NewReader(data))
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return FromImage(img), nil
}

// FromImage converts a decoded image into a BGR pixel buffer. The decoder
// yields RGB samples while the OCR engine expects BGR, so each pixel's red
// and blue channels are swapped here.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := &PixelBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*3),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf.Pix[i] = byte(b >> 8)
			buf.Pix[i+1] = byte(g >> 8)
			buf.Pix[i+2] = byte(r >> 8)
			i += 3
		}
	}
	return buf
}

// isHEIC reports whether the data carries an ISO-BMFF ftyp box with a
// HEIC/HEIF brand. Go's image package does not handle these.
func isHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}
