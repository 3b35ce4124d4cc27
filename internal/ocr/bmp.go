package ocr

import (
	"encoding/binary"

	"billscan-backend/internal/imaging"
)

const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
)

// encodeBMP wraps a BGR pixel buffer in a 24-bit BMP container for the OCR
// engine. BMP stores pixels as interleaved BGR, so the buffer's bytes land in
// the file unchanged; only row order (bottom-up) and row padding differ.
func encodeBMP(buf *imaging.PixelBuffer) []byte {
	rowSize := (buf.Width*3 + 3) &^ 3
	imageSize := rowSize * buf.Height
	fileSize := bmpFileHeaderSize + bmpInfoHeaderSize + imageSize

	out := make([]byte, fileSize)

	// File header.
	out[0], out[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(out[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(out[10:14], bmpFileHeaderSize+bmpInfoHeaderSize)

	// BITMAPINFOHEADER.
	info := out[bmpFileHeaderSize:]
	binary.LittleEndian.PutUint32(info[0:4], bmpInfoHeaderSize)
	binary.LittleEndian.PutUint32(info[4:8], uint32(buf.Width))
	binary.LittleEndian.PutUint32(info[8:12], uint32(buf.Height))
	binary.LittleEndian.PutUint16(info[12:14], 1)  // planes
	binary.LittleEndian.PutUint16(info[14:16], 24) // bits per pixel
	binary.LittleEndian.PutUint32(info[20:24], uint32(imageSize))

	// Pixel rows, bottom-up.
	pixels := out[bmpFileHeaderSize+bmpInfoHeaderSize:]
	srcStride := buf.Width * 3
	for y := 0; y < buf.Height; y++ {
		src := buf.Pix[y*srcStride : (y+1)*srcStride]
		dst := pixels[(buf.Height-1-y)*rowSize:]
		copy(dst, src)
	}

	return out
}
