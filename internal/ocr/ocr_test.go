package ocr

import (
	"encoding/binary"
	"testing"

	"billscan-backend/internal/imaging"
)

func TestNormalizeCollapsesNewlines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"unix newlines", "ACME Corp\nInvoice 42\nTotal $50\n", "ACME Corp Invoice 42 Total $50"},
		{"windows newlines", "line one\r\nline two", "line one line two"},
		{"bare carriage returns", "a\rb", "a b"},
		{"surrounding whitespace", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only newlines", "\n\n\n", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncodeBMPPreservesBGRBytes(t *testing.T) {
	// 1x1 buffer: a single BGR pixel must land in the file body untouched.
	buf := &imaging.PixelBuffer{Width: 1, Height: 1, Pix: []byte{1, 2, 3}}
	out := encodeBMP(buf)

	if out[0] != 'B' || out[1] != 'M' {
		t.Fatalf("expected BM signature, got %c%c", out[0], out[1])
	}
	offset := binary.LittleEndian.Uint32(out[10:14])
	body := out[offset:]
	if body[0] != 1 || body[1] != 2 || body[2] != 3 {
		t.Fatalf("expected pixel bytes 1,2,3 in body, got %v", body[:3])
	}
}

func TestEncodeBMPRowPaddingAndOrder(t *testing.T) {
	// 2x2: rows are stored bottom-up, padded to 4-byte boundaries.
	buf := &imaging.PixelBuffer{
		Width:  2,
		Height: 2,
		Pix: []byte{
			1, 1, 1, 2, 2, 2, // top row
			3, 3, 3, 4, 4, 4, // bottom row
		},
	}
	out := encodeBMP(buf)

	rowSize := 8 // 2*3 rounded up to multiple of 4
	offset := binary.LittleEndian.Uint32(out[10:14])
	body := out[offset:]

	if len(body) != rowSize*2 {
		t.Fatalf("expected body of %d bytes, got %d", rowSize*2, len(body))
	}
	// First stored row is the buffer's bottom row.
	if body[0] != 3 || body[3] != 4 {
		t.Fatalf("expected bottom row first, got %v", body[:rowSize])
	}
	if body[rowSize] != 1 || body[rowSize+3] != 2 {
		t.Fatalf("expected top row second, got %v", body[rowSize:])
	}

	width := binary.LittleEndian.Uint32(out[18:22])
	height := binary.LittleEndian.Uint32(out[22:26])
	if width != 2 || height != 2 {
		t.Fatalf("expected 2x2 header, got %dx%d", width, height)
	}
}
