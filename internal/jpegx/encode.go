// Package jpegx encodes JPEG files with embedded print density metadata.
package jpegx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/jpeg"
	"io"
)

const (
	// DefaultQuality balances size and quality for photo collages.
	DefaultQuality = 95
	// DefaultDPI is the print density tag written to the output file.
	// It only affects the embedded JFIF density, never pixel dimensions.
	DefaultDPI = 300
)

// Encode writes img to w as a JPEG with the given quality and a JFIF
// APP0 segment declaring dpi×dpi density. The standard library encoder
// emits no APP0 segment at all, so one is spliced in after the SOI
// marker.
func Encode(w io.Writer, img image.Image, quality, dpi int) error {
	data, err := EncodeBytes(img, quality, dpi)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// EncodeBytes is Encode into memory, for callers that write atomically.
func EncodeBytes(img image.Image, quality, dpi int) ([]byte, error) {
	if quality <= 0 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("jpeg encode: %w", err)
	}

	raw := buf.Bytes()
	if len(raw) < 2 || raw[0] != 0xFF || raw[1] != 0xD8 {
		return nil, fmt.Errorf("jpeg encode: missing SOI marker")
	}
	if dpi <= 0 {
		return raw, nil
	}

	out := make([]byte, 0, len(raw)+18)
	out = append(out, raw[:2]...)
	out = append(out, jfifApp0(dpi)...)
	out = append(out, raw[2:]...)
	return out, nil
}

// jfifApp0 builds a JFIF 1.02 APP0 segment with density in dots per
// inch and no embedded thumbnail.
func jfifApp0(dpi int) []byte {
	seg := []byte{
		0xFF, 0xE0, // APP0 marker
		0x00, 0x10, // segment length (16, marker excluded)
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x02, // version 1.02
		0x01,       // density units: dots per inch
		0x00, 0x00, // X density
		0x00, 0x00, // Y density
		0x00, 0x00, // thumbnail 0x0
	}
	binary.BigEndian.PutUint16(seg[12:14], uint16(dpi))
	binary.BigEndian.PutUint16(seg[14:16], uint16(dpi))
	return seg
}
