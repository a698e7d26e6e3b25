package pngenc

import (
	"encoding/binary"
	"fmt"
)

// headerLen is the fixed IHDR payload size.
const headerLen = 13

// colorTypeRGB is 8-bit-per-sample truecolor, the only type we emit.
const colorTypeRGB = 2

// Header mirrors the IHDR payload fields.
type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// MarshalBinary encodes the 13-byte IHDR payload.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.appendTo(make([]byte, 0, headerLen)), nil
}

func (h Header) appendTo(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, h.Width)
	dst = binary.BigEndian.AppendUint32(dst, h.Height)
	return append(dst, h.BitDepth, h.ColorType, h.Compression, h.Filter, h.Interlace)
}

// ParseHeader decodes an IHDR payload.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != headerLen {
		return Header{}, fmt.Errorf("pngenc: IHDR payload is %d bytes, want %d", len(data), headerLen)
	}
	return Header{
		Width:       binary.BigEndian.Uint32(data[0:4]),
		Height:      binary.BigEndian.Uint32(data[4:8]),
		BitDepth:    data[8],
		ColorType:   data[9],
		Compression: data[10],
		Filter:      data[11],
		Interlace:   data[12],
	}, nil
}

// ColorTypeName returns the PNG spelling of the colour type.
func (h Header) ColorTypeName() string {
	switch h.ColorType {
	case 0:
		return "grayscale"
	case 2:
		return "truecolor"
	case 3:
		return "indexed"
	case 4:
		return "grayscale+alpha"
	case 6:
		return "truecolor+alpha"
	}
	return fmt.Sprintf("unknown(%d)", h.ColorType)
}
