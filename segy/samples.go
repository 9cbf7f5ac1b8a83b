package segy

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Sample format codes from the binary header Format field.
const (
	FormatIBMFloat  = 1
	FormatInt32     = 2
	FormatInt16     = 3
	FormatIEEEFloat = 5
	FormatInt8      = 8
)

// sampleSize returns the byte width of one sample for a format code.
func sampleSize(format int64) (int, error) {
	switch format {
	case FormatIBMFloat, FormatInt32, FormatIEEEFloat:
		return 4, nil
	case FormatInt16:
		return 2, nil
	case FormatInt8:
		return 1, nil
	}
	return 0, fmt.Errorf("unsupported sample format %d", format)
}

// decodeSamples converts one trace's raw sample bytes to float32.
func decodeSamples(raw []byte, format int64, count int) ([]float32, error) {
	out := make([]float32, count)
	switch format {
	case FormatIBMFloat:
		for i := 0; i < count; i++ {
			out[i] = ibmToFloat32(binary.BigEndian.Uint32(raw[i*4:]))
		}
	case FormatInt32:
		for i := 0; i < count; i++ {
			out[i] = float32(int32(binary.BigEndian.Uint32(raw[i*4:])))
		}
	case FormatInt16:
		for i := 0; i < count; i++ {
			out[i] = float32(int16(binary.BigEndian.Uint16(raw[i*2:])))
		}
	case FormatIEEEFloat:
		for i := 0; i < count; i++ {
			out[i] = math.Float32frombits(binary.BigEndian.Uint32(raw[i*4:]))
		}
	case FormatInt8:
		for i := 0; i < count; i++ {
			out[i] = float32(int8(raw[i]))
		}
	default:
		return nil, fmt.Errorf("unsupported sample format %d", format)
	}
	return out, nil
}

// ibmToFloat32 converts an IBM System/360 hexadecimal float. The format is
// sign bit, 7-bit excess-64 base-16 exponent, 24-bit fraction.
func ibmToFloat32(bits uint32) float32 {
	if bits&0x7fffffff == 0 {
		return 0
	}
	sign := 1.0
	if bits&0x80000000 != 0 {
		sign = -1.0
	}
	exponent := int(bits>>24&0x7f) - 64
	fraction := float64(bits&0x00ffffff) / float64(1<<24)
	return float32(sign * fraction * math.Pow(16, float64(exponent)))
}
