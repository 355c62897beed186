// Package vector packs embedding vectors into the raw byte layout the search
// engine expects for KNN and range query parameters.
package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode serializes a float32 vector as consecutive 4-byte IEEE-754
// little-endian values with no framing. The output is always exactly
// 4*len(v) bytes; the engine reinterprets it element-for-element.
func Encode(v []float32) []byte {
	buf := make([]byte, 0, len(v)*4)
	for _, f := range v {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}

	return buf
}

// Decode reverses Encode. A length that is not a multiple of 4 indicates a
// truncated or corrupted buffer.
func Decode(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("invalid vector data: length %d not divisible by 4", len(data))
	}

	v := make([]float32, len(data)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}

	return v, nil
}
