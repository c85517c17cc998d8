package codegen

import (
	"math"
	"strconv"
	"strings"
)

// parseF32Bits parses s as a 32-bit float literal at compile time,
// accepting "inf", "+inf", "-inf", "nan" case-insensitively, and returns
// its raw bit pattern as a signed 32-bit integer (§4.4.3).
func parseF32Bits(s string) (int32, bool) {
	switch strings.ToLower(s) {
	case "inf", "+inf":
		return int32(math.Float32bits(float32(math.Inf(1)))), true
	case "-inf":
		return int32(math.Float32bits(float32(math.Inf(-1)))), true
	case "nan":
		return int32(math.Float32bits(float32(math.NaN()))), true
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return int32(math.Float32bits(float32(v))), true
}

// positiveInfinityBits, negativeInfinityBits, and nanBits back the F+INF,
// F-INF, and FNAN compile-time constants (§4.4.4).
func positiveInfinityBits() int32 {
	return int32(math.Float32bits(float32(math.Inf(1))))
}

func negativeInfinityBits() int32 {
	return int32(math.Float32bits(float32(math.Inf(-1))))
}

func nanBits() int32 {
	return int32(math.Float32bits(float32(math.NaN())))
}

// itoa32 renders a bit pattern as the decimal literal IR expects.
func itoa32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
