// Package fbit provides bit-level inspection helpers for IEEE-754 floats.
//
// Layout (f32 / f64):
//
//	sign: 1 bit
//	exp:  8 / 11 bits
//	mant: 23 / 52 bits
package fbit

import "math"

// Field masks for both widths. Exported because the generator, the stats
// classifier and the tests all need the exact same boundaries.
const (
	SignMask32 uint32 = 0x8000_0000
	ExpMask32  uint32 = 0x7F80_0000
	MantMask32 uint32 = 0x007F_FFFF

	SignMask64 uint64 = 0x8000_0000_0000_0000
	ExpMask64  uint64 = 0x7FF0_0000_0000_0000
	MantMask64 uint64 = 0x000F_FFFF_FFFF_FFFF

	// QuietBit marks a quiet NaN when set. The 2008 revision of IEEE-754
	// defines signaling NaNs by this bit being clear (bit 22 / bit 51);
	// some old-fashioned platforms (PA-RISC, some MIPS) used the inverse
	// convention, which this package ignores.
	QuietBit32 uint32 = 1 << 22
	QuietBit64 uint64 = 1 << 51
)

// Equal32 reports whether two f32 values have identical bit patterns.
// Unlike ==, it distinguishes +0.0 from -0.0 and compares NaN payloads.
func Equal32(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

// Equal64 reports whether two f64 values have identical bit patterns.
func Equal64(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

// IsNaN32 reports whether f is any NaN (exponent all ones, mantissa non-zero).
func IsNaN32(f float32) bool {
	bits := math.Float32bits(f)
	return bits&ExpMask32 == ExpMask32 && bits&MantMask32 != 0
}

// IsNaN64 reports whether f is any NaN.
func IsNaN64(f float64) bool {
	bits := math.Float64bits(f)
	return bits&ExpMask64 == ExpMask64 && bits&MantMask64 != 0
}

// IsSignalingNaN32 reports whether f is a NaN with the quiet bit clear.
// A signaling NaN has the form s111_1111_1nxx..xx with n=0 and x..x non-zero
// (all-zero would be infinity).
func IsSignalingNaN32(f float32) bool {
	return IsNaN32(f) && math.Float32bits(f)&QuietBit32 == 0
}

// IsSignalingNaN64 reports whether f is a NaN with the quiet bit clear.
// The signaling bit is bit 51 instead of bit 22.
func IsSignalingNaN64(f float64) bool {
	return IsNaN64(f) && math.Float64bits(f)&QuietBit64 == 0
}

// IsSubnormal32 reports whether f is subnormal: exponent field all zero,
// mantissa non-zero. ±0 is not subnormal.
func IsSubnormal32(f float32) bool {
	bits := math.Float32bits(f)
	return bits&ExpMask32 == 0 && bits&MantMask32 != 0
}

// IsSubnormal64 reports whether f is subnormal.
func IsSubnormal64(f float64) bool {
	bits := math.Float64bits(f)
	return bits&ExpMask64 == 0 && bits&MantMask64 != 0
}

// IsNormal32 reports whether f's exponent field is neither all-zero nor
// all-ones, i.e. a regular normalized value.
func IsNormal32(f float32) bool {
	exp := math.Float32bits(f) & ExpMask32
	return exp != 0 && exp != ExpMask32
}

// IsNormal64 reports whether f is a regular normalized value.
func IsNormal64(f float64) bool {
	exp := math.Float64bits(f) & ExpMask64
	return exp != 0 && exp != ExpMask64
}

// IsInf32 reports whether f is +Inf or -Inf.
func IsInf32(f float32) bool {
	bits := math.Float32bits(f)
	return bits&ExpMask32 == ExpMask32 && bits&MantMask32 == 0
}

// IsInf64 reports whether f is +Inf or -Inf.
func IsInf64(f float64) bool {
	bits := math.Float64bits(f)
	return bits&ExpMask64 == ExpMask64 && bits&MantMask64 == 0
}
