// package half implements the IEEE 754 binary16 interchange format as a
// portable software codec: conversion to and from the 32 and 64 bit formats,
// classification, comparison and the nearby-value utilities (spacing,
// nextafter, divmod). It is the fallback for platforms without native half
// float support, so everything is integer bit manipulation. Every 16 bit
// pattern is a valid value, so all operations are total: nothing errors,
// panics or allocates, and everything is safe to call concurrently.
package half

import "fmt"

// Half is a single binary16 bit pattern: 1 sign bit, 5 exponent bits with a
// bias of 15, and 10 mantissa bits with an implicit leading 1 for normal
// values.
type Half uint16

const (
	signMask Half = 0x8000
	expMask  Half = 0x7c00
	mantMask Half = 0x03ff
	expShift      = 10
	expBias       = 15
)

const (
	PosZero Half = 0x0000
	NegZero Half = 0x8000
	PosInf  Half = 0x7c00
	NegInf  Half = 0xfc00
	// NaN is the canonical quiet NaN. Operations that have to invent a NaN
	// produce this one; conversions carry existing payloads across instead.
	NaN Half = 0x7e00

	// MaxFinite is the largest finite half, 65504.
	MaxFinite Half = 0x7bff
	// MinSubnormal is the smallest positive half, 2^-24.
	MinSubnormal Half = 0x0001
	// MinNormal is the smallest positive normal half, 2^-14.
	MinNormal Half = 0x0400
)

// FromBits returns the Half with exactly the bit pattern b.
func FromBits(b uint16) Half { return Half(b) }

// Bits returns the raw bit pattern.
func (h Half) Bits() uint16 { return uint16(h) }

// split breaks the number into its three raw fields, without applying the
// bias or the implicit leading mantissa bit.
func (h Half) split() (sign, exponent, mantissa uint16) {
	return uint16(h & signMask), uint16(h&expMask) >> expShift, uint16(h & mantMask)
}

// IsZero reports whether h is positive or negative zero.
func (h Half) IsZero() bool { return h&^signMask == 0 }

// IsNaN reports whether h is a NaN: exponent field maxed with a nonzero
// mantissa.
func (h Half) IsNaN() bool { return h&expMask == expMask && h&mantMask != 0 }

// IsInf reports whether h is positive or negative infinity.
func (h Half) IsInf() bool { return h&^signMask == PosInf }

// IsFinite reports whether h is neither infinite nor NaN.
func (h Half) IsFinite() bool { return h&expMask != expMask }

// Signbit reports whether the sign bit is set, which it is for negative
// values, negative zero and negative NaNs.
func (h Half) Signbit() bool { return h&signMask != 0 }

func (h Half) String() string {
	return fmt.Sprintf("%g", Float[float64](h))
}
