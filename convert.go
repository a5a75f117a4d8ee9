package half

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Field layouts of the two wider interchange formats. The float64 path is
// always composed from the float32 one: there is no direct half<->double
// algorithm, just a width adjustment on the float32 pattern.
const (
	f32SignMask uint32 = 1 << 31
	f32ExpMask  uint32 = 0xff << f32ExpShift
	f32MantMask uint32 = 1<<f32ExpShift - 1
	f32ExpShift        = 23
	f32ExpBias         = 127

	f64ExpMask  uint64 = 0x7ff
	f64MantMask uint64 = 1<<f64ExpShift - 1
	f64ExpShift        = 52
	f64ExpBias         = 1023
)

// FloatBits returns the float32 bit pattern with the same value as h. Every
// half is exactly representable as a float32, so nothing is lost; NaN
// payloads land in the top 10 float32 mantissa bits uncanonicalised.
func (h Half) FloatBits() uint32 {
	sign, exponent, mantissa := h.split()
	sign32 := uint32(sign) << 16
	m := uint32(mantissa)
	e := int(exponent)
	switch {
	case exponent == 0:
		if mantissa == 0 {
			return sign32
		}
		// Subnormal: shift the mantissa up until its leading bit reaches
		// the implicit position, walking the exponent down as we go.
		for m&(1<<expShift) == 0 {
			m <<= 1
			e--
		}
		e++
		m &= uint32(mantMask)
	case exponent == 0x1f:
		// Infinity or NaN.
		return sign32 | f32ExpMask | m<<13
	}
	e = e - expBias + f32ExpBias
	return sign32 | uint32(e)<<f32ExpShift | m<<13
}

// FromFloatBits converts a float32 bit pattern to the half with the same
// value, truncating: the low 13 mantissa bits are discarded as-is rather
// than rounded to nearest, so results round toward zero. Magnitudes beyond
// the binary16 range become signed infinity and magnitudes below the
// smallest subnormal flush to signed zero.
func FromFloatBits(f uint32) Half {
	sign := Half(f>>16) & signMask
	rawExp := (f >> f32ExpShift) & 0xff
	mantissa := f & f32MantMask
	e := int(rawExp) - f32ExpBias + expBias
	switch {
	case e <= 0:
		if e < -10 {
			// Below even the subnormal range.
			return sign
		}
		// Subnormal: restore the implicit bit, then shift the whole 24 bit
		// mantissa down into place, dropping the low bits.
		mantissa |= 1 << f32ExpShift
		return sign | Half(mantissa>>uint(14-e))
	case e >= 31:
		// The NaN test has to look at the unrebiased source exponent
		// field: ordinary values too large for a half also land here.
		if rawExp == 0xff && mantissa != 0 {
			return sign | NaN | Half(mantissa>>13)
		}
		return sign | PosInf
	}
	return sign | Half(e)<<expShift | Half(mantissa>>13)
}

// DoubleBits returns the float64 bit pattern with the same value as h,
// composed from the float32 pattern plus a pure width adjustment. A half
// always widens to a float32 zero, normal, infinity or NaN, so the
// adjustment never meets a float32 subnormal.
func (h Half) DoubleBits() uint64 {
	f := h.FloatBits()
	sign := uint64(f&f32SignMask) << 32
	rawExp := (f >> f32ExpShift) & 0xff
	mantissa := uint64(f & f32MantMask)
	switch {
	case rawExp == 0xff:
		return sign | f64ExpMask<<f64ExpShift | mantissa<<29
	case rawExp == 0:
		return sign
	}
	e := int(rawExp) - f32ExpBias + f64ExpBias
	return sign | uint64(e)<<f64ExpShift | mantissa<<29
}

// FromDoubleBits converts a float64 bit pattern to a half, narrowing through
// the float32 pattern. Mantissa bits beyond float32's 23 are discarded
// before the half truncation is ever applied, and the intermediate
// narrowing truncates too, matching the codec's round-toward-zero contract.
func FromDoubleBits(d uint64) Half {
	sign := uint32(d>>32) & f32SignMask
	rawExp := (d >> f64ExpShift) & f64ExpMask
	mantissa := d & f64MantMask
	e := int(rawExp) - f64ExpBias + f32ExpBias
	var f uint32
	switch {
	case rawExp == f64ExpMask:
		f = sign | f32ExpMask | uint32(mantissa>>29)
		if mantissa != 0 && mantissa>>29 == 0 {
			// A NaN whose payload sits entirely in the discarded low
			// bits has to stay a NaN.
			f |= 1 << 22
		}
	case e >= 0xff:
		f = sign | f32ExpMask
	case e <= 0:
		// Below float32's normal range, which is already far below the
		// smallest half subnormal.
		f = sign
	default:
		f = sign | uint32(e)<<f32ExpShift | uint32(mantissa>>29)
	}
	return FromFloatBits(f)
}

// Float converts h to a native float type. The float32 value is exact, and
// the float64 value is the exact widening of it.
func Float[T constraints.Float](h Half) T {
	return T(math.Float32frombits(h.FloatBits()))
}

// FromFloat converts a native float into a Half, truncating. The argument is
// widened to float64 first, which is exact for any float32, so both float
// types take the same bit-level path.
func FromFloat[T constraints.Float](f T) Half {
	return FromDoubleBits(math.Float64bits(float64(f)))
}
