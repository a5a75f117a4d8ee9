package half

// Neg returns h with the sign bit flipped. Negating a NaN flips the sign of
// the NaN, negating a zero swaps between the two zeros.
func (h Half) Neg() Half { return h ^ signMask }

// Abs returns h with the sign bit cleared.
func (h Half) Abs() Half { return h &^ signMask }

// Copysign returns the magnitude bits of x combined with the sign bit of y.
func Copysign(x, y Half) Half { return x&^signMask | y&signMask }

// Spacing returns the distance from h to the neighbouring representable
// value in the direction away from zero: NaN for NaN or infinity, the
// smallest subnormal throughout the zero and subnormal range, and otherwise
// 2^(exponent-24) floored at the smallest normal spacing.
func Spacing(h Half) Half {
	exp := h & expMask
	switch {
	case exp == expMask:
		return NaN
	case exp == 0:
		return MinSubnormal
	}
	e := int(exp>>expShift) - 24
	if e < 1 {
		e = 1
	}
	return Half(e) << expShift
}

// Nextafter returns the adjacent representable value stepping from x toward
// y: NaN if either input is a NaN, y itself when the two compare equal, and
// the smallest subnormal with y's direction when x is a zero. Within one
// sign the unsigned bit patterns are ordered by magnitude, so the step is a
// bare ±1 on the pattern.
func Nextafter(x, y Half) Half {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	fx, fy := Float[float32](x), Float[float32](y)
	if fx == fy {
		return y
	}
	if x.IsZero() {
		if fy > 0 {
			return MinSubnormal
		}
		return signMask | MinSubnormal
	}
	if (fx > fy) == !x.Signbit() {
		return x - 1
	}
	return x + 1
}

// Divmod returns the float32 quotient x/y and the residue x - quotient*y,
// both narrowed (truncating) back to half. The residue is whatever float32
// arithmetic leaves over, not a floor-mod: dividing by zero yields an
// infinite quotient and a NaN residue.
func Divmod(x, y Half) (quotient, modulus Half) {
	fx, fy := Float[float32](x), Float[float32](y)
	div := fx / fy
	mod := fx - div*fy
	return FromFloat(div), FromFloat(mod)
}
