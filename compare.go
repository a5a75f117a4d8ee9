package half

// Comparisons convert both operands to float32 and lean on the native
// comparison, which supplies the IEEE rules for free: every ordering
// comparison is false when either operand is NaN, Ne is true, Eq is false,
// and the two zeros compare equal.

// Eq reports whether h == o by value.
func (h Half) Eq(o Half) bool { return Float[float32](h) == Float[float32](o) }

// Ne reports whether h != o by value.
func (h Half) Ne(o Half) bool { return Float[float32](h) != Float[float32](o) }

// Lt reports whether h < o.
func (h Half) Lt(o Half) bool { return Float[float32](h) < Float[float32](o) }

// Le reports whether h <= o.
func (h Half) Le(o Half) bool { return Float[float32](h) <= Float[float32](o) }

// Gt reports whether h > o.
func (h Half) Gt(o Half) bool { return Float[float32](h) > Float[float32](o) }

// Ge reports whether h >= o.
func (h Half) Ge(o Half) bool { return Float[float32](h) >= Float[float32](o) }

// The NoNaN variants carry the caller's promise that neither operand is a
// NaN. They are the same comparison, not a different algorithm: the separate
// names exist so call sites can record that the precondition has already
// been established. If the promise is broken the result is unspecified.

func (h Half) EqNoNaN(o Half) bool { return h.Eq(o) }
func (h Half) NeNoNaN(o Half) bool { return h.Ne(o) }
func (h Half) LtNoNaN(o Half) bool { return h.Lt(o) }
func (h Half) LeNoNaN(o Half) bool { return h.Le(o) }
func (h Half) GtNoNaN(o Half) bool { return h.Gt(o) }
func (h Half) GeNoNaN(o Half) bool { return h.Ge(o) }
