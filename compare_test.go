package half

import "testing"

func TestCompareNaN(t *testing.T) {
	for _, x := range []Half{PosZero, NegZero, 0x3c00, 0xc000, PosInf, NegInf, NaN, 0x7c01} {
		if NaN.Eq(x) || x.Eq(NaN) {
			t.Errorf("Eq(NaN, %#04x) = true", x.Bits())
		}
		if !NaN.Ne(x) || !x.Ne(NaN) {
			t.Errorf("Ne(NaN, %#04x) = false", x.Bits())
		}
		if NaN.Lt(x) || NaN.Le(x) || NaN.Gt(x) || NaN.Ge(x) {
			t.Errorf("ordering comparison with NaN lhs true for %#04x", x.Bits())
		}
		if x.Lt(NaN) || x.Le(NaN) || x.Gt(NaN) || x.Ge(NaN) {
			t.Errorf("ordering comparison with NaN rhs true for %#04x", x.Bits())
		}
	}
}

func TestCompare(t *testing.T) {
	for _, c := range []struct {
		a, b       Half
		eq, lt, le bool
	}{
		{PosZero, NegZero, true, false, true},
		{PosZero, PosZero, true, false, true},
		{0x3c00, 0x3c00, true, false, true},
		{0x3c00, 0x4000, false, true, true},
		{0xc000, 0x3c00, false, true, true},
		{NegInf, 0xc000, false, true, true},
		{MaxFinite, PosInf, false, true, true},
		{0x8001, PosZero, false, true, true},
		{NegInf, PosInf, false, true, true},
	} {
		if got := c.a.Eq(c.b); got != c.eq {
			t.Errorf("Eq(%#04x, %#04x) = %t, want %t", c.a.Bits(), c.b.Bits(), got, c.eq)
		}
		if got := c.a.Ne(c.b); got == c.eq {
			t.Errorf("Ne(%#04x, %#04x) = %t, want %t", c.a.Bits(), c.b.Bits(), got, !c.eq)
		}
		if got := c.a.Lt(c.b); got != c.lt {
			t.Errorf("Lt(%#04x, %#04x) = %t, want %t", c.a.Bits(), c.b.Bits(), got, c.lt)
		}
		if got := c.a.Le(c.b); got != c.le {
			t.Errorf("Le(%#04x, %#04x) = %t, want %t", c.a.Bits(), c.b.Bits(), got, c.le)
		}
		// Gt/Ge are the mirror image.
		if got := c.b.Gt(c.a); got != c.lt {
			t.Errorf("Gt(%#04x, %#04x) = %t, want %t", c.b.Bits(), c.a.Bits(), got, c.lt)
		}
		if got := c.b.Ge(c.a); got != c.le {
			t.Errorf("Ge(%#04x, %#04x) = %t, want %t", c.b.Bits(), c.a.Bits(), got, c.le)
		}
	}
}

// TestOrderingConsistency walks a coprime-stride sample of all pairs and
// checks every comparison, and its NoNaN twin, against the float32 ordering.
func TestOrderingConsistency(t *testing.T) {
	for a := 0; a <= 0xffff; a += 149 {
		x := Half(a)
		if x.IsNaN() {
			continue
		}
		fx := Float[float32](x)
		for b := 0; b <= 0xffff; b += 151 {
			y := Half(b)
			if y.IsNaN() {
				continue
			}
			fy := Float[float32](y)
			for _, c := range []struct {
				name             string
				got, nonan, want bool
			}{
				{"Eq", x.Eq(y), x.EqNoNaN(y), fx == fy},
				{"Ne", x.Ne(y), x.NeNoNaN(y), fx != fy},
				{"Lt", x.Lt(y), x.LtNoNaN(y), fx < fy},
				{"Le", x.Le(y), x.LeNoNaN(y), fx <= fy},
				{"Gt", x.Gt(y), x.GtNoNaN(y), fx > fy},
				{"Ge", x.Ge(y), x.GeNoNaN(y), fx >= fy},
			} {
				if c.got != c.want || c.nonan != c.want {
					t.Fatalf("%s(%#04x, %#04x) = %t/%t, want %t", c.name, a, b, c.got, c.nonan, c.want)
				}
			}
		}
	}
}
