// show-half shows the representations of binary16 numbers, mostly for
// debugging conversions etc.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pfcm/half"
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	a, err := parse(flag.Arg(0))
	if err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)

	show(w, a)

	if flag.NArg() == 2 {
		b, err := parse(flag.Arg(1))
		if err != nil {
			fail(err.Error())
		}
		fmt.Fprintln(w)
		show(w, b)
		fmt.Fprintln(w)
		showOps(w, a, b)
	}

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

// parse reads either a bit pattern in Go integer syntax, or, failing that, a
// decimal value.
func parse(s string) (half.Half, error) {
	if raw, err := strconv.ParseUint(s, 0, 16); err == nil {
		return half.FromBits(uint16(raw)), nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a 16 bit pattern nor a number", s)
	}
	return half.FromFloat(f), nil
}

func show(w io.Writer, h half.Half) {
	b := h.Bits()
	fmt.Fprintf(w, "bits\t%#04x\t%b %05b %010b\n", b, b>>15, b>>10&0x1f, b&0x3ff)
	fmt.Fprintf(w, "class\t%s\n", class(h))
	fmt.Fprintf(w, "float32\t%g\t%#08x\n", half.Float[float32](h), h.FloatBits())
	fmt.Fprintf(w, "float64\t%g\t%#016x\n", half.Float[float64](h), h.DoubleBits())
	fmt.Fprintf(w, "spacing\t%v\t%#04x\n", half.Spacing(h), half.Spacing(h).Bits())
	up := half.Nextafter(h, half.PosInf)
	down := half.Nextafter(h, half.NegInf)
	fmt.Fprintf(w, "next up\t%v\t%#04x\n", up, up.Bits())
	fmt.Fprintf(w, "next down\t%v\t%#04x\n", down, down.Bits())
}

func showOps(w io.Writer, a, b half.Half) {
	fmt.Fprintf(w, "eq\t%t\tne\t%t\n", a.Eq(b), a.Ne(b))
	fmt.Fprintf(w, "lt\t%t\tle\t%t\n", a.Lt(b), a.Le(b))
	fmt.Fprintf(w, "gt\t%t\tge\t%t\n", a.Gt(b), a.Ge(b))
	q, m := half.Divmod(a, b)
	fmt.Fprintf(w, "divmod\t%v\t%v\n", q, m)
	n := half.Nextafter(a, b)
	fmt.Fprintf(w, "nextafter\t%v\t%#04x\n", n, n.Bits())
	c := half.Copysign(a, b)
	fmt.Fprintf(w, "copysign\t%v\t%#04x\n", c, c.Bits())
}

func class(h half.Half) string {
	switch {
	case h.IsNaN():
		return "nan"
	case h.IsInf():
		return "infinity"
	case h.IsZero():
		return "zero"
	case h.Bits()&0x7c00 == 0:
		return "subnormal"
	}
	return "normal"
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help, "\n")
	os.Exit(1)
}

const help = `show-half shows the binary16 interpretation of a bit pattern
and its conversions.
Usage:
	show-half num [num]

Where num is either an integer literal in Go syntax, read as a bit pattern,
or a number with a decimal point or exponent, converted to the nearest
(toward zero) half. If a second number is provided, also shows the results
of the comparisons and other two-argument operations between them.
`
