// verify-half exhaustively checks the half codec over every 16 bit pattern:
// round trips through the float32 and float64 bit patterns, agreement
// between the bit-level and value-level surfaces, widening agreement with
// the x448/float16 implementation, and ordering consistency against native
// float32 comparison over a strided sample of pairs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"

	"github.com/x448/float16"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/half"
)

var strideFlag = flag.Int("stride", 101, "stride between second operands when sampling ordering pairs; must be odd so the sample is coprime with the pattern space")

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("verify-half: ")

	if *strideFlag <= 0 || *strideFlag%2 == 0 {
		log.Fatalf("-stride must be positive and odd, got %d", *strideFlag)
	}

	var patterns, pairs atomic.Int64

	g, ctx := errgroup.WithContext(interruptContext())
	shards := runtime.GOMAXPROCS(0)
	per := (0x10000 + shards - 1) / shards
	for s := 0; s < shards; s++ {
		lo, hi := s*per, min((s+1)*per, 0x10000)
		g.Go(func() error {
			return verifyRange(ctx, lo, hi, *strideFlag, &patterns, &pairs)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("ok: %d patterns, %d ordered pairs\n", patterns.Load(), pairs.Load())
}

func verifyRange(ctx context.Context, lo, hi, stride int, patterns, pairs *atomic.Int64) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		h := half.FromBits(uint16(i))
		if err := verifyPattern(h); err != nil {
			return fmt.Errorf("pattern %#04x: %w", i, err)
		}
		patterns.Add(1)

		if h.IsNaN() {
			continue
		}
		fa := half.Float[float32](h)
		for j := i % stride; j < 0x10000; j += stride {
			o := half.FromBits(uint16(j))
			if o.IsNaN() {
				continue
			}
			fb := half.Float[float32](o)
			if h.Lt(o) != (fa < fb) || h.Le(o) != (fa <= fb) || h.Eq(o) != (fa == fb) {
				return fmt.Errorf("ordering mismatch between %#04x and %#04x", i, j)
			}
			pairs.Add(1)
		}
	}
	return nil
}

func verifyPattern(h half.Half) error {
	fbits := h.FloatBits()
	if got := math.Float32bits(half.Float[float32](h)); got != fbits {
		return fmt.Errorf("value surface widens to %#08x, bit surface to %#08x", got, fbits)
	}
	if h.IsNaN() {
		// Narrowing quietens NaNs and the oracle canonicalises them, so
		// the remaining checks only apply to the rest of the domain.
		if !half.FromFloatBits(fbits).IsNaN() {
			return fmt.Errorf("NaN widened to %#08x which narrows to a non-NaN", fbits)
		}
		return nil
	}
	if got := half.FromFloatBits(fbits); got != h {
		return fmt.Errorf("float32 round trip came back as %#04x", got.Bits())
	}
	if got := half.FromDoubleBits(h.DoubleBits()); got != h {
		return fmt.Errorf("float64 round trip came back as %#04x", got.Bits())
	}
	if want := math.Float32bits(float16.Frombits(h.Bits()).Float32()); want != fbits {
		return fmt.Errorf("widened to %#08x, x448/float16 says %#08x", fbits, want)
	}
	if got := half.Nextafter(h, h); got != h {
		return fmt.Errorf("Nextafter(h, h) = %#04x", got.Bits())
	}
	return nil
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
