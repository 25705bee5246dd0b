/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package entropy

import (
	"math/rand"
	"testing"

	"github.com/qicm-project/qicm-go/bitio"
)

func TestBitRoundTripFixedProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 5000
	bits := make([]byte, n)

	w := bitio.NewWriter()
	enc := NewEncoder(w)

	for i := range bits {
		bits[i] = byte(rng.Intn(2))
		enc.EncodeBit(bits[i], 20000, bitScale)
	}

	enc.Finish()

	r := bitio.NewReader(w.Bytes())
	dec := NewDecoder(r)

	for i, want := range bits {
		if got := dec.DecodeBit(20000, bitScale); got != want {
			t.Fatalf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestBitRoundTripVaryingProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	n := 5000
	bits := make([]byte, n)
	probs := make([]uint64, n)

	w := bitio.NewWriter()
	enc := NewEncoder(w)

	for i := range bits {
		probs[i] = uint64(1 + rng.Intn(int(bitScale)-1))
		// Bias the bit toward its own probability so the stream isn't
		// maximally incompressible.
		threshold := bitScale - probs[i]
		r := uint64(rng.Intn(int(bitScale)))

		if r >= threshold {
			bits[i] = 1
		} else {
			bits[i] = 0
		}

		enc.EncodeBit(bits[i], probs[i], bitScale)
	}

	enc.Finish()

	r := bitio.NewReader(w.Bytes())
	dec := NewDecoder(r)

	for i, want := range bits {
		if got := dec.DecodeBit(probs[i], bitScale); got != want {
			t.Fatalf("bit %d: got %d, want %d (p1=%d)", i, got, want, probs[i])
		}
	}
}

func TestByteRangeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	symbols := make([]int, 2000)

	// A skewed 4-symbol cumulative distribution.
	cum := []uint64{0, 50, 70, 90, 100}

	w := bitio.NewWriter()
	enc := NewEncoder(w)

	for i := range symbols {
		r := rng.Intn(100)
		sym := 0

		for s := 0; s < 4; s++ {
			if uint64(r) >= cum[s] && uint64(r) < cum[s+1] {
				sym = s
				break
			}
		}

		symbols[i] = sym
		enc.EncodeRange(cum[sym], cum[sym+1], cum[4])
	}

	enc.Finish()

	r := bitio.NewReader(w.Bytes())
	dec := NewDecoder(r)

	for i, want := range symbols {
		if got := dec.DecodeRange(cum, cum[4]); got != want {
			t.Fatalf("symbol %d: got %d, want %d", i, got, want)
		}
	}
}

func TestEmptyStreamFinishes(t *testing.T) {
	w := bitio.NewWriter()
	enc := NewEncoder(w)
	enc.Finish()

	if len(w.Bytes()) == 0 {
		t.Errorf("expected at least one byte of finish bits")
	}
}

func TestIntervalInvariantDuringEncode(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	w := bitio.NewWriter()
	enc := NewEncoder(w)

	for i := 0; i < 1000; i++ {
		bit := byte(rng.Intn(2))
		enc.EncodeBit(bit, uint64(1+rng.Intn(int(bitScale)-1)), bitScale)

		if enc.lo > enc.hi {
			t.Fatalf("interval invariant broken: lo=%d > hi=%d", enc.lo, enc.hi)
		}

		if enc.hi-enc.lo < qtr {
			t.Fatalf("renormalization invariant broken: hi-lo=%d < qtr=%d", enc.hi-enc.lo, qtr)
		}
	}
}
