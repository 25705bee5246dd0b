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

package internal

import "math"

// Stretch/squash table sizing and range. These must be reproduced exactly
// on both the encoding and decoding side: the mixer's logit-space mixing
// is only deterministic if both run the same precomputed table, built with
// the same float64 operation order.
const (
	StretchTableSize = 4096
	SquashTableSize  = 4096
	SquashRange      = 12.0

	fnvOffsetBasis32 = 2166136261
	fnvPrime32       = 16777619
)

var (
	stretchLUT [StretchTableSize + 1]float64
	squashLUT  [SquashTableSize + 1]float64
)

func init() {
	for i := 0; i <= StretchTableSize; i++ {
		p := float64(i) / float64(StretchTableSize)

		if p < 1e-4 {
			p = 1e-4
		} else if p > 1.0-1e-4 {
			p = 1.0 - 1e-4
		}

		stretchLUT[i] = math.Log(p / (1.0 - p))
	}

	for i := 0; i <= SquashTableSize; i++ {
		x := (float64(i)/float64(SquashTableSize))*2.0*SquashRange - SquashRange
		squashLUT[i] = 1.0 / (1.0 + math.Exp(-x))
	}
}

// Stretch is the logit of p: ln(p/(1-p)), read from a precomputed table so
// both sides of a compress/decompress pair agree bit-for-bit.
func Stretch(p float64) float64 {
	idx := int(p * StretchTableSize)

	if idx > StretchTableSize {
		idx = StretchTableSize
	} else if idx < 0 {
		idx = 0
	}

	return stretchLUT[idx]
}

// Squash is the logistic of x: 1/(1+e^-x), clamped outside [-SquashRange, SquashRange].
func Squash(x float64) float64 {
	if x >= SquashRange {
		return 1.0 - 1e-5
	}

	if x <= -SquashRange {
		return 1e-5
	}

	idx := int((x + SquashRange) / (2.0 * SquashRange) * SquashTableSize)

	if idx > SquashTableSize {
		idx = SquashTableSize
	} else if idx < 0 {
		idx = 0
	}

	return squashLUT[idx]
}

// FNV32a returns the FNV-1a 32-bit hash of data[start:end]. Implemented
// directly rather than through hash/fnv: this is called once per context
// order per byte, and hash/fnv.New32a would require allocating a hash.Hash32 per call. Kanzi's
// own hash primitive (hash/XXHash64.go) is hand-rolled for the same reason.
func FNV32a(data []byte, start, end int) uint32 {
	h := uint32(fnvOffsetBasis32)

	for i := start; i < end; i++ {
		h = (h ^ uint32(data[i])) * fnvPrime32
	}

	return h
}
