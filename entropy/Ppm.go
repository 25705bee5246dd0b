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
	"math"

	"github.com/qicm-project/qicm-go/corpus"
	"github.com/qicm-project/qicm-go/internal"
)

const (
	// MaxOrder is the highest PPM context order modeled (orders 0..MaxOrder).
	MaxOrder = 6
	// discount is the Kneser-Ney subtracted mass per observed count.
	discount = 0.85
)

// symCounts is a compact symbol->count map for one PPM context. A flat
// slice of (symbol, count) pairs scanned linearly on update: per spec the
// alphabet is bounded at 256 and, in practice, any one context's distinct
// symbol count is small, so linear scan beats the overhead of a map here -
// the same bet the reference implementation makes.
type symCounts struct {
	syms   []byte
	counts []uint32
}

func (this *symCounts) increment(sym byte) {
	for i, s := range this.syms {
		if s == sym {
			this.counts[i]++
			return
		}
	}

	this.syms = append(this.syms, sym)
	this.counts = append(this.counts, 1)
}

func (this *symCounts) total() uint32 {
	var s uint32

	for _, c := range this.counts {
		s += c
	}

	return s
}

// Ppm is a Kneser-Ney-smoothed prediction-by-partial-matching model over
// contexts of order 0..maxOrder, with no escape mechanism (all orders are
// interpolated down to the order-0 base distribution).
type Ppm struct {
	maxOrder int
	ctx      []map[uint32]*symCounts
	hist     []byte
	baseFreq *[256]uint32
}

// NewPpm creates a PPM model with the given maximum context order.
func NewPpm(maxOrder int) *Ppm {
	this := &Ppm{maxOrder: maxOrder}
	this.ctx = make([]map[uint32]*symCounts, maxOrder+1)

	for i := range this.ctx {
		this.ctx[i] = make(map[uint32]*symCounts)
	}

	return this
}

// NewDefaultPpm creates a PPM model at the standard order (6).
func NewDefaultPpm() *Ppm {
	return NewPpm(MaxOrder)
}

// Clone deep-copies this model so a pretrained instance can seed one
// worker per parallel block without sharing mutable state.
func (this *Ppm) Clone() *Ppm {
	that := &Ppm{maxOrder: this.maxOrder}
	that.ctx = make([]map[uint32]*symCounts, len(this.ctx))

	for i, m := range this.ctx {
		nm := make(map[uint32]*symCounts, len(m))

		for h, sc := range m {
			nsc := &symCounts{
				syms:   append([]byte(nil), sc.syms...),
				counts: append([]uint32(nil), sc.counts...),
			}
			nm[h] = nsc
		}

		that.ctx[i] = nm
	}

	that.hist = append([]byte(nil), this.hist...)

	if this.baseFreq != nil {
		bf := *this.baseFreq
		that.baseFreq = &bf
	}

	return that
}

func (this *Ppm) hash(order int) (uint32, bool) {
	n := len(this.hist)

	if order > n {
		return 0, false
	}

	if order == 0 {
		return 0, true
	}

	return internal.FNV32a(this.hist, n-order, n), true
}

// Update records byte as the observed symbol following every active
// context order, then appends it to the history.
func (this *Ppm) Update(b byte) {
	for order := 0; order <= this.maxOrder; order++ {
		h, ok := this.hash(order)

		if !ok {
			continue
		}

		this.insertCount(order, h, b)
	}

	this.hist = append(this.hist, b)
}

// UpdateCached is Update using order hashes already computed by the caller
// (the mixer computes them once per byte and shares them with the PPM
// update and distribution build).
func (this *Ppm) UpdateCached(b byte, orderHashes []uint32, maxOrder int) {
	limit := this.maxOrder + 1

	if maxOrder < limit {
		limit = maxOrder
	}

	for order := 0; order < limit; order++ {
		this.insertCount(order, orderHashes[order], b)
	}

	this.hist = append(this.hist, b)
}

func (this *Ppm) insertCount(order int, h uint32, b byte) {
	sc, ok := this.ctx[order][h]

	if !ok {
		sc = &symCounts{}
		this.ctx[order][h] = sc
	}

	sc.increment(b)
}

// Pretrain replays data through Update, then derives the base unigram
// frequency table from it and damps every existing count by sqrt, which
// preserves common patterns while letting novel text adapt quickly.
func (this *Ppm) Pretrain(data []byte) {
	for _, b := range data {
		this.Update(b)
	}

	this.FinishPretrain(data)
}

// FinishPretrain derives the base unigram frequency table from data and
// damps every context count, for callers that replayed data through
// Update themselves (the mixer interleaves PPM updates with its own
// bit-table pretraining).
func (this *Ppm) FinishPretrain(data []byte) {
	var base [256]uint32

	for i := range base {
		base[i] = 1
	}

	for _, b := range data {
		base[b] += 2
	}

	this.baseFreq = &base

	for order := 0; order <= this.maxOrder; order++ {
		for _, sc := range this.ctx[order] {
			for i, c := range sc.counts {
				v := isqrt(c)

				if v < 1 {
					v = 1
				}

				sc.counts[i] = v
			}
		}
	}
}

// classBase is a small conditional prior keyed on the previous byte: after
// a lowercase letter, boost lowercase letters and terminal punctuation;
// after a space, boost word tokens and the capitalization marker; and so
// on. The table is fixed and reproduced byte-for-byte from the reference
// model so probabilities match regardless of implementation language.
func (this *Ppm) classBase() [256]uint32 {
	var base [256]uint32

	for i := range base {
		base[i] = 1
	}

	n := len(this.hist)

	if n == 0 {
		return base
	}

	prev := this.hist[n-1]

	switch {
	case prev >= 129:
		base[32] = 150
		base[44] = 40
		base[46] = 40
		base[39] = 15
		base[10] = 15
		base[59] = 5
		base[58] = 5
		base[45] = 8
		base[33] = 3
		base[63] = 3

	case prev >= 97 && prev <= 122:
		for b := 97; b <= 122; b++ {
			base[b] = 40
		}

		base[32] = 120
		base[44] = 25
		base[46] = 25
		base[39] = 15
		base[45] = 8
		base[10] = 10

		for b := 129; b <= 255; b++ {
			base[b] = 5
		}

	case prev == 32:
		for b := 129; b <= 255; b++ {
			base[b] = 60
		}

		base[128] = 40

		for b := 97; b <= 122; b++ {
			base[b] = 25
		}

		for b := 65; b <= 90; b++ {
			base[b] = 15
		}

		base[34] = 5

	case prev == 46 || prev == 33 || prev == 63:
		base[32] = 200
		base[10] = 50

	case prev == 44:
		base[32] = 200

	case prev == 10:
		base[10] = 30

		for b := 129; b <= 255; b++ {
			base[b] = 25
		}

		base[128] = 40

		for b := 65; b <= 90; b++ {
			base[b] = 20
		}

	case prev == 128:
		for b := 129; b <= 255; b++ {
			base[b] = 80
		}

	case prev >= 65 && prev <= 90:
		for b := 97; b <= 122; b++ {
			base[b] = 80
		}
	}

	return base
}

// DistributionF computes the Kneser-Ney-smoothed probability distribution
// over all 256 byte values from the model's current state.
func (this *Ppm) DistributionF() [256]float64 {
	var hashes [7]uint32
	n := len(this.hist)
	maxOrder := this.maxOrder + 1

	if n+1 < maxOrder {
		maxOrder = n + 1
	}

	for order := 0; order < maxOrder; order++ {
		h, ok := this.hash(order)

		if ok {
			hashes[order] = h
		}
	}

	return this.DistributionFCached(hashes[:], maxOrder)
}

// DistributionFCached is DistributionF using precomputed per-order context
// hashes, shared with the mixer's byte-level hash computation.
func (this *Ppm) DistributionFCached(orderHashes []uint32, maxOrder int) [256]float64 {
	baseArr := corpus.CharFreq()

	if this.baseFreq != nil {
		baseArr = *this.baseFreq
	}

	classBase := this.classBase()

	var mixed [256]uint32
	var freqTotal uint64

	for b := 0; b < 256; b++ {
		mixed[b] = baseArr[b] + classBase[b]
		freqTotal += uint64(mixed[b])
	}

	invFreqTotal := 1.0 / float64(freqTotal)

	var dist [256]float64

	for b := 0; b < 256; b++ {
		dist[b] = float64(mixed[b]) * invFreqTotal
	}

	limit := this.maxOrder + 1

	if maxOrder < limit {
		limit = maxOrder
	}

	for order := 0; order < limit; order++ {
		h := orderHashes[order]
		sc, ok := this.ctx[order][h]

		if !ok {
			continue
		}

		cTotal := sc.total()

		if cTotal == 0 {
			continue
		}

		nUnique := float64(len(sc.syms))
		invCTotal := 1.0 / float64(cTotal)
		lam := discount * nUnique * invCTotal

		var newDist [256]float64

		for b := 0; b < 256; b++ {
			newDist[b] = lam * dist[b]
		}

		for i, sym := range sc.syms {
			direct := math.Max(float64(sc.counts[i])-discount, 0.0) * invCTotal
			newDist[sym] += direct
		}

		dist = newDist
	}

	const eps = 0.10

	for b := 0; b < 256; b++ {
		dist[b] = (1.0-eps)*dist[b] + eps*float64(mixed[b])*invFreqTotal
	}

	return dist
}

// distribution applies the byte-mode LZP mixing schedule (steeper than the
// mixer-internal one, see Mixer.buildCumCached) and converts to integer counts
// suitable for the cumulative-range coder.
func (this *Ppm) distribution(matchByte, matchLen int32) [256]uint32 {
	dist := this.DistributionF()

	if matchByte >= 0 && matchLen >= 4 {
		lzpW := math.Min(float64(matchLen)*0.04, 0.65)
		rest := 0.02 / 255.0

		for b := 0; b < 256; b++ {
			if int32(b) == matchByte {
				dist[b] = (1.0-lzpW)*dist[b] + lzpW*0.98
			} else {
				dist[b] = (1.0-lzpW)*dist[b] + lzpW*rest
			}
		}
	}

	var counts [256]uint32

	for b := 0; b < 256; b++ {
		c := uint32(math.Round(dist[b] * 65536.0))

		if c < 1 {
			c = 1
		}

		counts[b] = c
	}

	return counts
}

// EncodeByte codes byte through enc using the byte-mode (version 7)
// distribution, mixing in an LZP prediction if one is available.
func (this *Ppm) EncodeByte(b byte, enc *Encoder, matchByte, matchLen int32) {
	counts := this.distribution(matchByte, matchLen)

	var cum, cl, ch uint64

	for i := 0; i < 256; i++ {
		if byte(i) == b {
			cl = cum
			ch = cum + uint64(counts[i])
		}

		cum += uint64(counts[i])
	}

	enc.EncodeRange(cl, ch, cum)
	this.Update(b)
}

// DecodeByte is the symmetric counterpart of EncodeByte.
func (this *Ppm) DecodeByte(dec *Decoder, matchByte, matchLen int32) byte {
	counts := this.distribution(matchByte, matchLen)

	var cum [257]uint64

	for i := 0; i < 256; i++ {
		cum[i+1] = cum[i] + uint64(counts[i])
	}

	idx := dec.DecodeRange(cum[:], cum[256])
	this.Update(byte(idx))
	return byte(idx)
}

func isqrt(v uint32) uint32 {
	return uint32(math.Sqrt(float64(v)))
}
