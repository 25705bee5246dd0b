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

// Package entropy implements the statistical core of the compressor: the
// 32-bit arithmetic coder, the Kneser-Ney PPM model, the LZP predictor and
// the context mixer that drives them all. They live together in one flat
// package, the way the teacher keeps its coder and its predictors side by
// side under entropy/ rather than splitting each codec into its own module.
package entropy

import "github.com/qicm-project/qicm-go/bitio"

const (
	prec    = 32
	whole   = uint64(1) << prec
	half    = whole >> 1
	qtr     = whole >> 2
	threeQ  = 3 * qtr
)

// Encoder is a 32-bit-precision arithmetic (range) encoder writing through
// a bitio.Writer. It exposes both a cumulative-range byte API (used by the
// PPM byte-mode path, format version 7) and a single-bit API (used by the
// context mixer, format versions 8 and 9).
type Encoder struct {
	w    *bitio.Writer
	lo   uint64
	hi   uint64
	pend uint32
}

// NewEncoder creates an arithmetic encoder writing to w.
func NewEncoder(w *bitio.Writer) *Encoder {
	this := &Encoder{w: w, lo: 0, hi: whole - 1}
	return this
}

// EncodeRange codes a symbol occupying the half-open cumulative range
// [cl, ch) out of total.
func (this *Encoder) EncodeRange(cl, ch, total uint64) {
	r := this.hi - this.lo + 1
	this.hi = this.lo + (r*ch)/total - 1
	this.lo = this.lo + (r*cl)/total
	this.renorm()
}

// EncodeBit codes a single bit with P(bit=1) = p1/scale. p1 must already
// be clamped to [1, scale-1] by the caller.
func (this *Encoder) EncodeBit(bit byte, p1, scale uint64) {
	threshold := scale - p1

	if bit != 0 {
		this.EncodeRange(threshold, scale, scale)
	} else {
		this.EncodeRange(0, threshold, scale)
	}
}

// Finish flushes the final disambiguating bits. Must be called exactly
// once, after the last symbol/bit has been encoded.
func (this *Encoder) Finish() {
	this.pend++

	if this.lo < qtr {
		this.emit(0)
	} else {
		this.emit(1)
	}
}

func (this *Encoder) renorm() {
	for {
		if this.hi < half {
			this.emit(0)
		} else if this.lo >= half {
			this.emit(1)
			this.lo -= half
			this.hi -= half
		} else if this.lo >= qtr && this.hi < threeQ {
			this.pend++
			this.lo -= qtr
			this.hi -= qtr
		} else {
			break
		}

		this.lo <<= 1
		this.hi = (this.hi << 1) | 1
	}
}

func (this *Encoder) emit(bit byte) {
	this.w.WriteBit(bit)
	var comp byte = 1 - bit

	for i := uint32(0); i < this.pend; i++ {
		this.w.WriteBit(comp)
	}

	this.pend = 0
}

// Decoder is the symmetric counterpart of Encoder.
type Decoder struct {
	r   *bitio.Reader
	lo  uint64
	hi  uint64
	val uint64
}

// NewDecoder creates an arithmetic decoder reading from r, priming its
// internal value from the first prec bits of the stream.
func NewDecoder(r *bitio.Reader) *Decoder {
	this := &Decoder{r: r, lo: 0, hi: whole - 1}

	for i := 0; i < prec; i++ {
		this.val = (this.val << 1) | uint64(r.ReadBit())
	}

	return this
}

// DecodeRange resolves the symbol whose cumulative range contains the
// current coded value, given a cumulative array cum of length n+1 (cum[0]=0,
// cum[n]=total) and returns its index.
func (this *Decoder) DecodeRange(cum []uint64, total uint64) int {
	r := this.hi - this.lo + 1
	scaled := ((this.val-this.lo+1)*total - 1) / r

	lo, hi := 0, len(cum)-2

	for lo < hi {
		mid := (lo + hi) >> 1

		if cum[mid+1] <= scaled {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	idx := lo
	this.hi = this.lo + (r*cum[idx+1])/total - 1
	this.lo = this.lo + (r*cum[idx])/total
	this.renorm()
	return idx
}

// DecodeBit decodes a single bit coded with P(bit=1) = p1/scale.
func (this *Decoder) DecodeBit(p1, scale uint64) byte {
	r := this.hi - this.lo + 1
	threshold := scale - p1
	scaled := ((this.val-this.lo+1)*scale - 1) / r

	if scaled < threshold {
		this.hi = this.lo + (r*threshold)/scale - 1
		this.renorm()
		return 0
	}

	this.lo = this.lo + (r*threshold)/scale
	this.renorm()
	return 1
}

func (this *Decoder) renorm() {
	for {
		if this.hi < half {
			// pass
		} else if this.lo >= half {
			this.val -= half
			this.lo -= half
			this.hi -= half
		} else if this.lo >= qtr && this.hi < threeQ {
			this.val -= qtr
			this.lo -= qtr
			this.hi -= qtr
		} else {
			break
		}

		this.lo <<= 1
		this.hi = (this.hi << 1) | 1
		this.val = (this.val << 1) | uint64(this.r.ReadBit())
	}
}
