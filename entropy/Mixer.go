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

	"github.com/qicm-project/qicm-go/internal"
)

const (
	nOrderModels = MaxOrder + 1 // orders 0..6
	nExtraModels = 5            // skip-1, skip-2, sparse, word, match
	nBitModels   = nOrderModels + nExtraModels
	nModels      = 1 + nBitModels // +1 for the PPM-derived bit probability

	bitScale = uint64(1) << 15
	lr       = 0.001

	hidden = 6
	nnLR   = 0.01

	sseBins = 64
	sseRate = 0.005

	bitTableBits = 24
	bitTableSize = 1 << bitTableBits
	bitTableMask = uint32(bitTableSize - 1)

	goldenRatio = 0.618033988749895
)

type bitCounter [2]uint16

// Mixer combines a PPM distribution and twelve auxiliary bit-context
// models through a per-bit-position logistic mixer with a small residual
// neural correction, refined by a secondary symbol estimator (SSE). It
// drives the arithmetic coder one bit at a time over each byte's bit-tree
// decomposition.
type Mixer struct {
	maxOrder int
	Ppm      *Ppm
	Lzp      *Lzp
	hist     []byte
	bitTable []bitCounter
	wordHash uint32

	linearW [8][nModels]float64
	nnW1    [8][hidden][nModels]float64
	nnB1    [8][hidden]float64
	nnW2    [8][hidden]float64
	nnB2    [8]float64
	sse     [8][sseBins]float64
}

// NewMixer creates a context mixer at the given maximum PPM order.
func NewMixer(maxOrder int) *Mixer {
	this := &Mixer{
		maxOrder: maxOrder,
		Ppm:      NewPpm(maxOrder),
		Lzp:      NewLzp(),
		bitTable: make([]bitCounter, bitTableSize),
	}

	for bp := 0; bp < 8; bp++ {
		this.linearW[bp][0] = 1.0
	}

	scale := 0.1 / sqrtNModels()

	for bp := 0; bp < 8; bp++ {
		for j := 0; j < hidden; j++ {
			for i := 0; i < nModels; i++ {
				seed := float64(bp*hidden*nModels + j*nModels + i)
				frac := seed*goldenRatio - float64(int64(seed*goldenRatio))
				this.nnW1[bp][j][i] = (frac - 0.5) * 2.0 * scale
			}

			seed := float64(j) * goldenRatio * 7.0
			frac := seed - float64(int64(seed))
			this.nnB1[bp][j] = (frac - 0.5) * 0.05
		}

		for j := 0; j < hidden; j++ {
			this.nnW2[bp][j] = 0.15
		}

		for bin := 0; bin < sseBins; bin++ {
			this.sse[bp][bin] = (float64(bin) + 0.5) / float64(sseBins)
		}
	}

	return this
}

// NewDefaultMixer creates a mixer at the standard PPM order (6).
func NewDefaultMixer() *Mixer {
	return NewMixer(MaxOrder)
}

func sqrtNModels() float64 {
	// Computed rather than hardcoded so it stays correct if the model
	// count ever changes.
	return math.Sqrt(float64(nModels))
}

// Clone deep-copies this mixer, including its PPM and LZP sub-models, so a
// single pretrained instance can seed one worker per parallel block.
func (this *Mixer) Clone() *Mixer {
	that := &Mixer{
		maxOrder: this.maxOrder,
		Ppm:      this.Ppm.Clone(),
		Lzp:      this.Lzp.Clone(),
		hist:     append([]byte(nil), this.hist...),
		bitTable: append([]bitCounter(nil), this.bitTable...),
		wordHash: this.wordHash,
		linearW:  this.linearW,
		nnW1:     this.nnW1,
		nnB1:     this.nnB1,
		nnW2:     this.nnW2,
		nnB2:     this.nnB2,
		sse:      this.sse,
	}

	return that
}

// Pretrain populates the bit-context table (without running the mixer or
// the coder) and the PPM/LZP sub-models over data, then halves every
// bit-table counter so adaptation can proceed once real data arrives.
func (this *Mixer) Pretrain(data []byte) {
	for _, b := range data {
		var node uint32 = 1
		n := len(this.hist)
		maxOrder := this.maxOrder + 1

		if n+1 < maxOrder {
			maxOrder = n + 1
		}

		byteBases, active := this.precomputeByteHashes(n, maxOrder)

		for bitPos := uint(0); bitPos < 8; bitPos++ {
			bit := (b >> (7 - bitPos)) & 1
			nodePart := node * 2654435761

			for m := 0; m < nBitModels; m++ {
				if !active[m] {
					continue
				}

				idx := (byteBases[m] ^ nodePart) & bitTableMask
				entry := &this.bitTable[idx]
				entry.increment(bit)
			}

			node = node*2 + uint32(bit)
		}

		this.Ppm.Update(b)
		this.Lzp.Update(b)
		this.updateWordHash(b)
		this.hist = append(this.hist, b)
	}

	this.Ppm.FinishPretrain(data)

	for i := range this.bitTable {
		this.bitTable[i][0] /= 2
		this.bitTable[i][1] /= 2
	}
}

func (this *bitCounter) increment(bit byte) {
	if this[bit] < 65535 {
		this[bit]++
	}
}

func (this *Mixer) updateWordHash(b byte) {
	if b == 32 || b == 10 {
		this.wordHash = 0
	} else {
		this.wordHash = (this.wordHash ^ uint32(b)) * 16777619
	}
}

// precomputeByteHashes computes the byte-level base hash for each of the
// nBitModels auxiliary models (order-0..6, skip-1, skip-2, sparse, word,
// match); these are constant across all 8 bit positions of the current
// byte and are combined with the bit-tree node in makeBitHashes.
func (this *Mixer) precomputeByteHashes(n, maxOrder int) ([nBitModels]uint32, [nBitModels]bool) {
	var base [nBitModels]uint32
	var active [nBitModels]bool

	for order := 0; order < maxOrder; order++ {
		var byteH uint32

		if order != 0 {
			byteH = internal.FNV32a(this.hist, n-order, n)
		}

		base[order] = byteH * 16777619
		active[order] = true
	}

	oe := nOrderModels

	if n >= 3 {
		h := uint32(this.hist[n-1])*16777619 ^ uint32(this.hist[n-3])*2654435761
		base[oe] = h*16777619 ^ 0x12345678
		active[oe] = true
	}

	if n >= 4 {
		h := uint32(this.hist[n-1])*16777619 ^ uint32(this.hist[n-4])*2654435761
		base[oe+1] = h*16777619 ^ 0x23456789
		active[oe+1] = true

		h2 := uint32(this.hist[n-2])*16777619 ^ uint32(this.hist[n-4])*2654435761
		base[oe+2] = h2*16777619 ^ 0x3456789A
		active[oe+2] = true
	}

	if this.wordHash != 0 {
		base[oe+3] = this.wordHash*16777619 ^ 0x456789AB
		active[oe+3] = true
	}

	if this.Lzp.Pred >= 0 && this.Lzp.PredLen >= 4 {
		var lenBucket uint32 = 1

		if this.Lzp.PredLen >= 16 {
			lenBucket = 3
		} else if this.Lzp.PredLen >= 8 {
			lenBucket = 2
		}

		h := uint32(this.Lzp.Pred)*16777619 ^ lenBucket*2654435761
		base[oe+4] = h*16777619 ^ 0x56789ABC
		active[oe+4] = true
	}

	return base, active
}

func makeBitHashes(byteBases [nBitModels]uint32, active [nBitModels]bool, node uint32) [nBitModels]uint32 {
	nodePart := node * 2654435761
	var hashes [nBitModels]uint32

	for i := 0; i < nBitModels; i++ {
		if active[i] {
			hashes[i] = byteBases[i] ^ nodePart
		}
	}

	return hashes
}

// ppmBitProb reads the bit probability for the bit-tree node directly out
// of the PPM's cumulative distribution, using the node's implied [lo,hi)
// byte range.
func ppmBitProb(ppmCum *[257]float64, node uint32) float64 {
	depth := uint32(31)

	for (uint32(1) << depth) > node {
		depth--
	}

	lo := (node - (1 << depth)) << (8 - depth)
	hi := lo + (1 << (8 - depth))
	mid := (lo + hi) / 2

	p0 := ppmCum[mid] - ppmCum[lo]
	p1 := ppmCum[hi] - ppmCum[mid]
	total := p0 + p1

	if total > 1e-10 {
		return p1 / total
	}

	return 0.5
}

func (this *Mixer) bitPredictDirect(h uint32) float64 {
	entry := &this.bitTable[h&bitTableMask]
	total := float64(entry[0]) + float64(entry[1])

	if total == 0.0 {
		return 0.5
	}

	return (float64(entry[1]) + 0.5) / (total + 1.0)
}

func (this *Mixer) bitUpdateDirect(h uint32, bit byte) {
	entry := &this.bitTable[h&bitTableMask]
	entry.increment(bit)

	if uint32(entry[0])+uint32(entry[1]) > 16 {
		entry[0] = (entry[0] + 1) >> 1
		entry[1] = (entry[1] + 1) >> 1
	}
}

// forward runs the linear mixer and the residual NN for one bit position,
// returning the mixed probability along with the intermediate stretched
// inputs and hidden activations backward needs for online learning.
func (this *Mixer) forward(bitPos int, inputs [nModels]float64) (float64, [nModels]float64, [hidden]float64) {
	var stretched [nModels]float64

	for i := 0; i < nModels; i++ {
		stretched[i] = internal.Stretch(inputs[i])
	}

	w := &this.linearW[bitPos]
	var linearLogit float64

	for i := 0; i < nModels; i++ {
		linearLogit += w[i] * stretched[i]
	}

	var hiddenVals [hidden]float64

	for j := 0; j < hidden; j++ {
		sum := this.nnB1[bitPos][j]

		for i := 0; i < nModels; i++ {
			sum += this.nnW1[bitPos][j][i] * stretched[i]
		}

		hiddenVals[j] = internal.Squash(sum)
	}

	correction := this.nnB2[bitPos]

	for j := 0; j < hidden; j++ {
		correction += this.nnW2[bitPos][j] * hiddenVals[j]
	}

	mixed := internal.Squash(linearLogit + correction)
	return mixed, stretched, hiddenVals
}

// backward applies one step of online gradient-style learning to the
// linear weights and the residual NN, given the observed target bit.
func (this *Mixer) backward(bitPos int, stretched [nModels]float64, hiddenVals [hidden]float64, mixed, target float64) {
	err := target - mixed

	w := &this.linearW[bitPos]

	for i := 0; i < nModels; i++ {
		w[i] = clamp(w[i]+lr*err*stretched[i], -8.0, 8.0)
	}

	for j := 0; j < hidden; j++ {
		this.nnW2[bitPos][j] = clamp(this.nnW2[bitPos][j]+nnLR*err*hiddenVals[j], -4.0, 4.0)
	}

	this.nnB2[bitPos] = clamp(this.nnB2[bitPos]+nnLR*err, -4.0, 4.0)

	for j := 0; j < hidden; j++ {
		dHidden := err * this.nnW2[bitPos][j] * hiddenVals[j] * (1.0 - hiddenVals[j])

		for i := 0; i < nModels; i++ {
			this.nnW1[bitPos][j][i] = clamp(this.nnW1[bitPos][j][i]+nnLR*dHidden*stretched[i], -4.0, 4.0)
		}

		this.nnB1[bitPos][j] = clamp(this.nnB1[bitPos][j]+nnLR*dHidden, -4.0, 4.0)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// buildCumCached builds the PPM cumulative distribution used by the
// mixer, applying the shallower mixer-internal LZP mixing schedule (w =
// min(0.01*len, 0.25)) rather than the steeper byte-mode one PPM's own
// EncodeByte/DecodeByte use.
func (this *Mixer) buildCumCached(orderHashes []uint32, maxOrder int) [257]float64 {
	matchByte := this.Lzp.Pred
	matchLen := this.Lzp.PredLen
	dist := this.Ppm.DistributionFCached(orderHashes, maxOrder)

	if matchByte >= 0 && matchLen >= 4 {
		lzpW := float64(matchLen) * 0.01

		if lzpW > 0.25 {
			lzpW = 0.25
		}

		rest := 0.02 / 255.0

		for b := 0; b < 256; b++ {
			if int32(b) == matchByte {
				dist[b] = (1.0-lzpW)*dist[b] + lzpW*0.98
			} else {
				dist[b] = (1.0-lzpW)*dist[b] + lzpW*rest
			}
		}
	}

	var cum [257]float64

	for i := 0; i < 256; i++ {
		cum[i+1] = cum[i] + dist[i]
	}

	return cum
}

func (this *Mixer) gatherPreds(node uint32, ppmCum *[257]float64, hashes [nBitModels]uint32, active [nBitModels]bool) [nModels]float64 {
	var preds [nModels]float64
	preds[0] = ppmBitProb(ppmCum, node)

	for m := 0; m < nBitModels; m++ {
		if active[m] {
			preds[1+m] = this.bitPredictDirect(hashes[m])
		} else {
			// An inactive model stretches to logit 0 and contributes
			// nothing to the mix or the weight update.
			preds[1+m] = 0.5
		}
	}

	return preds
}

func (this *Mixer) orderHashes(n, maxOrder int) [7]uint32 {
	var orderHashes [7]uint32

	for order := 0; order < maxOrder; order++ {
		if order != 0 {
			orderHashes[order] = internal.FNV32a(this.hist, n-order, n)
		}
	}

	return orderHashes
}

// EncodeByte codes one byte through enc, bit by bit over its bit-tree
// decomposition, learning online after every bit and updating the PPM,
// LZP and word-hash state once the whole byte has been coded.
func (this *Mixer) EncodeByte(b byte, enc *Encoder) {
	n := len(this.hist)
	maxOrder := this.maxOrder + 1

	if n+1 < maxOrder {
		maxOrder = n + 1
	}

	orderHashes := this.orderHashes(n, maxOrder)
	ppmCum := this.buildCumCached(orderHashes[:], maxOrder)
	byteBases, active := this.precomputeByteHashes(n, maxOrder)

	var node uint32 = 1

	for bitPos := 0; bitPos < 8; bitPos++ {
		bit := (b >> uint(7-bitPos)) & 1
		hashes := makeBitHashes(byteBases, active, node)
		preds := this.gatherPreds(node, &ppmCum, hashes, active)

		mixed, stretched, hiddenVals := this.forward(bitPos, preds)

		binF := mixed * float64(sseBins-1)
		bin := int(binF)

		if bin > sseBins-2 {
			bin = sseBins - 2
		}

		frac := binF - float64(bin)
		sseP := this.sse[bitPos][bin]*(1.0-frac) + this.sse[bitPos][bin+1]*frac
		finalP := 0.7*mixed + 0.3*sseP

		p1 := uint64(finalP*float64(bitScale) + 0.5)

		if p1 < 1 {
			p1 = 1
		} else if p1 > bitScale-1 {
			p1 = bitScale - 1
		}

		enc.EncodeBit(bit, p1, bitScale)

		this.backward(bitPos, stretched, hiddenVals, mixed, float64(bit))

		target := float64(bit)
		this.sse[bitPos][bin] += sseRate * (target - this.sse[bitPos][bin])
		this.sse[bitPos][bin+1] += sseRate * (target - this.sse[bitPos][bin+1])

		for m := 0; m < nBitModels; m++ {
			if active[m] {
				this.bitUpdateDirect(hashes[m], bit)
			}
		}

		node = node*2 + uint32(bit)
	}

	this.Ppm.UpdateCached(b, orderHashes[:], maxOrder)
	this.Lzp.Update(b)
	this.updateWordHash(b)
	this.hist = append(this.hist, b)
}

// DecodeByte is the symmetric counterpart of EncodeByte.
func (this *Mixer) DecodeByte(dec *Decoder) byte {
	n := len(this.hist)
	maxOrder := this.maxOrder + 1

	if n+1 < maxOrder {
		maxOrder = n + 1
	}

	orderHashes := this.orderHashes(n, maxOrder)
	ppmCum := this.buildCumCached(orderHashes[:], maxOrder)
	byteBases, active := this.precomputeByteHashes(n, maxOrder)

	var node uint32 = 1
	var byteVal byte

	for bitPos := 0; bitPos < 8; bitPos++ {
		hashes := makeBitHashes(byteBases, active, node)
		preds := this.gatherPreds(node, &ppmCum, hashes, active)

		mixed, stretched, hiddenVals := this.forward(bitPos, preds)

		binF := mixed * float64(sseBins-1)
		bin := int(binF)

		if bin > sseBins-2 {
			bin = sseBins - 2
		}

		frac := binF - float64(bin)
		sseP := this.sse[bitPos][bin]*(1.0-frac) + this.sse[bitPos][bin+1]*frac
		finalP := 0.7*mixed + 0.3*sseP

		p1 := uint64(finalP*float64(bitScale) + 0.5)

		if p1 < 1 {
			p1 = 1
		} else if p1 > bitScale-1 {
			p1 = bitScale - 1
		}

		bit := dec.DecodeBit(p1, bitScale)

		this.backward(bitPos, stretched, hiddenVals, mixed, float64(bit))

		target := float64(bit)
		this.sse[bitPos][bin] += sseRate * (target - this.sse[bitPos][bin])
		this.sse[bitPos][bin+1] += sseRate * (target - this.sse[bitPos][bin+1])

		for m := 0; m < nBitModels; m++ {
			if active[m] {
				this.bitUpdateDirect(hashes[m], bit)
			}
		}

		byteVal = (byteVal << 1) | bit
		node = node*2 + uint32(bit)
	}

	this.Ppm.UpdateCached(byteVal, orderHashes[:], maxOrder)
	this.Lzp.Update(byteVal)
	this.updateWordHash(byteVal)
	this.hist = append(this.hist, byteVal)
	return byteVal
}
