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

import "github.com/qicm-project/qicm-go/internal"

// Lzp is a longest-match predictor over a byte history: the context hash
// of the last few bytes maps to the position that context was last seen
// at, and the byte that followed that position becomes the prediction for
// the next byte. Collisions are tolerated because every hit is verified
// byte-by-byte before being trusted, so the table never needs eviction.
type Lzp struct {
	hist    []byte
	table   map[uint32]int
	Pred    int32
	PredLen int32
}

// NewLzp creates an empty LZP predictor.
func NewLzp() *Lzp {
	this := &Lzp{table: make(map[uint32]int), Pred: -1, PredLen: 0}
	return this
}

// Clone deep-copies this predictor.
func (this *Lzp) Clone() *Lzp {
	that := &Lzp{
		hist:    append([]byte(nil), this.hist...),
		table:   make(map[uint32]int, len(this.table)),
		Pred:    this.Pred,
		PredLen: this.PredLen,
	}

	for k, v := range this.table {
		that.table[k] = v
	}

	return that
}

// Update inserts the context(s) ending just before byte into the table,
// appends byte to the history, then looks up the longest verified match
// for the byte that comes next.
func (this *Lzp) Update(b byte) {
	n := len(this.hist)
	maxCtx := n + 1

	if maxCtx > 25 {
		maxCtx = 25
	}

	for ctxLen := 3; ctxLen < maxCtx; ctxLen++ {
		h := internal.FNV32a(this.hist, n-ctxLen, n)
		this.table[h] = n
	}

	this.hist = append(this.hist, b)

	this.Pred = -1
	this.PredLen = 0
	n = len(this.hist)
	startCtx := n

	if startCtx > 24 {
		startCtx = 24
	}

	for ctxLen := startCtx; ctxLen >= 3; ctxLen-- {
		h := internal.FNV32a(this.hist, n-ctxLen, n)
		pos, ok := this.table[h]

		if !ok {
			continue
		}

		if pos >= n || pos < ctxLen {
			continue
		}

		ok = true

		for j := 0; j < ctxLen; j++ {
			if this.hist[pos-ctxLen+j] != this.hist[n-ctxLen+j] {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		this.Pred = int32(this.hist[pos])
		this.PredLen = int32(ctxLen)
		return
	}
}

// Pretrain replays data through Update.
func (this *Lzp) Pretrain(data []byte) {
	for _, b := range data {
		this.Update(b)
	}
}
