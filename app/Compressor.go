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

// Package app is the orchestrator: it wires dict preprocessing, corpus
// pretraining and the entropy package's coder/predictor stack into the
// compress and decompress pipelines the CLI drives, mirroring the way the
// teacher's app.BlockCompressor/BlockDecompressor sit above its transform
// and entropy packages.
package app

import (
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"

	qicm "github.com/qicm-project/qicm-go"
	"github.com/qicm-project/qicm-go/bitio"
	"github.com/qicm-project/qicm-go/container"
	"github.com/qicm-project/qicm-go/corpus"
	"github.com/qicm-project/qicm-go/dict"
	"github.com/qicm-project/qicm-go/entropy"
)

const (
	// parallelMinInput is the minimum preprocessed size, in bytes, below
	// which a stream is always emitted as a single block regardless of
	// the requested thread count.
	parallelMinInput = 131072
	// parallelBlockChunk bounds how many blocks a given input can be
	// split into: at most one block per this many bytes.
	parallelBlockChunk = 65536
)

// Compressor drives preprocessing, pretraining and the (optionally
// block-parallel) arithmetic coding pipeline that produces a QICM
// container.
type Compressor struct {
	threads   int
	listeners []qicm.Listener
}

// NewCompressor creates a Compressor from an argument map (mirrors the
// teacher's NewBlockCompressor(argsMap map[string]interface{})
// constructor). The "threads" entry selects the thread hint; 0 or absent
// means auto (runtime.NumCPU()).
func NewCompressor(argsMap map[string]interface{}) (*Compressor, error) {
	this := &Compressor{}

	if th, prst := argsMap["threads"]; prst {
		t, ok := th.(int)

		if !ok {
			return nil, errors.New("threads option must be an int")
		}

		this.threads = t
		delete(argsMap, "threads")
	}

	if this.threads <= 0 {
		this.threads = runtime.NumCPU()
	}

	return this, nil
}

// AddListener adds an event listener to this compressor. Returns true if
// the listener has been added.
func (this *Compressor) AddListener(bl qicm.Listener) bool {
	if bl == nil {
		return false
	}

	this.listeners = append(this.listeners, bl)
	return true
}

func (this *Compressor) notify(evt *qicm.Event) {
	defer func() {
		//nolint
		recover()
	}()

	for _, bl := range this.listeners {
		bl.ProcessEvent(evt)
	}
}

// Compress preprocesses text through the dictionary tokenizer, pretrains a
// fresh mixer on the embedded corpus, then encodes the preprocessed bytes
// into a QICM container. Inputs at or above parallelMinInput, with a
// thread hint greater than one, are split into contiguous blocks encoded
// concurrently (format version 9); everything else is a single block
// (format version 8).
func (this *Compressor) Compress(text string) ([]byte, error) {
	data := dict.Preprocess(text)

	this.notify(qicm.NewEvent(qicm.EvtCompressionStart, -1, int64(len(data)), time.Time{}))

	mixer := pretrainedMixer()
	k := this.blockCount(len(data))

	var out []byte

	if k <= 1 {
		body := encodeBlock(mixer, data)
		out = container.WriteHeader(container.FmtV8, uint32(len(data)))
		out = append(out, body...)
	} else {
		var err error
		out, err = this.compressParallel(mixer, data, k)

		if err != nil {
			return nil, err
		}
	}

	this.notify(qicm.NewEvent(qicm.EvtCompressionEnd, -1, int64(len(out)), time.Now()))
	return out, nil
}

func (this *Compressor) compressParallel(mixer *entropy.Mixer, data []byte, k int) ([]byte, error) {
	blocks := splitBlocks(data, k)
	encoded := make([][]byte, k)

	var wg sync.WaitGroup
	sem := make(chan struct{}, this.threads)

	for i := 0; i < k; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			before := time.Now()
			worker := mixer.Clone()
			encoded[i] = encodeBlock(worker, blocks[i])
			this.notify(qicm.NewEvent(qicm.EvtBlockInfo, i, int64(len(encoded[i])), before))
		}(i)
	}

	wg.Wait()

	sizes := make([]container.BlockSizes, k)

	for i, b := range blocks {
		sizes[i] = container.BlockSizes{
			PreprocLen:    uint32(len(b)),
			CompressedLen: uint32(len(encoded[i])),
		}
	}

	out := container.WriteHeaderV9(uint32(len(data)), sizes)

	for _, e := range encoded {
		out = append(out, e...)
	}

	return out, nil
}

// blockCount chooses the number of parallel blocks for an input of n
// preprocessed bytes, per the orchestrator's split rule.
func (this *Compressor) blockCount(n int) int {
	if n < parallelMinInput || this.threads <= 1 {
		return 1
	}

	k := this.threads
	maxByChunk := n / parallelBlockChunk

	if maxByChunk < k {
		k = maxByChunk
	}

	if k < 1 {
		k = 1
	}

	return k
}

// splitBlocks divides data into k contiguous blocks of equal size, with
// the last block absorbing the remainder.
func splitBlocks(data []byte, k int) [][]byte {
	blocks := make([][]byte, k)
	base := len(data) / k
	off := 0

	for i := 0; i < k; i++ {
		sz := base

		if i == k-1 {
			sz = len(data) - off
		}

		blocks[i] = data[off : off+sz]
		off += sz
	}

	return blocks
}

// pretrainedMixer creates a fresh mixer and runs it through the embedded
// pretraining corpus, so a compressor and a decompressor constructed
// independently start from bit-identical state.
func pretrainedMixer() *entropy.Mixer {
	mixer := entropy.NewDefaultMixer()
	mixer.Pretrain(dict.Preprocess(corpus.Pretrain))
	return mixer
}

// pretrainedPpmLzp builds the legacy (version 7) PPM+LZP pair, pretrained
// the same way as pretrainedMixer's sub-models.
func pretrainedPpmLzp() (*entropy.Ppm, *entropy.Lzp) {
	ppm := entropy.NewDefaultPpm()
	lzp := entropy.NewLzp()
	pre := dict.Preprocess(corpus.Pretrain)
	ppm.Pretrain(pre)
	lzp.Pretrain(pre)
	return ppm, lzp
}

func encodeBlock(mixer *entropy.Mixer, data []byte) []byte {
	w := bitio.NewWriter()
	enc := entropy.NewEncoder(w)

	for _, b := range data {
		mixer.EncodeByte(b, enc)
	}

	enc.Finish()
	return w.Bytes()
}
