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

package app

import (
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"

	qicm "github.com/qicm-project/qicm-go"
	"github.com/qicm-project/qicm-go/bitio"
	"github.com/qicm-project/qicm-go/container"
	"github.com/qicm-project/qicm-go/dict"
	"github.com/qicm-project/qicm-go/entropy"
)

// Decompressor is the symmetric counterpart of Compressor: it parses a
// QICM container header, then replays the same pretraining and coding
// steps the encoder used to recover the original text.
type Decompressor struct {
	threads   int
	listeners []qicm.Listener
}

// NewDecompressor creates a Decompressor from an argument map. The
// "threads" entry bounds how many goroutines decode a version-9
// container's blocks concurrently; it has no effect on the decoded
// result, only on wall-clock time (spec.md's parallel-equivalence
// property).
func NewDecompressor(argsMap map[string]interface{}) (*Decompressor, error) {
	this := &Decompressor{}

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

// AddListener adds an event listener to this decompressor. Returns true
// if the listener has been added.
func (this *Decompressor) AddListener(bl qicm.Listener) bool {
	if bl == nil {
		return false
	}

	this.listeners = append(this.listeners, bl)
	return true
}

func (this *Decompressor) notify(evt *qicm.Event) {
	defer func() {
		//nolint
		recover()
	}()

	for _, bl := range this.listeners {
		bl.ProcessEvent(evt)
	}
}

// Decompress parses a QICM container and returns the original
// (post-dictionary-expansion) text.
func (this *Decompressor) Decompress(data []byte) (string, error) {
	version, totalLen, err := container.ReadHeader(data)

	if err != nil {
		return "", errors.Wrap(err, "malformed QICM container")
	}

	this.notify(qicm.NewEvent(qicm.EvtDecompressionStart, -1, int64(totalLen), time.Time{}))

	var preproc []byte

	switch version {
	case container.FmtV7:
		preproc, err = this.decodeV7(data[container.HeaderSize:], int(totalLen))

	case container.FmtV8:
		preproc, err = this.decodeV8(data[container.HeaderSize:], int(totalLen))

	case container.FmtV9:
		preproc, err = this.decodeV9(data)

	default:
		err = errors.Errorf("unsupported QICM version %d", version)
	}

	if err != nil {
		return "", err
	}

	if version != container.FmtV9 && len(preproc) != int(totalLen) {
		return "", errors.New("decoded length does not match the QICM header")
	}

	this.notify(qicm.NewEvent(qicm.EvtDecompressionEnd, -1, int64(len(preproc)), time.Now()))
	return dict.Unpreprocess(preproc), nil
}

func (this *Decompressor) decodeV7(body []byte, n int) ([]byte, error) {
	ppm, lzp := pretrainedPpmLzp()
	r := bitio.NewReader(body)
	dec := entropy.NewDecoder(r)
	out := make([]byte, 0, n)

	for i := 0; i < n; i++ {
		b := ppm.DecodeByte(dec, lzp.Pred, lzp.PredLen)
		lzp.Update(b)
		out = append(out, b)
	}

	return out, nil
}

func (this *Decompressor) decodeV8(body []byte, n int) ([]byte, error) {
	mixer := pretrainedMixer()
	r := bitio.NewReader(body)
	dec := entropy.NewDecoder(r)
	out := make([]byte, 0, n)

	for i := 0; i < n; i++ {
		out = append(out, mixer.DecodeByte(dec))
	}

	return out, nil
}

// decodeV9 decodes a parallel-block container. Each block is independent
// (the same pretrained state seeds every worker, mirroring the encoder),
// so blocks decode concurrently and are joined back in header order; the
// thread count used here has no bearing on the result, only on speed.
func (this *Decompressor) decodeV9(data []byte) ([]byte, error) {
	totalLen, blocks, err := container.ReadHeaderV9(data)

	if err != nil {
		return nil, err
	}

	off := container.HeaderSizeV9(len(blocks))
	bodies := make([][]byte, len(blocks))

	for i, bs := range blocks {
		end := off + int(bs.CompressedLen)

		if end > len(data) || end < off {
			return nil, errors.New("QICM block index extends past buffer")
		}

		bodies[i] = data[off:end]
		off = end
	}

	base := pretrainedMixer()
	decoded := make([][]byte, len(blocks))

	var wg sync.WaitGroup
	sem := make(chan struct{}, this.threads)

	for i, bs := range blocks {
		wg.Add(1)

		go func(i int, body []byte, n int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			before := time.Now()
			worker := base.Clone()
			r := bitio.NewReader(body)
			dec := entropy.NewDecoder(r)
			blk := make([]byte, 0, n)

			for j := 0; j < n; j++ {
				blk = append(blk, worker.DecodeByte(dec))
			}

			decoded[i] = blk
			this.notify(qicm.NewEvent(qicm.EvtBlockInfo, i, int64(len(blk)), before))
		}(i, bodies[i], int(bs.PreprocLen))
	}

	wg.Wait()

	out := make([]byte, 0, totalLen)

	for _, d := range decoded {
		out = append(out, d...)
	}

	if uint32(len(out)) != totalLen {
		return nil, errors.New("decoded length does not match the QICM header")
	}

	return out, nil
}
