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
	"strings"
	"testing"

	"github.com/qicm-project/qicm-go/bitio"
	"github.com/qicm-project/qicm-go/container"
	"github.com/qicm-project/qicm-go/corpus"
	"github.com/qicm-project/qicm-go/dict"
	"github.com/qicm-project/qicm-go/entropy"
)

func newSingleThreaded(t *testing.T) (*Compressor, *Decompressor) {
	t.Helper()

	c, err := NewCompressor(map[string]interface{}{"threads": 1})

	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}

	d, err := NewDecompressor(map[string]interface{}{"threads": 1})

	if err != nil {
		t.Fatalf("NewDecompressor: %v", err)
	}

	return c, d
}

func roundTrip(t *testing.T, text string) []byte {
	t.Helper()
	c, d := newSingleThreaded(t)

	out, err := c.Compress(text)

	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	back, err := d.Decompress(out)

	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	if back != text {
		t.Fatalf("round trip mismatch:\n got:  %q\n want: %q", back, text)
	}

	return out
}

func TestCompressEmptyInput(t *testing.T) {
	out := roundTrip(t, "")

	ver, n, err := container.ReadHeader(out)

	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}

	if ver != container.FmtV8 {
		t.Errorf("expected a V8 container for empty input, got version %d", ver)
	}

	if n != 0 {
		t.Errorf("expected a preprocessed length of 0, got %d", n)
	}
}

func TestCompressSingleCharacter(t *testing.T) {
	roundTrip(t, "a")
}

func TestCompressRepeatedWord(t *testing.T) {
	roundTrip(t, "the the the the")
}

func TestCompressPretrainingCorpusItself(t *testing.T) {
	c, _ := newSingleThreaded(t)
	out, err := c.Compress(corpus.Pretrain)

	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	ratio := float64(len(out)) / float64(len(corpus.Pretrain))

	if ratio > 0.5 {
		t.Errorf("expected the pretraining corpus to compress well against its own model, got ratio %v (size %d -> %d)", ratio, len(corpus.Pretrain), len(out))
	}
}

func TestCompressIsDeterministic(t *testing.T) {
	c, _ := newSingleThreaded(t)
	text := "the quick brown fox jumps over the lazy dog, again and again."

	out1, err := c.Compress(text)

	if err != nil {
		t.Fatalf("Compress (1): %v", err)
	}

	out2, err := c.Compress(text)

	if err != nil {
		t.Fatalf("Compress (2): %v", err)
	}

	if string(out1) != string(out2) {
		t.Errorf("expected two compressions of the same input to be bit-identical")
	}
}

func TestCompressLargeInputUsesParallelContainer(t *testing.T) {
	c, err := NewCompressor(map[string]interface{}{"threads": 4})

	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}

	d, err := NewDecompressor(map[string]interface{}{"threads": 4})

	if err != nil {
		t.Fatalf("NewDecompressor: %v", err)
	}

	sentence := "the quick brown fox jumps over the lazy dog near the riverbank. "
	text := strings.Repeat(sentence, 4000) // well above parallelMinInput once preprocessed

	out, err := c.Compress(text)

	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	ver, _, err := container.ReadHeader(out)

	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}

	if ver != container.FmtV9 {
		t.Fatalf("expected a V9 (parallel) container for a large input, got version %d", ver)
	}

	back, err := d.Decompress(out)

	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	if back != text {
		t.Fatalf("round trip mismatch for large parallel input (lengths: got %d, want %d)", len(back), len(text))
	}
}

func TestDecompressRejectsGarbage(t *testing.T) {
	_, d := newSingleThreaded(t)

	if _, err := d.Decompress([]byte{0, 1, 2, 3}); err == nil {
		t.Errorf("expected an error decompressing non-QICM data")
	}
}

// TestDecompressLegacyV7Container exercises the legacy byte-mode format:
// nothing in this package ever produces it anymore, but old containers
// must stay decodable.
func TestDecompressLegacyV7Container(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	pre := dict.Preprocess(text)

	ppm, lzp := pretrainedPpmLzp()
	w := bitio.NewWriter()
	enc := entropy.NewEncoder(w)

	for _, b := range pre {
		ppm.EncodeByte(b, enc, lzp.Pred, lzp.PredLen)
		lzp.Update(b)
	}

	enc.Finish()

	out := container.WriteHeader(container.FmtV7, uint32(len(pre)))
	out = append(out, w.Bytes()...)

	_, d := newSingleThreaded(t)
	back, err := d.Decompress(out)

	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	if back != text {
		t.Fatalf("legacy V7 round trip mismatch:\n got:  %q\n want: %q", back, text)
	}
}

func TestDecompressRejectsTruncatedV9Container(t *testing.T) {
	sentence := "the quick brown fox jumps over the lazy dog near the riverbank. "
	text := strings.Repeat(sentence, 4000)

	cPar, err := NewCompressor(map[string]interface{}{"threads": 4})

	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}

	out, err := cPar.Compress(text)

	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	d, err := NewDecompressor(map[string]interface{}{"threads": 4})

	if err != nil {
		t.Fatalf("NewDecompressor: %v", err)
	}

	if _, err := d.Decompress(out[:len(out)-1]); err == nil {
		t.Errorf("expected an error decompressing a truncated V9 container")
	}
}
