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

package bitio

import (
	"math/rand"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	bits := []byte{1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 1, 1, 1, 0, 1}

	w := NewWriter()

	for _, b := range bits {
		w.WriteBit(b)
	}

	data := w.Bytes()
	r := NewReader(data)

	for i, want := range bits {
		if got := r.ReadBit(); got != want {
			t.Errorf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestWriteReadRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 10000
	bits := make([]byte, n)
	w := NewWriter()

	for i := range bits {
		bits[i] = byte(rng.Intn(2))
		w.WriteBit(bits[i])
	}

	r := NewReader(w.Bytes())

	for i, want := range bits {
		if got := r.ReadBit(); got != want {
			t.Fatalf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestByteAlignment(t *testing.T) {
	w := NewWriter()

	for i := 0; i < 8; i++ {
		w.WriteBit(1)
	}

	data := w.Bytes()

	if len(data) != 1 || data[0] != 0xFF {
		t.Errorf("expected a single 0xFF byte, got %v", data)
	}
}

func TestPartialOctetZeroPadded(t *testing.T) {
	w := NewWriter()
	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteBit(1)

	data := w.Bytes()

	if len(data) != 1 {
		t.Fatalf("expected a single flushed byte, got %d", len(data))
	}

	if data[0] != 0xA0 {
		t.Errorf("expected 0xA0 (101 followed by zero padding), got %#x", data[0])
	}
}

func TestReadPastEndYieldsZero(t *testing.T) {
	r := NewReader([]byte{0xFF})

	for i := 0; i < 8; i++ {
		r.ReadBit()
	}

	for i := 0; i < 16; i++ {
		if got := r.ReadBit(); got != 0 {
			t.Errorf("read past end: got %d, want 0", got)
		}
	}
}

func TestEmptyWriterYieldsEmptyBytes(t *testing.T) {
	w := NewWriter()

	if data := w.Bytes(); len(data) != 0 {
		t.Errorf("expected empty buffer, got %v", data)
	}
}
