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

package container

import (
	"bytes"
	"testing"
)

func TestWriteHeaderEmptyV8MatchesLiteralBytes(t *testing.T) {
	hdr := WriteHeader(FmtV8, 0)
	want := []byte{0x51, 0x49, 0x43, 0x4D, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00}

	if !bytes.Equal(hdr, want) {
		t.Fatalf("got % X, want % X", hdr, want)
	}
}

func TestHeaderRoundTripV7V8(t *testing.T) {
	for _, v := range []uint16{FmtV7, FmtV8} {
		hdr := WriteHeader(v, 12345)
		ver, n, err := ReadHeader(hdr)

		if err != nil {
			t.Fatalf("version %d: unexpected error: %v", v, err)
		}

		if ver != v {
			t.Errorf("version %d: got version %d", v, ver)
		}

		if n != 12345 {
			t.Errorf("version %d: got length %d, want 12345", v, n)
		}
	}
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	hdr := WriteHeader(FmtV8, 100)
	hdr[0] = 'X'

	if _, _, err := ReadHeader(hdr); err == nil {
		t.Errorf("expected an error for a corrupted magic")
	}
}

func TestReadHeaderRejectsUnknownVersion(t *testing.T) {
	hdr := WriteHeader(FmtV8, 100)
	hdr[4] = 42
	hdr[5] = 0

	if _, _, err := ReadHeader(hdr); err == nil {
		t.Errorf("expected an error for an unsupported version")
	}
}

func TestReadHeaderRejectsShortData(t *testing.T) {
	if _, _, err := ReadHeader([]byte{0x51, 0x49}); err == nil {
		t.Errorf("expected an error for data shorter than the header")
	}
}

func TestHeaderV9RoundTrip(t *testing.T) {
	blocks := []BlockSizes{
		{PreprocLen: 65536, CompressedLen: 20000},
		{PreprocLen: 65536, CompressedLen: 19500},
		{PreprocLen: 32768, CompressedLen: 9000},
	}

	hdr := WriteHeaderV9(163840, blocks)

	if len(hdr) != HeaderSizeV9(len(blocks)) {
		t.Fatalf("got header length %d, want %d", len(hdr), HeaderSizeV9(len(blocks)))
	}

	total, got, err := ReadHeaderV9(hdr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 163840 {
		t.Errorf("got total length %d, want 163840", total)
	}

	if len(got) != len(blocks) {
		t.Fatalf("got %d blocks, want %d", len(got), len(blocks))
	}

	for i, b := range blocks {
		if got[i] != b {
			t.Errorf("block %d: got %+v, want %+v", i, got[i], b)
		}
	}
}

func TestHeaderV9RejectsTruncatedBlockTable(t *testing.T) {
	blocks := []BlockSizes{{PreprocLen: 100, CompressedLen: 50}}
	hdr := WriteHeaderV9(100, blocks)

	if _, _, err := ReadHeaderV9(hdr[:len(hdr)-1]); err == nil {
		t.Errorf("expected an error for a truncated block table")
	}
}

func TestHeaderV9EmptyBlockList(t *testing.T) {
	hdr := WriteHeaderV9(0, nil)
	total, blocks, err := ReadHeaderV9(hdr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 0 || len(blocks) != 0 {
		t.Errorf("got total=%d blocks=%d, want 0 and empty", total, len(blocks))
	}
}
