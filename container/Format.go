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

// Package container implements the self-describing QICM stream header: a
// 4-byte magic, a format version selecting which decoder the payload
// needs, and either a single preprocessed-length field (V7, V8) or a
// per-block size index (V9, parallel layout).
package container

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Magic is the 4-byte signature every QICM stream starts with.
var Magic = [4]byte{'Q', 'I', 'C', 'M'}

const (
	// FmtV7 is the legacy byte-mode PPM+LZP format, no mixer.
	FmtV7 = 7
	// FmtV8 is the single-block mixer-driven format.
	FmtV8 = 8
	// FmtV9 is the parallel multi-block mixer-driven format.
	FmtV9 = 9

	// HeaderSize is the fixed header length for V7/V8 streams: magic(4) +
	// version(2) + preprocessed length(4).
	HeaderSize = 10

	// v9FixedHeaderSize is magic(4) + version(2) + total preprocessed
	// length(4) + block count(2), before the per-block size table.
	v9FixedHeaderSize = 12
	// v9BlockEntrySize is preprocessed length(4) + compressed length(4).
	v9BlockEntrySize = 8
)

// BlockSizes pairs one block's preprocessed length with its compressed
// length, in stream order.
type BlockSizes struct {
	PreprocLen    uint32
	CompressedLen uint32
}

// WriteHeader builds a V7 or V8 header for a stream of preprocessedLen
// bytes.
func WriteHeader(version uint16, preprocessedLen uint32) []byte {
	hdr := make([]byte, HeaderSize)
	copy(hdr[0:4], Magic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], version)
	binary.LittleEndian.PutUint32(hdr[6:10], preprocessedLen)
	return hdr
}

// ReadHeader parses a V7/V8/V9 header and returns its version and the
// total preprocessed length (for V9 this is the sum across all blocks).
func ReadHeader(data []byte) (uint16, uint32, error) {
	if len(data) < HeaderSize {
		return 0, 0, errors.New("data too short for QICM header")
	}

	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return 0, 0, errors.New("not a QICM stream")
	}

	ver := binary.LittleEndian.Uint16(data[4:6])

	if ver != FmtV7 && ver != FmtV8 && ver != FmtV9 {
		return 0, 0, errors.Errorf("unsupported QICM version %d", ver)
	}

	origLen := binary.LittleEndian.Uint32(data[6:10])
	return ver, origLen, nil
}

// WriteHeaderV9 builds a parallel-block header: magic, FmtV9, the total
// preprocessed length across all blocks, the block count, then each
// block's (preprocessed length, compressed length) pair in order.
func WriteHeaderV9(totalPreprocLen uint32, blocks []BlockSizes) []byte {
	hdr := make([]byte, HeaderSizeV9(len(blocks)))
	copy(hdr[0:4], Magic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], FmtV9)
	binary.LittleEndian.PutUint32(hdr[6:10], totalPreprocLen)
	binary.LittleEndian.PutUint16(hdr[10:12], uint16(len(blocks)))

	off := v9FixedHeaderSize

	for _, b := range blocks {
		binary.LittleEndian.PutUint32(hdr[off:off+4], b.PreprocLen)
		binary.LittleEndian.PutUint32(hdr[off+4:off+8], b.CompressedLen)
		off += v9BlockEntrySize
	}

	return hdr
}

// ReadHeaderV9 parses a parallel-block header, returning the total
// preprocessed length and the per-block size table.
func ReadHeaderV9(data []byte) (uint32, []BlockSizes, error) {
	if len(data) < v9FixedHeaderSize {
		return 0, nil, errors.New("data too short for QICM V9 header")
	}

	numBlocks := int(binary.LittleEndian.Uint16(data[10:12]))
	needed := HeaderSizeV9(numBlocks)

	if len(data) < needed {
		return 0, nil, errors.New("data too short for QICM V9 block table")
	}

	totalLen := binary.LittleEndian.Uint32(data[6:10])
	blocks := make([]BlockSizes, numBlocks)
	off := v9FixedHeaderSize

	for i := 0; i < numBlocks; i++ {
		blocks[i] = BlockSizes{
			PreprocLen:    binary.LittleEndian.Uint32(data[off : off+4]),
			CompressedLen: binary.LittleEndian.Uint32(data[off+4 : off+8]),
		}
		off += v9BlockEntrySize
	}

	return totalLen, blocks, nil
}

// HeaderSizeV9 returns the total V9 header size for the given block count.
func HeaderSizeV9(numBlocks int) int {
	return v9FixedHeaderSize + v9BlockEntrySize*numBlocks
}
