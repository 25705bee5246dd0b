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

package corpus

import "github.com/qicm-project/qicm-go/dict"

var charFreq [256]uint32

func init() {
	for i := range charFreq {
		charFreq[i] = 1
	}

	// Common ASCII characters in English text (relative frequencies).
	freqs := map[byte]uint32{
		32: 700, 101: 390, 116: 280, 97: 250, 111: 230,
		105: 215, 110: 210, 115: 195, 104: 185, 114: 183,
		100: 130, 108: 120, 99: 85, 117: 85, 109: 75,
		119: 72, 102: 70, 103: 61, 121: 59, 112: 55,
		98: 45, 118: 30, 107: 22, 106: 5, 120: 5,
		113: 3, 122: 2, 10: 50, 44: 40, 46: 40,
		84: 30, 65: 25, 73: 20, 83: 20, 87: 15,
		66: 12, 67: 12, 68: 12, 69: 12, 70: 12,
		71: 10, 72: 10, 76: 10, 77: 10, 78: 10,
		79: 10, 80: 10, 82: 10, 74: 5, 75: 5,
		81: 3, 85: 8, 86: 5, 88: 2, 89: 5,
		90: 2, 39: 8, 45: 8, 34: 5, 40: 3,
		41: 3, 48: 3, 49: 5, 50: 3, 51: 3,
		52: 3, 53: 3, 54: 3, 55: 3, 56: 3,
		57: 3, 58: 5, 59: 3,
	}

	for b, f := range freqs {
		charFreq[b] = f
	}

	charFreq[dict.CapMarker] = 30

	// Word tokens (most common first): max(3, 60-i) for i in 0..127.
	for i := 0; i < 127; i++ {
		v := uint32(3)

		if 60 > i {
			if uint32(60-i) > v {
				v = uint32(60 - i)
			}
		}

		charFreq[129+i] = v
	}
}

// CharFreq returns the fixed baseline English-prose unigram table used as
// the PPM base distribution whenever a model's own pretraining has not
// yet produced one.
func CharFreq() [256]uint32 {
	return charFreq
}
