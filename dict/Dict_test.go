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

package dict

import "testing"

func TestPreprocessRepeatedWordTokenizes(t *testing.T) {
	in := "the the the the"
	out := Preprocess(in)
	want := []byte{129, ' ', 129, ' ', 129, ' ', 129}

	if len(out) != len(want) {
		t.Fatalf("got %v (len %d), want %v (len %d)", out, len(out), want, len(want))
	}

	for i := range want {
		if out[i] != want[i] {
			t.Errorf("byte %d: got %d, want %d", i, out[i], want[i])
		}
	}
}

func TestPreprocessUnpreprocessRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"the the the the",
		"The quick brown fox and they were there",
		"a sentence with no dictionary words whatsoever",
		"Mixed CASE and they said it would be fine.",
		"trailing punctuation, and a comma!",
	}

	for _, text := range cases {
		pre := Preprocess(text)
		got := Unpreprocess(pre)

		if got != text {
			t.Errorf("round trip mismatch:\n got:  %q\n want: %q", got, text)
		}
	}
}

func TestPreprocessCapitalizedWordUsesMarker(t *testing.T) {
	out := Preprocess("The")

	if len(out) != 2 || out[0] != CapMarker || out[1] != byte(129) {
		t.Fatalf("got %v, want [%d %d]", out, CapMarker, 129)
	}
}

func TestPreprocessAllCapsDoesNotUseMarker(t *testing.T) {
	// "THE" differs from "the" in more than just the first rune, so it
	// must not collapse to a CapMarker-prefixed token; it falls back to
	// raw bytes instead.
	out := Preprocess("THE")

	for _, b := range out {
		if b == CapMarker {
			t.Fatalf("did not expect CapMarker for an all-caps mismatch: %v", out)
		}
	}

	if string(out) != "THE" {
		t.Errorf("got %q, want raw passthrough %q", out, "THE")
	}
}

func TestPreprocessUnknownWordPassesThrough(t *testing.T) {
	out := Preprocess("zzxyq")

	if string(out) != "zzxyq" {
		t.Errorf("got %q, want raw passthrough", out)
	}
}

func TestPreprocessDigitsAndPunctuationPassThrough(t *testing.T) {
	text := "it was the year 1999, and they said 42 would do."
	pre := Preprocess(text)
	back := Unpreprocess(pre)

	if back != text {
		t.Errorf("round trip mismatch:\n got:  %q\n want: %q", back, text)
	}
}

func TestUnpreprocessEmptyInput(t *testing.T) {
	if got := Unpreprocess(nil); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}
