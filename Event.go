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

package qicm

import (
	"fmt"
	"time"
)

const (
	EvtCompressionStart   = 0 // Compression starts
	EvtDecompressionStart = 1 // Decompression starts
	EvtBlockInfo          = 2 // One block finished encoding/decoding
	EvtCompressionEnd     = 3 // Compression ends
	EvtDecompressionEnd   = 4 // Decompression ends
)

// Event is a compression/decompression progress notification. Unlike the
// generic codec this package descends from, there is no separate transform
// stage and no stream checksum, so an Event carries only the fields the
// arithmetic-coding pipeline can actually produce: which block, how large,
// and when.
type Event struct {
	eventType int
	id        int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEventFromString creates an Event that wraps a preformatted message.
func NewEventFromString(evtType, id int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, id: id, msg: msg, eventTime: evtTime}
}

// NewEvent creates an Event carrying a block id and size.
func NewEvent(evtType, id int, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, id: id, size: size, eventTime: evtTime}
}

// Type returns the event type.
func (this *Event) Type() int {
	return this.eventType
}

// ID returns the block id, or -1 if not applicable.
func (this *Event) ID() int {
	return this.id
}

// Time returns the event's timestamp: the time passed to the constructor,
// or the creation time when that was zero. Block events carry the time
// their block started.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// Size returns the block/stream size in bytes.
func (this *Event) Size() int64 {
	return this.size
}

// String returns a string representation of this event. If the event wraps
// a message, the message is returned; otherwise one is built from the
// fields.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	id := ""

	if this.id >= 0 {
		id = fmt.Sprintf(", \"id\": %d", this.id)
	}

	t := ""

	switch this.eventType {
	case EvtCompressionStart:
		t = "COMPRESSION_START"

	case EvtDecompressionStart:
		t = "DECOMPRESSION_START"

	case EvtBlockInfo:
		t = "BLOCK_INFO"

	case EvtCompressionEnd:
		t = "COMPRESSION_END"

	case EvtDecompressionEnd:
		t = "DECOMPRESSION_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\"%s, \"size\":%d, \"time\":%d }", t, id, this.size,
		this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by event processors such as the CLI's progress
// printer.
type Listener interface {
	// ProcessEvent is called whenever a Listener receives an event.
	ProcessEvent(evt *Event)
}
