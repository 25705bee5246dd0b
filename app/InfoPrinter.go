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
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	qicm "github.com/qicm-project/qicm-go"
)

// An implementation of qicm.Listener that prints progress for the
// Compressor/Decompressor verbose option.

// ENCODING and DECODING select which phrasing InfoPrinter uses for its
// start/end messages.
const (
	ENCODING = 0
	DECODING = 1
)

type blockInfo struct {
	start time.Time
	size  int64
}

// InfoPrinter renders qicm.Event notifications as human-readable progress
// lines, one per block plus a start/end banner for the whole stream.
type InfoPrinter struct {
	writer   io.Writer
	infoType uint
	infos    map[int]blockInfo
	lock     sync.RWMutex
	level    uint
}

// NewInfoPrinter creates an InfoPrinter at the given verbosity level (0
// silent, higher is chattier) for either ENCODING or DECODING.
func NewInfoPrinter(infoLevel, infoType uint, writer io.Writer) (*InfoPrinter, error) {
	if writer == nil {
		return nil, errors.New("invalid null writer parameter")
	}

	this := &InfoPrinter{
		writer:   writer,
		infoType: infoType & 1,
		level:    infoLevel,
		infos:    make(map[int]blockInfo),
	}

	return this, nil
}

// ProcessEvent receives an event and writes a log record to the internal
// writer, gated by the configured verbosity level.
func (this *InfoPrinter) ProcessEvent(evt *qicm.Event) {
	switch evt.Type() {
	case qicm.EvtCompressionStart, qicm.EvtDecompressionStart:
		if this.level >= 1 {
			fmt.Fprintln(this.writer, evt)
		}

	case qicm.EvtBlockInfo:
		id := evt.ID()

		this.lock.Lock()
		bi, exists := this.infos[id]

		if !exists {
			bi = blockInfo{start: evt.Time()}
		}

		this.infos[id] = bi
		this.lock.Unlock()

		if this.level >= 3 {
			durationMS := time.Since(bi.start).Nanoseconds() / int64(time.Millisecond)

			if this.infoType == ENCODING {
				fmt.Fprintf(this.writer, "Block %d: %d bytes [%d ms]\n", id, evt.Size(), durationMS)
			} else {
				fmt.Fprintf(this.writer, "Block %d: decoded [%d ms]\n", id, durationMS)
			}
		}

	case qicm.EvtCompressionEnd, qicm.EvtDecompressionEnd:
		if this.level >= 1 {
			fmt.Fprintln(this.writer, evt)
		}

		this.lock.Lock()
		this.infos = make(map[int]blockInfo)
		this.lock.Unlock()
	}
}
