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

// Package qicm defines the top level error codes and event/listener types
// shared by the compressor and decompressor. The statistical core lives in
// entropy, the container header in container, preprocessing in dict and
// corpus, and the orchestrating CLI in app and cmd/qicm.
package qicm

const (
	ErrMissingParam  = 1
	ErrOutputIsDir   = 2
	ErrOverwriteFile = 3
	ErrCreateFile    = 4
	ErrOpenFile      = 5
	ErrReadFile      = 6
	ErrWriteFile     = 7
	ErrInvalidFile   = 8
	ErrStreamVersion = 9
	ErrInvalidParam  = 10
	ErrUnknown       = 127
)
