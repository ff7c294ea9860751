/*
	Copyright 2025 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package parse

import (
	"context"
	"io"
)

// Stream adapts a segmented Reader back into a plain sequential io.Reader,
// so the line lexer can be written against the familiar bufio.Scanner
// interface while the segment loading and locking happen underneath.
type Stream struct {
	ctx context.Context
	r   *Reader
	idx int
	buf []byte
	pos int
}

// NewStream returns a sequential reader over r starting at its first
// segment.
func NewStream(ctx context.Context, r *Reader) *Stream {
	return &Stream{ctx: ctx, r: r}
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.pos >= len(s.buf) {
		data, err := s.r.Segment(s.ctx, s.idx)
		if err != nil {
			return 0, err
		}
		if len(data) == 0 {
			return 0, io.EOF
		}
		s.buf = data
		s.pos = 0
		s.idx++
	}
	n := copy(p, s.buf[s.pos:])
	s.pos += n
	return n, nil
}
