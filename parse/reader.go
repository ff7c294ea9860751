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
	"sync"

	"golang.org/x/sync/semaphore"
)

// segmentSize is the fixed size (4 MiB) each input segment is divided
// into.
const segmentSize = 4 << 20

// defaultMaxBuffers is the default segment pool size.
const defaultMaxBuffers = 16

type segment struct {
	data    []byte
	loaded  bool
	err     error
	lastUse uint64
}

// Reader implements a segmented-buffer, background-prefetch source model:
// one background goroutine loads the segment after the one the parser is
// consuming, while the parser blocks on a condition variable only at
// segment boundaries. The "locked segment" — the one currently being
// consumed — is never evicted; LRU governs eviction of the rest.
// Sources backed by stdin (io.Reader, not io.ReaderAt) use a disjoint,
// append-only pinned pool, since they cannot be re-read once consumed; see
// NewStdinReader.
type Reader struct {
	src        io.ReaderAt
	size       int64
	maxBuffers int

	mu      sync.Mutex
	cond    *sync.Cond
	segs    map[int]*segment
	clock   uint64
	locked  int
	stop    bool
	loadErr error

	sem *semaphore.Weighted

	pinned bool // true for a stdin source: segments are never evicted.
}

// NewReader wraps src (size bytes long) for segmented, prefetched reading,
// using maxBuffers segment slots (0 selects the default of 16).
func NewReader(src io.ReaderAt, size int64, maxBuffers int) *Reader {
	if maxBuffers <= 0 {
		maxBuffers = defaultMaxBuffers
	}
	r := &Reader{
		src: src, size: size, maxBuffers: maxBuffers,
		segs: make(map[int]*segment),
		sem:  semaphore.NewWeighted(int64(maxBuffers)),
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// NewStdinReader wraps a non-seekable stream whose segments, once loaded,
// are pinned in memory for the reader's lifetime (they cannot be
// re-fetched from src).
func NewStdinReader(src io.Reader) *Reader {
	r := NewReader(&sequentialReaderAt{r: src}, -1, defaultMaxBuffers)
	r.pinned = true
	return r
}

// sequentialReaderAt adapts a forward-only io.Reader to io.ReaderAt,
// assuming (as the segmented reader guarantees for a pinned pool) that
// segments are requested in non-decreasing offset order exactly once
// each.
type sequentialReaderAt struct {
	mu  sync.Mutex
	r   io.Reader
	pos int64
}

func (s *sequentialReaderAt) ReadAt(p []byte, off int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if off != s.pos {
		return 0, Errorf(IOError, 0, 0, "stdin source read out of order at offset %d, expected %d", off, s.pos)
	}
	n, err := io.ReadFull(s.r, p)
	s.pos += int64(n)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n, err
}

// segmentIndex returns which fixed-size segment offset off falls in.
func segmentIndex(off int64) int { return int(off / segmentSize) }

// Prefetch kicks off a background load of segment index. Segment calls it
// for the segment after the one being consumed, so the worker pre-loads the
// next segment while the parser consumes the current one.
// It is safe to call repeatedly; a segment already loaded or loading is
// not reloaded.
func (r *Reader) Prefetch(ctx context.Context, index int) {
	r.mu.Lock()
	if r.stop {
		r.mu.Unlock()
		return
	}
	if _, ok := r.segs[index]; ok {
		r.mu.Unlock()
		return
	}
	seg := &segment{}
	r.segs[index] = seg
	r.mu.Unlock()

	go r.load(ctx, index, seg)
}

func (r *Reader) load(ctx context.Context, index int, seg *segment) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		r.mu.Lock()
		seg.err = err
		r.cond.Broadcast()
		r.mu.Unlock()
		return
	}
	defer r.sem.Release(1)

	buf := make([]byte, segmentSize)
	n, err := r.src.ReadAt(buf, int64(index)*segmentSize)
	if err != nil && err != io.EOF {
		r.mu.Lock()
		seg.err = err
		r.stop = true
		r.cond.Broadcast()
		r.mu.Unlock()
		return
	}

	r.mu.Lock()
	seg.data = buf[:n]
	seg.loaded = true
	r.cond.Broadcast()
	r.evictLocked()
	r.mu.Unlock()
}

// Segment blocks (the parser's only suspension point) until segment index
// is loaded, marks it as the locked (non-evictable) segment, and returns
// its bytes. It also opportunistically starts prefetching the next
// segment.
func (r *Reader) Segment(ctx context.Context, index int) ([]byte, error) {
	r.mu.Lock()
	r.locked = index
	seg, ok := r.segs[index]
	r.mu.Unlock()
	if !ok {
		r.Prefetch(ctx, index)
	}
	r.Prefetch(ctx, index+1)

	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		seg = r.segs[index]
		if seg != nil && (seg.loaded || seg.err != nil) {
			break
		}
		if r.stop && (seg == nil || !seg.loaded) {
			if r.loadErr != nil {
				return nil, r.loadErr
			}
		}
		r.cond.Wait()
	}
	if seg.err != nil {
		return nil, seg.err
	}
	r.clock++
	seg.lastUse = r.clock
	return seg.data, nil
}

// evictLocked drops the least-recently-used loaded segment (other than
// the locked one) once the pool exceeds maxBuffers. Callers must hold
// r.mu. A pinned (stdin) reader never evicts.
func (r *Reader) evictLocked() {
	if r.pinned || len(r.segs) <= r.maxBuffers {
		return
	}
	var oldestIdx = -1
	var oldestUse uint64
	for idx, seg := range r.segs {
		if idx == r.locked || !seg.loaded {
			continue
		}
		if oldestIdx == -1 || seg.lastUse < oldestUse {
			oldestIdx, oldestUse = idx, seg.lastUse
		}
	}
	if oldestIdx != -1 {
		delete(r.segs, oldestIdx)
	}
}

// Stop sets the reader's stop flag so the background loader abandons
// further work; it is set on fatal errors.
func (r *Reader) Stop() {
	r.mu.Lock()
	r.stop = true
	r.cond.Broadcast()
	r.mu.Unlock()
}
