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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestErrorFormatsCaretAndStack(t *testing.T) {
	e := Errorf(ParseError, 3, 5, "unknown key %q", "Bogus")
	e.SourceLine = "Bogus: 1"
	e.Stack = []Frame{{MacroName: "m", CalledLine: 1}}
	got := e.Error()
	if !strings.Contains(got, `unknown key "Bogus"`) {
		t.Errorf("Error() = %q, want it to contain the message", got)
	}
	if !strings.Contains(got, "expanded from Macro: m") {
		t.Errorf("Error() = %q, want the macro stack frame", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("Error() = %q, want a caret", got)
	}
}

func TestLexerClassifiesSpecifierLine(t *testing.T) {
	lx := NewLexer(strings.NewReader("Title: hello"))
	l, err := lx.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if l.Key != "Title" || l.Value != "hello" {
		t.Errorf("Next() = %+v, want Key=Title Value=hello", l)
	}
}

func TestLexerClassifiesContinuation(t *testing.T) {
	lx := NewLexer(strings.NewReader("Title: hello\n  world"))
	lx.Next()
	l, err := lx.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if !l.Continuation || l.Value != "world" {
		t.Errorf("Next() = %+v, want a continuation with Value=world", l)
	}
}

func TestLexerClassifiesCommentAndBlank(t *testing.T) {
	lx := NewLexer(strings.NewReader("# a comment\n\nTitle: x"))
	for i := 0; i < 2; i++ {
		l, err := lx.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if !l.Comment {
			t.Errorf("Next()[%d] = %+v, want Comment=true", i, l)
		}
	}
}

func TestLexerClassifiesAnnotations(t *testing.T) {
	lx := NewLexer(strings.NewReader("@Line 0 0 1 1\n@@Text Center Top hello"))
	l, err := lx.Next()
	if err != nil || !l.Annotation || l.Key != "Line" {
		t.Errorf("Next() = %+v, err=%v, want a per-chart Line annotation", l, err)
	}
	l, err = lx.Next()
	if err != nil || !l.AnnotationGlobal || l.Key != "Text" {
		t.Errorf("Next() = %+v, err=%v, want a global Text annotation", l, err)
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lx := NewLexer(strings.NewReader("Title: a\nTitle: b"))
	first, _ := lx.Peek()
	second, _ := lx.Next()
	if first.Value != second.Value {
		t.Errorf("Peek() then Next() diverged: %q vs %q", first.Value, second.Value)
	}
	third, _ := lx.Next()
	if third.Value != "b" {
		t.Errorf("Next() after consuming peek = %q, want b", third.Value)
	}
}

func TestLexerEOF(t *testing.T) {
	lx := NewLexer(strings.NewReader(""))
	if _, err := lx.Next(); err != io.EOF {
		t.Errorf("Next() on empty source error = %v, want io.EOF", err)
	}
}

func TestMacrosDetectsCycle(t *testing.T) {
	m := NewMacros()
	m.Define("a", []Line{{Key: "Macro", Value: "b"}})
	m.Define("b", []Line{{Key: "Macro", Value: "a"}})

	m.Enter("a")
	defer m.Leave("a")
	if _, err := m.Expand("a", 10); err == nil {
		t.Error("Expand() of an already-active macro succeeded, want a cycle error")
	}
	if _, err := m.Expand("b", 10); err != nil {
		t.Errorf("Expand(b) error = %v, want nil (b is not yet active)", err)
	}
}

func TestMacrosUndefinedReference(t *testing.T) {
	m := NewMacros()
	if _, err := m.Expand("missing", 1); err == nil {
		t.Error("Expand() of an undefined macro succeeded, want an error")
	}
}

type memReaderAt struct{ data []byte }

func (m *memReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func TestReaderSegmentReadsWholeSource(t *testing.T) {
	data := bytes.Repeat([]byte("x"), segmentSize+100)
	r := NewReader(&memReaderAt{data: data}, int64(len(data)), 4)
	ctx := context.Background()

	seg0, err := r.Segment(ctx, 0)
	if err != nil {
		t.Fatalf("Segment(0) error = %v", err)
	}
	if len(seg0) != segmentSize {
		t.Errorf("len(seg0) = %d, want %d", len(seg0), segmentSize)
	}

	seg1, err := r.Segment(ctx, 1)
	if err != nil {
		t.Fatalf("Segment(1) error = %v", err)
	}
	if len(seg1) != 100 {
		t.Errorf("len(seg1) = %d, want 100", len(seg1))
	}
}

func TestStreamReadsSegmentsSequentially(t *testing.T) {
	data := []byte("hello world")
	r := NewReader(&memReaderAt{data: data}, int64(len(data)), 4)
	s := NewStream(context.Background(), r)
	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("ReadAll() = %q, want %q", got, "hello world")
	}
}
