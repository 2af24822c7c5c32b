// File: pipe_test.go
// Package leaf_test

package leaf_test

import (
	"io"
	"os"
	"testing"

	"github.com/loomrt/loom"
	"github.com/loomrt/loom/leaf"
)

func TestPipeWriteThenRead(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	exec, err := loom.NewExecutor(8)
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}
	defer exec.Close()

	buf := make([]byte, 64)
	seq := loom.Then(leaf.NewPipeWrite(w, []byte("hello")), leaf.NewPipeRead(r, buf))
	exec.Spawn(seq)
	exec.Run()

	if seq.Errcode() != loom.ErrCodeNone {
		t.Fatalf("expected success, got error code %v", seq.Errcode())
	}
	got, ok := seq.Ok().([]byte)
	if !ok {
		t.Fatalf("expected []byte result, got %T", seq.Ok())
	}
	if string(got) != "hello" {
		t.Fatalf("expected %q, got %q", "hello", string(got))
	}
}

func TestPipeRead_EOF(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	exec, err := loom.NewExecutor(8)
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}
	defer exec.Close()

	buf := make([]byte, 64)
	read := leaf.NewPipeRead(r, buf)
	exec.Spawn(read)
	exec.Run()

	if read.Errcode() != loom.ErrCodeNone {
		t.Fatalf("expected success (EOF is not a failure), got error code %v", read.Errcode())
	}
	if read.Ok() != io.EOF {
		t.Fatalf("expected io.EOF sentinel, got %v", read.Ok())
	}
}

func TestPipeWrite_LargePayloadAcrossMultipleSyscalls(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer w.Close()

	exec, err := loom.NewExecutor(8)
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}
	defer exec.Close()

	payload := make([]byte, 256*1024)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	write := leaf.NewPipeWrite(w, payload)

	drained := make(chan struct{})
	go func() {
		buf := make([]byte, 4096)
		total := 0
		for total < len(payload) {
			n, rerr := r.Read(buf)
			total += n
			if rerr != nil {
				break
			}
		}
		close(drained)
	}()

	exec.Spawn(write)
	exec.Run()
	<-drained

	if write.Errcode() != loom.ErrCodeNone {
		t.Fatalf("expected success, got error code %v", write.Errcode())
	}
	if write.Ok() != len(payload) {
		t.Fatalf("expected %d bytes written, got %v", len(payload), write.Ok())
	}
}
