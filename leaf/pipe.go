// File: pipe.go
// Package leaf
// License: Apache-2.0
//
// Non-blocking read/write leaf futures over an *os.File (a pipe, in the
// tests, but any fd-backed file works).

package leaf

import (
	"io"
	"os"

	"github.com/loomrt/loom"
	"golang.org/x/sys/unix"
)

// PipeRead is a leaf Future that reads at most len(buf) bytes from file
// without blocking the Executor. It registers with the Reactor on EAGAIN
// and unregisters as soon as it has data, an EOF, or a hard error.
type PipeRead struct {
	loom.BaseFuture
	file       *os.File
	buf        []byte
	fd         int
	haveFD     bool
	registered bool
}

// NewPipeRead returns a PipeRead that fills buf on success; len(buf)
// bounds the read size.
func NewPipeRead(file *os.File, buf []byte) *PipeRead {
	return &PipeRead{file: file, buf: buf}
}

// Progress implements loom.Future.
func (p *PipeRead) Progress(r loom.Reactor, w loom.Waker) loom.State {
	if !p.haveFD {
		if err := resolveNonblockingFD(p.file, &p.fd); err != nil {
			p.Fail(loom.ErrCodeIO)
			return loom.Failed
		}
		p.haveFD = true
	}

	n, err := unix.Read(p.fd, p.buf)
	switch {
	case err == nil && n == 0:
		p.unregister(r)
		p.Settle(io.EOF)
		return loom.Completed
	case err == nil:
		p.unregister(r)
		p.Settle(p.buf[:n])
		return loom.Completed
	case err == unix.EAGAIN || err == unix.EWOULDBLOCK:
		if !p.registered {
			if regErr := r.Register(uintptr(p.fd), loom.Readable, w); regErr != nil {
				p.Fail(loom.ErrCodeIO)
				return loom.Failed
			}
			p.registered = true
		}
		return loom.Pending
	default:
		p.unregister(r)
		p.Fail(loom.ErrCodeIO)
		return loom.Failed
	}
}

func (p *PipeRead) unregister(r loom.Reactor) {
	if p.registered {
		_ = r.Unregister(uintptr(p.fd))
		p.registered = false
	}
}

// PipeWrite is a leaf Future that writes data to file without blocking the
// Executor, resuming the write past whatever was already flushed across
// successive Progress calls.
type PipeWrite struct {
	loom.BaseFuture
	file       *os.File
	data       []byte
	written    int
	fd         int
	haveFD     bool
	registered bool
}

// NewPipeWrite returns a PipeWrite that flushes all of data to file.
func NewPipeWrite(file *os.File, data []byte) *PipeWrite {
	return &PipeWrite{file: file, data: data}
}

// Progress implements loom.Future.
func (p *PipeWrite) Progress(r loom.Reactor, w loom.Waker) loom.State {
	if !p.haveFD {
		if err := resolveNonblockingFD(p.file, &p.fd); err != nil {
			p.Fail(loom.ErrCodeIO)
			return loom.Failed
		}
		p.haveFD = true
	}

	for p.written < len(p.data) {
		n, err := unix.Write(p.fd, p.data[p.written:])
		switch {
		case err == nil:
			p.written += n
		case err == unix.EAGAIN || err == unix.EWOULDBLOCK:
			if !p.registered {
				if regErr := r.Register(uintptr(p.fd), loom.Writable, w); regErr != nil {
					p.Fail(loom.ErrCodeIO)
					return loom.Failed
				}
				p.registered = true
			}
			return loom.Pending
		default:
			p.unregister(r)
			p.Fail(loom.ErrCodeIO)
			return loom.Failed
		}
	}

	p.unregister(r)
	p.Settle(p.written)
	return loom.Completed
}

func (p *PipeWrite) unregister(r loom.Reactor) {
	if p.registered {
		_ = r.Unregister(uintptr(p.fd))
		p.registered = false
	}
}

// resolveNonblockingFD extracts file's raw fd and puts it in non-blocking
// mode. Deliberately not file.Fd(): that call forces the runtime poller to
// hand the fd back in blocking mode, making EAGAIN impossible to observe.
func resolveNonblockingFD(file *os.File, out *int) error {
	conn, err := file.SyscallConn()
	if err != nil {
		return err
	}
	var ctrlErr error
	err = conn.Control(func(fd uintptr) {
		*out = int(fd)
		ctrlErr = unix.SetNonblock(*out, true)
	})
	if err != nil {
		return err
	}
	return ctrlErr
}
