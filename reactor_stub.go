//go:build !linux
// +build !linux

// File: reactor_stub.go
// Package loom
// License: Apache-2.0
//
// Stub Reactor for platforms without an epoll backend.

package loom

// NewReactor returns ErrUnsupportedPlatform; only Linux has a backend.
func NewReactor(exec *Executor) (Reactor, error) {
	return nil, ErrUnsupportedPlatform
}
