// File: doc.go
// Package leaf
// License: Apache-2.0
//
// Package leaf provides the bottom-of-the-tree futures that actually touch
// a file descriptor: the things Then, Join, and Select compose but never
// implement themselves. Raw reads and writes go through
// (*os.File).SyscallConn rather than (*os.File).Fd, since Fd forces the
// descriptor into blocking mode.
package leaf
