// Package pool
// Author: momentics <momentics@gmail.com>
//
// Generic object pooling for repeatedly-allocated values, such as the
// leaf package's PipeRead buffers. See objpool.go.
package pool
