/*
File    : filipe/std/runtime.go
Package : std
*/

// Package std registers Filipe's global built-ins and built-in modules:
// the free functions pre-populated into the global scope (spec §4.5.5) and
// the math/io/sys/random modules resolved by `import` (SUPPLEMENTED
// FEATURES #1).
package std

import "io"

// Runtime carries the host I/O streams and exit hook a built-in may need.
// The evaluator owns one Runtime for its lifetime; tests substitute their
// own Writer/Reader/ExitFunc to capture output and avoid a real os.Exit.
type Runtime struct {
	Writer   io.Writer
	Reader   io.Reader
	ExitFunc func(code int)
}
