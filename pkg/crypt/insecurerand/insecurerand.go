// Package insecurerand provides a deterministic stand-in for the OS entropy
// source, producing a fixed byte pattern that is easy to spot in packet hex
// dumps. It exists solely for protocol-conformance testing and debugging.
//
// The pattern is trivially predictable, so a session keyed from it offers no
// security whatsoever. Keeping the implementation in its own package means a
// production binary can only gain it through an explicit import, which is
// what code review and `go list -deps` audits should look for.
package insecurerand

import (
	"github.com/kuiwang02/lanplus/pkg/crypt"
)

// Source fills buffers with a repeating pattern derived from the byte index:
// position i receives 0x70 | (i % 16). The zero value is ready to use.
type Source struct{}

var _ crypt.Source = Source{}

// Seed always succeeds; there is no generator state to prime.
func (Source) Seed(n int) error {
	return nil
}

// Fill overwrites p with the deterministic pattern. It never fails, and
// successive calls with equal-length buffers produce identical bytes.
func (Source) Fill(p []byte) error {
	for i := range p {
		p[i] = 0x70 | byte(i&0x0f)
	}
	return nil
}
