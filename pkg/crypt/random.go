package crypt

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Source yields the unpredictable bytes used for session nonces and key
// material. The production implementation is OSSource; a deterministic
// variant for protocol-conformance debugging lives in the separately
// imported insecurerand package, so selecting it is always a visible,
// auditable act.
type Source interface {

	// Seed primes the source with n bytes drawn from the operating system's
	// entropy device, verifying it can supply that much. It may block
	// briefly on the device and so belongs at session startup, not on the
	// packet path. It returns ErrEntropy if the device was unavailable or
	// supplied fewer usable bytes than requested.
	Seed(n int) error

	// Fill overwrites p with unpredictable bytes. If it returns a non-nil
	// error, the contents of p are untrustworthy and must not be used for
	// anything security-relevant.
	Fill(p []byte) error
}

// OSSource reads from the operating system's CSPRNG via crypto/rand. The
// zero value is ready to use.
type OSSource struct{}

func (OSSource) Seed(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot seed with %v bytes", ErrEntropy, n)
	}
	// crypto/rand needs no explicit seeding; drawing and discarding n bytes
	// proves the device can satisfy us before a session depends on it.
	discard := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, discard); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return nil
}

func (OSSource) Fill(p []byte) error {
	if _, err := io.ReadFull(rand.Reader, p); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return nil
}
