package crypt

import (
	"errors"
)

var (
	// ErrEntropy indicates the operating system's entropy device could not
	// supply the requested bytes. A buffer passed to a failed fill must not
	// be used for anything security-relevant; the caller decides whether to
	// retry or abort session establishment. Falling back to weaker
	// randomness is never an option.
	ErrEntropy = errors.New("entropy unavailable")

	// ErrUnsupportedAlgorithm indicates a MAC was requested for an algorithm
	// this package does not implement. This is a programming-contract
	// violation: it means algorithm negotiation upstream produced a value
	// the crypto layer was never taught, so there is no spurious value we
	// could safely return.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrMisalignedInput indicates cipher input whose length is not a
	// multiple of the block size. The caller owns the padding scheme that
	// guarantees alignment before invoking the codec; silently padding here
	// would corrupt the wire format, so the call is rejected instead.
	ErrMisalignedInput = errors.New("input length not a multiple of the cipher block size")

	// ErrKeyLength indicates a key, IV or SIK of the wrong length for the
	// requested algorithm.
	ErrKeyLength = errors.New("wrong key or IV length")

	// ErrShortBuffer indicates the caller-allocated output buffer cannot
	// hold the transformed input.
	ErrShortBuffer = errors.New("output buffer too small")
)
