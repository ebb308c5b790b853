package crypt

import (
	"crypto/hmac"
	"crypto/sha1"
	"fmt"
	"hash"

	"github.com/kuiwang02/lanplus/pkg/ipmi"
)

// AuthCode computes the keyed hash used for RAKP key exchange authentication
// codes, e.g. the AuthCode fields of RAKP messages 2 and 3, and SIK
// derivation. The key may be any length, including empty (for RAKP it is the
// user's password, or the SIK for further derivation), and zero-length data
// is legal. The full digest is returned; the caller truncates if the wire
// format asks for fewer bits.
//
// Only RAKP-HMAC-SHA1 is implemented. Any other selector returns
// ErrUnsupportedAlgorithm: a spurious or zeroed MAC would silently break
// authentication, so there is nothing sensible to return.
func AuthCode(a ipmi.AuthenticationAlgorithm, key, data []byte) ([]byte, error) {
	switch a {
	case ipmi.AuthenticationAlgorithmHMACSHA1:
		return hmacSum(sha1.New, key, data), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
}

// IntegrityAuthCode computes the keyed hash over an authenticated session
// packet. As with AuthCode, the full digest is returned: truncation to the
// 96-bit tag HMAC-SHA1-96 puts on the wire is the packet layer's concern.
//
// Unlike RAKP authentication codes, integrity keys have a fixed size: K1,
// which for HMAC-SHA1-96 is exactly 20 bytes. A key of any other length is
// rejected with ErrKeyLength rather than quietly weakening the MAC.
func IntegrityAuthCode(a ipmi.IntegrityAlgorithm, key, data []byte) ([]byte, error) {
	switch a {
	case ipmi.IntegrityAlgorithmHMACSHA196:
		if len(key) != sha1.Size {
			return nil, fmt.Errorf("%w: %v requires a %v-byte key, got %v",
				ErrKeyLength, a, sha1.Size, len(key))
		}
		return hmacSum(sha1.New, key, data), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
}

func hmacSum(h func() hash.Hash, key, data []byte) []byte {
	mac := hmac.New(h, key)
	mac.Write(data) // never returns an error
	return mac.Sum(nil)
}
