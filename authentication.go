package lanplus

import (
	"github.com/kuiwang02/lanplus/pkg/crypt"
	"github.com/kuiwang02/lanplus/pkg/ipmi"
)

// AuthCode computes the RAKP key exchange authentication code for the
// negotiated authentication algorithm, e.g. over the concatenated session
// IDs, random numbers, GUID, privilege level and username when verifying
// RAKP message 2. The full digest is returned; where the wire format wants a
// truncated ICV, the packet layer cuts it down.
func AuthCode(a ipmi.AuthenticationAlgorithm, key, data []byte) ([]byte, error) {
	code, err := crypt.AuthCode(a, key, data)
	authCodes.WithLabelValues(a.String(), outcome(err)).Inc()
	return code, err
}
