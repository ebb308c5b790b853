package lanplus

import (
	"github.com/kuiwang02/lanplus/pkg/crypt"
	"github.com/kuiwang02/lanplus/pkg/ipmi"
)

// IntegrityAuthCode computes the keyed hash whose truncation becomes the
// AuthCode field in the session trailer of an authenticated packet. key is
// K1; its length is validated against the algorithm's contract rather than
// silently accepted.
func IntegrityAuthCode(a ipmi.IntegrityAlgorithm, key, data []byte) ([]byte, error) {
	code, err := crypt.IntegrityAuthCode(a, key, data)
	authCodes.WithLabelValues(a.String(), outcome(err)).Inc()
	return code, err
}
