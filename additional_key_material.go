package lanplus

import (
	"bytes"
	"crypto/sha1"
	"fmt"

	"github.com/kuiwang02/lanplus/pkg/crypt"
	"github.com/kuiwang02/lanplus/pkg/ipmi"
)

// AdditionalKeyMaterialGenerator produces the additional key material (K_N)
// defined in section 13.32 of IPMI v2.0, used to key the integrity (K1) and
// confidentiality (K2) algorithms once a session is established.
type AdditionalKeyMaterialGenerator interface {

	// K returns the N'th piece of additional key material. Values are
	// derived on demand; the returned slice is owned by the caller and must
	// not be fed back into the generator.
	K(n uint8) []byte
}

type additionalKeyMaterial struct {
	algorithm ipmi.AuthenticationAlgorithm
	sik       []byte
}

// NewAdditionalKeyMaterial derives K_N values from the Session Integrity Key
// under the negotiated authentication algorithm: K_N is the algorithm's HMAC,
// keyed with the SIK, of N repeated to the digest length. The SIK must be
// exactly the digest length (20 bytes for RAKP-HMAC-SHA1); anything else
// means the caller's key derivation went wrong, so it is rejected rather
// than inferred around. The SIK is copied, never aliased.
func NewAdditionalKeyMaterial(a ipmi.AuthenticationAlgorithm, sik []byte) (AdditionalKeyMaterialGenerator, error) {
	if a != ipmi.AuthenticationAlgorithmHMACSHA1 {
		return nil, fmt.Errorf("%w: %v", crypt.ErrUnsupportedAlgorithm, a)
	}
	if len(sik) != sha1.Size {
		return nil, fmt.Errorf("%w: SIK for %v must be %v bytes, got %v",
			crypt.ErrKeyLength, a, sha1.Size, len(sik))
	}
	return &additionalKeyMaterial{
		algorithm: a,
		sik:       append([]byte(nil), sik...),
	}, nil
}

func (g *additionalKeyMaterial) K(n uint8) []byte {
	konst := bytes.Repeat([]byte{n}, sha1.Size)
	code, err := crypt.AuthCode(g.algorithm, g.sik, konst)
	if err != nil {
		// the algorithm was validated at construction
		panic(err)
	}
	return code
}
