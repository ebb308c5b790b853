package lanplus

import (
	"fmt"

	"github.com/kuiwang02/lanplus/pkg/ipmi"
	"github.com/kuiwang02/lanplus/pkg/layerexts"
)

// AlgorithmCipher builds the payload cipher layer for the negotiated
// confidentiality algorithm, keyed with the first 128 bits of K2 drawn from
// g. A nil layer with a nil error means the session is unencrypted
// (ConfidentialityAlgorithmNone). Which algorithm to pass is the session
// layer's policy decision, made from the negotiated capabilities.
func AlgorithmCipher(a ipmi.ConfidentialityAlgorithm, g AdditionalKeyMaterialGenerator) (layerexts.SerializableDecodingLayer, error) {
	switch a {
	case ipmi.ConfidentialityAlgorithmNone:
		return nil, nil
	case ipmi.ConfidentialityAlgorithmAESCBC128:
		key := [16]byte{}
		copy(key[:], g.K(2))
		return ipmi.NewAES128CBC(key)
	default:
		return nil, fmt.Errorf("unsupported confidentiality algorithm: %v", a)
	}
}
