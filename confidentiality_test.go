package lanplus

import (
	"bytes"
	"testing"

	"github.com/kuiwang02/lanplus/pkg/ipmi"
)

type staticKeyMaterial []byte

func (g staticKeyMaterial) K(n uint8) []byte {
	return g
}

func TestAlgorithmCipher(t *testing.T) {
	g := staticKeyMaterial(bytes.Repeat([]byte{0x42}, 20))

	layer, err := AlgorithmCipher(ipmi.ConfidentialityAlgorithmNone, g)
	if layer != nil || err != nil {
		t.Errorf("AlgorithmCipher(None) = %v, %v, want nil, nil", layer, err)
	}

	layer, err = AlgorithmCipher(ipmi.ConfidentialityAlgorithmAESCBC128, g)
	if err != nil {
		t.Fatalf("AlgorithmCipher(AES-CBC-128) returned error: %v", err)
	}
	if layer == nil {
		t.Fatalf("AlgorithmCipher(AES-CBC-128) returned a nil layer")
	}

	for _, unsupported := range []ipmi.ConfidentialityAlgorithm{
		ipmi.ConfidentialityAlgorithmXRC4128,
		ipmi.ConfidentialityAlgorithmXRC440,
		0x30,
	} {
		if _, err := AlgorithmCipher(unsupported, g); err == nil {
			t.Errorf("AlgorithmCipher(%v) did not return an error", unsupported)
		}
	}
}
