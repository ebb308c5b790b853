// Package layerexts contains convenience types building on gopacket's layer
// interfaces.
package layerexts

import (
	"github.com/google/gopacket"
)

// SerializableDecodingLayer is implemented by layers that can be both
// serialised into a packet, and decoded from one. Session payload ciphers
// have this property: the same keyed layer encrypts outgoing payloads and
// decrypts incoming ones.
type SerializableDecodingLayer interface {
	gopacket.SerializableLayer
	gopacket.DecodingLayer
}
