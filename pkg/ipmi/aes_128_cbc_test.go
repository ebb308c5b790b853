package ipmi

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/gopacket"
)

var testK2 = [16]byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
}

// encryptRaw builds a confidentiality layer body by hand: IV, then the CBC
// encryption of plaintext (which must already carry the pad and pad length).
func encryptRaw(t *testing.T, iv [16]byte, plaintext []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(testK2[:])
	if err != nil {
		t.Fatalf("aes.NewCipher() returned error: %v", err)
	}
	body := make([]byte, len(iv)+len(plaintext))
	copy(body, iv[:])
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(body[len(iv):], plaintext)
	return body
}

func TestAES128CBCRoundTrip(t *testing.T) {
	layer, err := NewAES128CBC(testK2)
	if err != nil {
		t.Fatalf("NewAES128CBC() returned error: %v", err)
	}

	// lengths chosen to hit no pad, maximal pad, and an aligned message
	// (which still gains a pad length byte and 15 pad bytes)
	for _, length := range []int{1, 15, 16, 17, 100} {
		message := make([]byte, length)
		for i := range message {
			message[i] = byte(i + 1)
		}

		buf := gopacket.NewSerializeBuffer()
		if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{},
			layer, gopacket.Payload(message)); err != nil {
			t.Fatalf("SerializeLayers(%v bytes) returned error: %v", length, err)
		}

		wire := buf.Bytes()
		if len(wire)%16 != 0 {
			t.Errorf("serialised %v-byte message to %v bytes, not block aligned",
				length, len(wire))
		}
		if bytes.Contains(wire[16:], message) && length >= 16 {
			t.Errorf("serialised %v-byte message contains the plaintext", length)
		}

		decoded, err := NewAES128CBC(testK2)
		if err != nil {
			t.Fatalf("NewAES128CBC() returned error: %v", err)
		}
		if err := decoded.DecodeFromBytes(wire, gopacket.NilDecodeFeedback); err != nil {
			t.Fatalf("DecodeFromBytes(%v bytes) returned error: %v", length, err)
		}
		if diff := cmp.Diff(message, decoded.LayerPayload()); diff != "" {
			t.Errorf("round trip mismatch at %v bytes (-want +got):\n%s", length, diff)
		}
	}
}

func TestAES128CBCDecodeLength(t *testing.T) {
	layer, err := NewAES128CBC(testK2)
	if err != nil {
		t.Fatalf("NewAES128CBC() returned error: %v", err)
	}
	// too short to hold an IV and a block, or not block aligned
	for _, length := range []int{0, 15, 16, 31, 33} {
		if err := layer.DecodeFromBytes(make([]byte, length), gopacket.NilDecodeFeedback); err == nil {
			t.Errorf("DecodeFromBytes(%v bytes) did not return an error", length)
		}
	}
}

func TestAES128CBCDecodeInvalidPad(t *testing.T) {
	layer, err := NewAES128CBC(testK2)
	if err != nil {
		t.Fatalf("NewAES128CBC() returned error: %v", err)
	}
	iv := [16]byte{0xff}

	// pad length byte claims more pad than AES could ever add
	overlongPad := make([]byte, 16)
	overlongPad[15] = 0x11
	if err := layer.DecodeFromBytes(encryptRaw(t, iv, overlongPad), gopacket.NilDecodeFeedback); err == nil {
		t.Errorf("DecodeFromBytes() accepted a %v-byte pad", 0x11)
	}

	// pad bytes must increment from 0x01; 0x02 in the first position is
	// invalid
	badPad := []byte{
		0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
		0xde, 0xad, 0xbe, 0xef, 0xde, 0x02, 0x02, 0x02,
	}
	if err := layer.DecodeFromBytes(encryptRaw(t, iv, badPad), gopacket.NilDecodeFeedback); err == nil {
		t.Errorf("DecodeFromBytes() accepted a non-incrementing pad")
	}
}

func TestAES128CBCDecodePadOverrun(t *testing.T) {
	layer, err := NewAES128CBC(testK2)
	if err != nil {
		t.Fatalf("NewAES128CBC() returned error: %v", err)
	}
	iv := [16]byte{0xff}

	// a minimal body - IV plus a single block - whose plaintext ends in
	// 0x10: the 16-byte pad claim passes the range guard but cannot fit in
	// the one block, and must be rejected rather than walked off the front
	// of the payload
	overrun := bytes.Repeat([]byte{0x10}, 16)
	if err := layer.DecodeFromBytes(encryptRaw(t, iv, overrun), gopacket.NilDecodeFeedback); err == nil {
		t.Errorf("DecodeFromBytes() accepted a pad overrunning a one-block payload")
	}
}

func TestAES128CBCDecodeFullBlockPad(t *testing.T) {
	layer, err := NewAES128CBC(testK2)
	if err != nil {
		t.Fatalf("NewAES128CBC() returned error: %v", err)
	}
	iv := [16]byte{0xff}

	// an OpenSSL-style BMC pads an aligned message with a whole extra
	// block: 15 message bytes, pad 0x01..0x10, pad length byte 0x10
	message := bytes.Repeat([]byte{0xab}, 15)
	plaintext := make([]byte, 0, 32)
	plaintext = append(plaintext, message...)
	for v := byte(1); v <= 16; v++ {
		plaintext = append(plaintext, v)
	}
	plaintext = append(plaintext, 0x10)

	if err := layer.DecodeFromBytes(encryptRaw(t, iv, plaintext), gopacket.NilDecodeFeedback); err != nil {
		t.Fatalf("DecodeFromBytes() rejected a full-block pad: %v", err)
	}
	if diff := cmp.Diff(message, layer.LayerPayload()); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestAES128CBCFreshIV(t *testing.T) {
	layer, err := NewAES128CBC(testK2)
	if err != nil {
		t.Fatalf("NewAES128CBC() returned error: %v", err)
	}
	message := []byte("the same message twice")

	serialize := func() []byte {
		buf := gopacket.NewSerializeBuffer()
		if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{},
			layer, gopacket.Payload(message)); err != nil {
			t.Fatalf("SerializeLayers() returned error: %v", err)
		}
		return append([]byte(nil), buf.Bytes()...)
	}

	first := serialize()
	second := serialize()
	if bytes.Equal(first[:16], second[:16]) {
		t.Errorf("two serialisations used the same IV: %x", first[:16])
	}
}
