package ipmi

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// AES128CBC implements the AES-128-CBC confidentiality algorithm specified in
// section 13.29 of IPMI v2.0. It is a payload layer type, wrapping an IPMI
// message in a confidentiality header (a random 16-byte IV) and trailer (an
// incrementing pad and its length, per table 13-20). Note the default
// instance is not usable: use NewAES128CBC() to create one.
type AES128CBC struct {
	layers.BaseLayer

	// cipher is an instance of AES loaded with the first 128 bits of K2 as
	// the key. This field is of course not included in the packet data, and
	// must be set before serialising or decoding any packets.
	cipher cipher.Block

	// lack of IV field is deliberate so implementations cannot forget to set
	// it; a fresh IV is drawn from the OS for each serialised message
}

// NewAES128CBC creates a confidentiality layer keyed with the first 128 bits
// of K2. The key is copied into the cipher's key schedule; the argument is
// not retained.
func NewAES128CBC(k2 [16]byte) (*AES128CBC, error) {
	c, err := aes.NewCipher(k2[:])
	if err != nil {
		return nil, err
	}
	return &AES128CBC{
		cipher: c,
	}, nil
}

func (*AES128CBC) LayerType() gopacket.LayerType {
	return layerTypeAES128CBC
}

func (a *AES128CBC) CanDecode() gopacket.LayerClass {
	return a.LayerType()
}

func (a *AES128CBC) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// DecodeFromBytes decrypts and validates an AES-128-CBC confidentiality
// layer. Although a precise error is returned, care should be taken when
// displaying this, as it can lead to a padding oracle attack (essentially,
// don't reveal the difference between "decryption failed" and "invalid
// padding" errors).
func (a *AES128CBC) DecodeFromBytes(data []byte, _ gopacket.DecodeFeedback) error {
	blockSize := a.cipher.BlockSize()
	if len(data) < blockSize*2 || len(data)%blockSize != 0 {
		return fmt.Errorf(
			"AES payload must be at least %v bytes and have an overall length divisible by %v, got length of %v",
			blockSize*2, blockSize, len(data))
	}

	iv := data[:blockSize]
	ciphertext := data[blockSize:]
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(a.cipher, iv).CryptBlocks(plaintext, ciphertext)

	padLength := uint8(plaintext[len(plaintext)-1])
	// table 13-20 of the spec says the confidentiality pad length ranges from
	// 0 to 15 bytes if using AES, but we may receive 16 bytes if the BMC's
	// implementation of AES in CBC mode requires a minimum of one pad byte
	// (which is how OpenSSL works) and the message is already aligned.
	if padLength > uint8(blockSize) {
		return fmt.Errorf("invalid number of pad bytes: %v", padLength)
	}
	padStart := len(plaintext) - int(padLength) - 1
	if padStart < 0 {
		// a full 16-byte pad needs a second block to live in; anything on
		// the wire can claim it, so bound it before walking the pad
		return fmt.Errorf("pad of %v bytes overruns the %v-byte payload",
			padLength, len(plaintext))
	}
	// table 13-20 of the spec says we should check the pad
	v := uint8(1)
	for i := padStart; i < padStart+int(padLength); i++ {
		if plaintext[i] != v {
			return fmt.Errorf(
				"invalid pad byte: offset %v (%v within payload) should have value %v, but has value %v",
				v-1, i, v, plaintext[i])
		}
		v++
	}
	a.BaseLayer.Contents = iv
	a.BaseLayer.Payload = plaintext[:padStart]
	return nil
}

// SerializeTo appends the confidentiality trailer to the payload already in
// the buffer, prepends a fresh random IV, and encrypts everything after the
// IV in place.
func (a *AES128CBC) SerializeTo(b gopacket.SerializeBuffer, _ gopacket.SerializeOptions) error {
	blockSize := a.cipher.BlockSize()

	// write confidentiality trailer so it is there to encrypt next
	padLength := (blockSize - 1) - (len(b.Bytes()) % blockSize)
	trailer, err := b.AppendBytes(padLength + 1)
	if err != nil {
		return err
	}
	for i := 0; i < padLength; i++ {
		trailer[i] = uint8(i + 1) // 0x01, 0x02, 0x03 etc.
	}
	trailer[padLength] = uint8(padLength)

	// secure random IV for confidentiality header
	iv, err := b.PrependBytes(blockSize)
	if err != nil {
		return err
	}
	if _, err := rand.Read(iv); err != nil {
		return err
	}

	// encrypt everything after the IV; b.Bytes() is re-read as PrependBytes
	// can reallocate the underlying buffer
	toEncrypt := b.Bytes()[blockSize:]
	cipher.NewCBCEncrypter(a.cipher, iv).CryptBlocks(toEncrypt, toEncrypt)
	return nil
}
