package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// BlockSize is the AES block size in bytes. Codec input must be a multiple
// of this, and IVs and AES-128 keys are exactly this long.
const BlockSize = aes.BlockSize

// EncryptAES128CBC encrypts input into output using AES-128 in CBC mode,
// returning the number of bytes written. iv and key must each be exactly 16
// bytes; input must be empty or a multiple of 16 bytes long (the caller owns
// the padding scheme - see ipmi.AES128CBC for the wire format); output must
// hold at least len(input) bytes. CBC with caller-managed padding never
// expands the data, so on success the byte count equals len(input) exactly.
//
// Neither iv nor key is mutated or retained. On any failure 0 is returned
// and output must not be trusted. diag, which may be nil, receives dumps of
// the IV, key and plaintext.
func EncryptAES128CBC(iv, key, input, output []byte, diag Diag) (int, error) {
	if err := checkCodecArgs(iv, key, input, output); err != nil {
		return 0, err
	}
	if len(input) == 0 {
		return 0, nil
	}

	dump(diag, "encrypting with this IV", iv)
	dump(diag, "encrypting with this key", key)
	dump(diag, "encrypting this data", input)

	block, err := aes.NewCipher(key)
	if err != nil {
		return 0, fmt.Errorf("creating AES cipher: %w", err)
	}
	// the block mode is scoped to this call; NewCBCEncrypter copies the IV,
	// so the caller's slice stays untouched
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(output[:len(input)], input)
	return len(input), nil
}

// DecryptAES128CBC decrypts input into output using AES-128 in CBC mode,
// returning the number of bytes written. The contract mirrors
// EncryptAES128CBC: 16-byte iv and key, block-aligned or empty input, output
// at least as long as input, and a byte count of exactly len(input) on
// success.
//
// Failures carry a human-readable cause suitable for logging, but the error
// itself is the signal: on any failure 0 is returned and output holds
// nothing usable. diag, which may be nil, additionally receives dumps of the
// IV, key, ciphertext and recovered plaintext.
func DecryptAES128CBC(iv, key, input, output []byte, diag Diag) (int, error) {
	if err := checkCodecArgs(iv, key, input, output); err != nil {
		return 0, err
	}
	if len(input) == 0 {
		return 0, nil
	}

	dump(diag, "decrypting with this IV", iv)
	dump(diag, "decrypting with this key", key)
	dump(diag, "decrypting this data", input)

	block, err := aes.NewCipher(key)
	if err != nil {
		return 0, fmt.Errorf("creating AES cipher: %w", err)
	}
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(output[:len(input)], input)

	dump(diag, "decrypted this data", output[:len(input)])
	return len(input), nil
}

func checkCodecArgs(iv, key, input, output []byte) error {
	if len(iv) != BlockSize {
		return fmt.Errorf("%w: IV must be %v bytes, got %v",
			ErrKeyLength, BlockSize, len(iv))
	}
	if len(key) != BlockSize {
		return fmt.Errorf("%w: AES-128 key must be %v bytes, got %v",
			ErrKeyLength, BlockSize, len(key))
	}
	if len(input)%BlockSize != 0 {
		// the stdlib block mode would panic here; the underlying problem is
		// a broken padding scheme upstream, so reject loudly
		return fmt.Errorf("%w: got %v bytes", ErrMisalignedInput, len(input))
	}
	if len(output) < len(input) {
		return fmt.Errorf("%w: need %v bytes, got %v",
			ErrShortBuffer, len(input), len(output))
	}
	return nil
}
