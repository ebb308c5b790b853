package lanplus

import (
	"github.com/kuiwang02/lanplus/pkg/crypt"
)

// Encrypt transforms a block-aligned, caller-padded plaintext into output
// using AES-128-CBC under the supplied 16-byte IV and key, returning the
// number of bytes written. See crypt.EncryptAES128CBC for the full contract;
// sessions wanting the standard confidentiality wire format (IV header, pad
// trailer) should prefer the layer returned by AlgorithmCipher.
func Encrypt(iv, key, input, output []byte, diag crypt.Diag) (int, error) {
	n, err := crypt.EncryptAES128CBC(iv, key, input, output, diag)
	cipherOperations.WithLabelValues("encrypt", outcome(err)).Inc()
	return n, err
}

// Decrypt reverses Encrypt under the same IV and key. On failure the error
// carries a loggable cause, output holds nothing usable, and 0 is returned.
func Decrypt(iv, key, input, output []byte, diag crypt.Diag) (int, error) {
	n, err := crypt.DecryptAES128CBC(iv, key, input, output, diag)
	cipherOperations.WithLabelValues("decrypt", outcome(err)).Inc()
	return n, err
}
