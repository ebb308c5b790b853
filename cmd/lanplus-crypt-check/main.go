// lanplus-crypt-check exercises the session crypto primitives against
// known-answer vectors and prints a pass/fail line per check. It exists so an
// operator can rule the crypto layer out (or in) when session establishment
// against a BMC is failing.
package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin"

	"github.com/kuiwang02/lanplus"
	"github.com/kuiwang02/lanplus/pkg/crypt"
	"github.com/kuiwang02/lanplus/pkg/crypt/insecurerand"
	"github.com/kuiwang02/lanplus/pkg/ipmi"
)

var (
	verbose = kingpin.Flag("verbose", "Hex dump buffers as they pass through the cipher.").
		Short('v').
		Bool()
	seedBytes = kingpin.Flag("seed-bytes", "Entropy bytes to request when priming the source.").
			Default("16").
			Int()
	seedTimeout = kingpin.Flag("seed-timeout", "Give up priming the entropy source after this long.").
			Default("10s").
			Duration()
	insecureRand = kingpin.Flag("insecure-rand", "Use the deterministic test-only randomness source. Its output is predictable; never use outside protocol debugging.").
			Bool()
)

// the published HMAC-SHA1 vector for key "key" and the quick brown fox
// message
const hmacSHA1Reference = "de7c9b85b8b78aa6bc8a7a36f70a90701c9db4d9"

func main() {
	kingpin.Parse()
	if !run() {
		os.Exit(1)
	}
}

func run() bool {
	ok := true
	for _, check := range []struct {
		name string
		fn   func() error
	}{
		{"entropy", checkEntropy},
		{"auth code", checkAuthCode},
		{"cipher round trip", checkCipher},
		{"cipher alignment", checkAlignment},
	} {
		if err := check.fn(); err != nil {
			fmt.Printf("FAIL %v: %v\n", check.name, err)
			ok = false
			continue
		}
		fmt.Printf("PASS %v\n", check.name)
	}
	return ok
}

func source() crypt.Source {
	if *insecureRand {
		return insecurerand.Source{}
	}
	return crypt.OSSource{}
}

func checkEntropy() error {
	src := source()
	ctx, cancel := context.WithTimeout(context.Background(), *seedTimeout)
	defer cancel()
	if err := lanplus.SeedEntropy(ctx, src, *seedBytes); err != nil {
		return err
	}

	first := make([]byte, 32)
	second := make([]byte, 32)
	if err := lanplus.FillRandom(src, first); err != nil {
		return err
	}
	if err := lanplus.FillRandom(src, second); err != nil {
		return err
	}
	same := bytes.Equal(first, second)
	if *insecureRand && !same {
		return fmt.Errorf("deterministic source produced differing buffers")
	}
	if !*insecureRand && same {
		return fmt.Errorf("two random fills produced identical buffers")
	}
	return nil
}

func checkAuthCode() error {
	code, err := lanplus.AuthCode(
		ipmi.AuthenticationAlgorithmHMACSHA1,
		[]byte("key"),
		[]byte("The quick brown fox jumps over the lazy dog"))
	if err != nil {
		return err
	}
	if got := hex.EncodeToString(code); got != hmacSHA1Reference {
		return fmt.Errorf("got %v, want %v", got, hmacSHA1Reference)
	}
	return nil
}

func checkCipher() error {
	var diag crypt.Diag
	if *verbose {
		diag = crypt.WriterDiag(os.Stdout)
	}

	iv := make([]byte, crypt.BlockSize)
	key := make([]byte, crypt.BlockSize)
	plaintext := bytes.Repeat([]byte{0x41}, crypt.BlockSize)

	ciphertext := make([]byte, len(plaintext))
	n, err := lanplus.Encrypt(iv, key, plaintext, ciphertext, diag)
	if err != nil {
		return err
	}
	if n != len(plaintext) {
		return fmt.Errorf("encrypt wrote %v bytes, want %v", n, len(plaintext))
	}

	recovered := make([]byte, n)
	n, err = lanplus.Decrypt(iv, key, ciphertext, recovered, diag)
	if err != nil {
		return err
	}
	if n != len(plaintext) || !bytes.Equal(recovered, plaintext) {
		return fmt.Errorf("round trip did not recover the plaintext")
	}
	return nil
}

func checkAlignment() error {
	iv := make([]byte, crypt.BlockSize)
	key := make([]byte, crypt.BlockSize)
	for _, length := range []int{15, 17} {
		input := make([]byte, length)
		output := make([]byte, length+crypt.BlockSize)
		if _, err := lanplus.Encrypt(iv, key, input, output, nil); err == nil {
			return fmt.Errorf("%v-byte input was not rejected", length)
		}
	}
	return nil
}
