// Package lanplus supplies the cryptography an RMCP+ (IPMI v2.0 "LAN+")
// session layer needs: entropy for nonces and key material, keyed hashes for
// RAKP authentication codes and packet integrity tags, AES-128-CBC payload
// confidentiality, and additional key material (K_N) derivation.
//
// This package is the instrumented surface the session layer imports; every
// operation counts its outcome in Prometheus and otherwise delegates to the
// pure primitives in pkg/crypt. It holds no session state and makes no
// algorithm choices - the caller passes in whatever was negotiated.
package lanplus
