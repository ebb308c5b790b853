// Package crypt contains the cryptographic primitives underpinning RMCP+
// session establishment and traffic: a randomness source for nonces and key
// material, keyed hashes for RAKP authentication codes and packet integrity,
// and the AES-128-CBC codec for payload confidentiality.
//
// Every operation here is a thin, precisely-contracted adapter over the
// standard library's primitives. Nothing is stateful across calls: each
// invocation acquires its own cipher context and releases it before
// returning, so distinct calls may run concurrently without coordination.
// Algorithm negotiation, padding policy and retry policy all belong to the
// caller.
package crypt
