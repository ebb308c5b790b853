// Package ipmi contains the IPMI v2.0 vocabulary needed by the RMCP+ session
// cryptography: the 6-bit algorithm identifiers negotiated during session
// establishment, common cipher suites, and the AES-128-CBC confidentiality
// payload layer. It deliberately contains no protocol message types - framing
// and RAKP orchestration belong to the session layer.
package ipmi
