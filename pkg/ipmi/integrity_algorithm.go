package ipmi

// IntegrityAlgorithm is the 6-bit identifier of the algorithm used to
// calculate the AuthCode signature in the session trailer of authenticated
// RMCP+ packets. The numbers are defined in 13.28.4 of the spec. The key for
// all algorithms is K1, derived from the SIK once the session is established.
type IntegrityAlgorithm uint8

const (
	// IntegrityAlgorithmNone means packets carry no AuthCode field. Support
	// for this algorithm is mandatory.
	IntegrityAlgorithmNone IntegrityAlgorithm = iota

	// IntegrityAlgorithmHMACSHA196 specifies HMAC-SHA1 (RFC2104), truncated
	// to the first 96 bits (RFC2404), giving a 12-byte AuthCode. The key is
	// the full 20-byte K1. Support for this algorithm is mandatory.
	IntegrityAlgorithmHMACSHA196

	// IntegrityAlgorithmHMACMD5128 specifies HMAC-MD5 with a 16-byte
	// AuthCode. This library does not implement it.
	IntegrityAlgorithmHMACMD5128

	// IntegrityAlgorithmMD5128 specifies plain MD5 over the password
	// concatenated around the packet, as in IPMI v1.5. This library does not
	// implement it.
	IntegrityAlgorithmMD5128

	// IntegrityAlgorithmHMACSHA256128 specifies HMAC-SHA256 truncated to the
	// first 128 bits (RFC4868). This library does not implement it.
	IntegrityAlgorithmHMACSHA256128
)

func (i IntegrityAlgorithm) String() string {
	switch i {
	case IntegrityAlgorithmNone:
		return "None"
	case IntegrityAlgorithmHMACSHA196:
		return "HMAC-SHA1-96"
	case IntegrityAlgorithmHMACMD5128:
		return "HMAC-MD5-128"
	case IntegrityAlgorithmMD5128:
		return "MD5-128"
	case IntegrityAlgorithmHMACSHA256128:
		return "HMAC-SHA256-128"
	}
	if i >= 0x30 && i <= 0x3f {
		return "OEM"
	}
	if i > 0x3f {
		return "Invalid"
	}
	return "Unknown"
}
