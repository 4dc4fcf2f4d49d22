// Package mlkem exposes the ML-KEM key-encapsulation mechanism (FIPS 203) at
// the three standard security levels behind a small, strictly validated
// surface.
//
// Every parameter set has three operations over fixed-size byte arrays:
//
//	var ek mlkem.EncapsKey768
//	var dk mlkem.DecapsKey768
//	if err := mlkem.Keygen768(&ek, &dk); err != nil { ... }
//
//	var ct mlkem.Ciphertext768
//	var ssA, ssB mlkem.SharedSecret
//	if err := mlkem.Encaps768(&ek, &ct, &ssA); err != nil { ... }
//	if err := mlkem.Decaps768(&dk, &ct, &ssB); err != nil { ... }
//
// The caller owns every buffer. The package keeps no state between calls and
// all functions are safe for concurrent use with independent buffers.
//
// # Errors
//
// Each failure is reported as one of a closed set of sentinel errors, which
// StatusOf maps onto the numeric status codes of the C interface:
//
//   - ErrNullPointer: a required buffer pointer was nil. Checked first.
//   - ErrDeserialization: a key failed the FIPS 203 input checks.
//   - ErrKeygen, ErrEncapsulation, ErrDecapsulation: the randomness source or
//     the lattice backend failed.
//   - ErrSerialization: a buffer could not be armored for its declared kind.
//
// Output buffers are only meaningful when the returned error is nil.
//
// # Implicit rejection
//
// Decapsulating a modified ciphertext is not an error. It yields a
// pseudorandom shared secret unrelated to the sender's, as FIPS 203 requires.
//
// # Side channels
//
// Operations on secret data rely on the constant-time lattice backend. The
// checks in this package that touch secrets compare with crypto/subtle.
// Timing behaviour is exercised statistically by the internalcheck package
// under the timing build tag; it cannot be proven by unit tests.
package mlkem
