package mlkem

import "io"

// Keygen768 generates a fresh ML-KEM-768 key pair from crypto/rand and writes
// the serialized keys into ek and dk.
//
// It returns ErrNullPointer if either pointer is nil and ErrKeygen if the
// randomness source or the backend fails. Nothing is retained after return.
func Keygen768(ek *EncapsKey768, dk *DecapsKey768) error {
	return KeygenWithRand768(nil, ek, dk)
}

// KeygenWithRand768 is Keygen768 with a caller-supplied randomness source. A
// nil rand uses crypto/rand. Exactly 64 bytes are read.
func KeygenWithRand768(rand io.Reader, ek *EncapsKey768, dk *DecapsKey768) error {
	if ek == nil || dk == nil {
		return ErrNullPointer
	}
	return keygen(mustBackend(MLKEM768), rand, ek[:], dk[:])
}

// KeygenFromSeed768 runs ML-KEM.KeyGen_internal(d, z). The same seeds always
// produce the same key pair.
func KeygenFromSeed768(d, z *[SeedSize]byte, ek *EncapsKey768, dk *DecapsKey768) error {
	if d == nil || z == nil || ek == nil || dk == nil {
		return ErrNullPointer
	}
	return keygenFromSeed(mustBackend(MLKEM768), d, z, ek[:], dk[:])
}

// Encaps768 encapsulates a fresh shared secret to ek, writing the ciphertext
// into ct and the secret into ss.
//
// It returns ErrNullPointer if any pointer is nil, ErrDeserialization if ek
// fails the FIPS 203 modulus check, and ErrEncapsulation for randomness or
// backend failures.
func Encaps768(ek *EncapsKey768, ct *Ciphertext768, ss *SharedSecret) error {
	return EncapsWithRand768(nil, ek, ct, ss)
}

// EncapsWithRand768 is Encaps768 with a caller-supplied randomness source. A
// nil rand uses crypto/rand. Exactly 32 bytes are read.
func EncapsWithRand768(rand io.Reader, ek *EncapsKey768, ct *Ciphertext768, ss *SharedSecret) error {
	if ek == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return encaps(mustBackend(MLKEM768), rand, ek[:], ct[:], ss[:])
}

// EncapsDerand768 runs ML-KEM.Encaps_internal(ek, m). It is intended for
// known-answer tests; m must never be reused with real keys.
func EncapsDerand768(ek *EncapsKey768, m *[SeedSize]byte, ct *Ciphertext768, ss *SharedSecret) error {
	if ek == nil || m == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return encapsDerand(mustBackend(MLKEM768), ek[:], m, ct[:], ss[:])
}

// Decaps768 recovers the shared secret for ct under dk.
//
// It returns ErrNullPointer if any pointer is nil and ErrDeserialization if dk
// fails the FIPS 203 hash check. A modified ciphertext is not an error: the
// result is the implicit-rejection secret.
func Decaps768(dk *DecapsKey768, ct *Ciphertext768, ss *SharedSecret) error {
	if dk == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return decaps(mustBackend(MLKEM768), dk[:], ct[:], ss[:])
}

// ValidateKeypair768 reports whether ek and dk form a consistent ML-KEM-768
// key pair. It runs in variable time and should only be used on keys whose
// timing is not secret, such as freshly generated or imported ones.
func ValidateKeypair768(ek *EncapsKey768, dk *DecapsKey768) bool {
	if ek == nil || dk == nil {
		return false
	}
	return validateKeypair(mustBackend(MLKEM768), ek[:], dk[:])
}

// DerivePub768 writes the encapsulation key embedded in dk into ek after
// validating dk.
func DerivePub768(dk *DecapsKey768, ek *EncapsKey768) error {
	if dk == nil || ek == nil {
		return ErrNullPointer
	}
	return derivePub(mustBackend(MLKEM768), dk[:], ek[:])
}
