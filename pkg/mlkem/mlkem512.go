package mlkem

import "io"

// Keygen512 generates a fresh ML-KEM-512 key pair.
func Keygen512(ek *EncapsKey512, dk *DecapsKey512) error {
	return KeygenWithRand512(nil, ek, dk)
}

// KeygenWithRand512 generates a key pair using rand (crypto/rand if nil).
func KeygenWithRand512(rand io.Reader, ek *EncapsKey512, dk *DecapsKey512) error {
	if ek == nil || dk == nil {
		return ErrNullPointer
	}
	return keygen(mustBackend(MLKEM512), rand, ek[:], dk[:])
}

// KeygenFromSeed512 derives the key pair for seeds d and z.
func KeygenFromSeed512(d, z *[SeedSize]byte, ek *EncapsKey512, dk *DecapsKey512) error {
	if d == nil || z == nil || ek == nil || dk == nil {
		return ErrNullPointer
	}
	return keygenFromSeed(mustBackend(MLKEM512), d, z, ek[:], dk[:])
}

// Encaps512 encapsulates a fresh shared secret to ek.
func Encaps512(ek *EncapsKey512, ct *Ciphertext512, ss *SharedSecret) error {
	return EncapsWithRand512(nil, ek, ct, ss)
}

// EncapsWithRand512 encapsulates using rand (crypto/rand if nil).
func EncapsWithRand512(rand io.Reader, ek *EncapsKey512, ct *Ciphertext512, ss *SharedSecret) error {
	if ek == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return encaps(mustBackend(MLKEM512), rand, ek[:], ct[:], ss[:])
}

// EncapsDerand512 encapsulates the fixed message m. Test use only.
func EncapsDerand512(ek *EncapsKey512, m *[SeedSize]byte, ct *Ciphertext512, ss *SharedSecret) error {
	if ek == nil || m == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return encapsDerand(mustBackend(MLKEM512), ek[:], m, ct[:], ss[:])
}

// Decaps512 recovers the shared secret for ct under dk.
func Decaps512(dk *DecapsKey512, ct *Ciphertext512, ss *SharedSecret) error {
	if dk == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return decaps(mustBackend(MLKEM512), dk[:], ct[:], ss[:])
}

// ValidateKeypair512 reports whether ek and dk belong together. Variable time.
func ValidateKeypair512(ek *EncapsKey512, dk *DecapsKey512) bool {
	if ek == nil || dk == nil {
		return false
	}
	return validateKeypair(mustBackend(MLKEM512), ek[:], dk[:])
}

// DerivePub512 extracts the encapsulation key from a validated dk.
func DerivePub512(dk *DecapsKey512, ek *EncapsKey512) error {
	if dk == nil || ek == nil {
		return ErrNullPointer
	}
	return derivePub(mustBackend(MLKEM512), dk[:], ek[:])
}
