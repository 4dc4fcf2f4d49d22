package mlkem

import "io"

// Keygen1024 generates a fresh ML-KEM-1024 key pair.
func Keygen1024(ek *EncapsKey1024, dk *DecapsKey1024) error {
	return KeygenWithRand1024(nil, ek, dk)
}

// KeygenWithRand1024 generates a key pair using rand (crypto/rand if nil).
func KeygenWithRand1024(rand io.Reader, ek *EncapsKey1024, dk *DecapsKey1024) error {
	if ek == nil || dk == nil {
		return ErrNullPointer
	}
	return keygen(mustBackend(MLKEM1024), rand, ek[:], dk[:])
}

// KeygenFromSeed1024 derives the key pair for seeds d and z.
func KeygenFromSeed1024(d, z *[SeedSize]byte, ek *EncapsKey1024, dk *DecapsKey1024) error {
	if d == nil || z == nil || ek == nil || dk == nil {
		return ErrNullPointer
	}
	return keygenFromSeed(mustBackend(MLKEM1024), d, z, ek[:], dk[:])
}

// Encaps1024 encapsulates a fresh shared secret to ek.
func Encaps1024(ek *EncapsKey1024, ct *Ciphertext1024, ss *SharedSecret) error {
	return EncapsWithRand1024(nil, ek, ct, ss)
}

// EncapsWithRand1024 encapsulates using rand (crypto/rand if nil).
func EncapsWithRand1024(rand io.Reader, ek *EncapsKey1024, ct *Ciphertext1024, ss *SharedSecret) error {
	if ek == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return encaps(mustBackend(MLKEM1024), rand, ek[:], ct[:], ss[:])
}

// EncapsDerand1024 encapsulates the fixed message m. Test use only.
func EncapsDerand1024(ek *EncapsKey1024, m *[SeedSize]byte, ct *Ciphertext1024, ss *SharedSecret) error {
	if ek == nil || m == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return encapsDerand(mustBackend(MLKEM1024), ek[:], m, ct[:], ss[:])
}

// Decaps1024 recovers the shared secret for ct under dk.
func Decaps1024(dk *DecapsKey1024, ct *Ciphertext1024, ss *SharedSecret) error {
	if dk == nil || ct == nil || ss == nil {
		return ErrNullPointer
	}
	return decaps(mustBackend(MLKEM1024), dk[:], ct[:], ss[:])
}

// ValidateKeypair1024 reports whether ek and dk belong together. Variable time.
func ValidateKeypair1024(ek *EncapsKey1024, dk *DecapsKey1024) bool {
	if ek == nil || dk == nil {
		return false
	}
	return validateKeypair(mustBackend(MLKEM1024), ek[:], dk[:])
}

// DerivePub1024 extracts the encapsulation key from a validated dk.
func DerivePub1024(dk *DecapsKey1024, ek *EncapsKey1024) error {
	if dk == nil || ek == nil {
		return ErrNullPointer
	}
	return derivePub(mustBackend(MLKEM1024), dk[:], ek[:])
}
