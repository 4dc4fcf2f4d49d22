package mlkem

import "crypto/subtle"

// Serialized sizes mandated by FIPS 203.
const (
	EncapsKeySize512  = 800
	DecapsKeySize512  = 1632
	CiphertextSize512 = 768

	EncapsKeySize768  = 1184
	DecapsKeySize768  = 2400
	CiphertextSize768 = 1088

	EncapsKeySize1024  = 1568
	DecapsKeySize1024  = 3168
	CiphertextSize1024 = 1568

	SharedSecretSize = 32

	// SeedSize is the size of each of the keygen seeds d and z and of the
	// encapsulation message m.
	SeedSize = 32
)

// SharedSecret is the 32-byte key agreed by Encaps and Decaps at every level.
type SharedSecret [SharedSecretSize]byte

type (
	EncapsKey512  [EncapsKeySize512]byte
	DecapsKey512  [DecapsKeySize512]byte
	Ciphertext512 [CiphertextSize512]byte

	EncapsKey768  [EncapsKeySize768]byte
	DecapsKey768  [DecapsKeySize768]byte
	Ciphertext768 [CiphertextSize768]byte

	EncapsKey1024  [EncapsKeySize1024]byte
	DecapsKey1024  [DecapsKeySize1024]byte
	Ciphertext1024 [CiphertextSize1024]byte
)

// Equal reports whether s and o hold the same secret, in constant time. A nil
// operand never matches.
func (s *SharedSecret) Equal(o *SharedSecret) bool {
	if s == nil || o == nil {
		return false
	}
	return subtle.ConstantTimeCompare(s[:], o[:]) == 1
}

// Zeroize overwrites the secret.
func (s *SharedSecret) Zeroize() {
	if s != nil {
		ZeroizeBytes(s[:])
	}
}

// Zeroize overwrites the key.
func (dk *DecapsKey512) Zeroize() {
	if dk != nil {
		ZeroizeBytes(dk[:])
	}
}

// Zeroize overwrites the key.
func (dk *DecapsKey768) Zeroize() {
	if dk != nil {
		ZeroizeBytes(dk[:])
	}
}

// Zeroize overwrites the key.
func (dk *DecapsKey1024) Zeroize() {
	if dk != nil {
		ZeroizeBytes(dk[:])
	}
}
