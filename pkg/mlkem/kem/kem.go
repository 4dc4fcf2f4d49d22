package kem

// KEM is the interface for Key Encapsulation Mechanisms over serialized keys.
type KEM interface {
	// Generate returns a fresh encapsulation key and decapsulation key.
	Generate() (ek, dk []byte, err error)

	// Encapsulate generates a ciphertext and shared secret for ek.
	Encapsulate(ek []byte) (ct, ss []byte, err error)

	// Decapsulate recovers the shared secret from ct using dk.
	Decapsulate(dk, ct []byte) (ss []byte, err error)

	// DerivePub returns the encapsulation key that belongs to dk.
	DerivePub(dk []byte) ([]byte, error)
}
