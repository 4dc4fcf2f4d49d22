package mlkem

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/internal/backend"
	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/internal/encoding"
)

// The helpers below operate on slices that the typed entry points have
// already checked for nil and sized exactly. They validate serialized input,
// draw randomness and remap backend failures onto the package sentinels.

func randOrDefault(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

func keygen(p backend.Params, r io.Reader, ek, dk []byte) error {
	var seed [backend.KeySeedSize]byte
	defer ZeroizeBytes(seed[:])

	if _, err := io.ReadFull(randOrDefault(r), seed[:]); err != nil {
		return fmt.Errorf("%w: read randomness: %v", ErrKeygen, err)
	}
	return keygenSeed(p, seed[:], ek, dk)
}

func keygenFromSeed(p backend.Params, d, z *[SeedSize]byte, ek, dk []byte) error {
	var seed [backend.KeySeedSize]byte
	defer ZeroizeBytes(seed[:])

	copy(seed[:SeedSize], d[:])
	copy(seed[SeedSize:], z[:])
	return keygenSeed(p, seed[:], ek, dk)
}

func keygenSeed(p backend.Params, seed, ek, dk []byte) error {
	if err := p.KeyGen(seed, ek, dk); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrKeygen, p.Name, err)
	}
	return nil
}

func checkEncapsKey(p backend.Params, ek []byte) error {
	if !encoding.CheckModulus(ek, p.K) {
		return fmt.Errorf("%w: %s encapsulation key is not canonical modulo q", ErrDeserialization, p.Name)
	}
	return nil
}

func checkDecapsKey(p backend.Params, dk []byte) error {
	if !encoding.CheckDecapsKey(dk, p.K) {
		return fmt.Errorf("%w: %s decapsulation key failed the input check", ErrDeserialization, p.Name)
	}
	return nil
}

func encaps(p backend.Params, r io.Reader, ek, ct, ss []byte) error {
	if err := checkEncapsKey(p, ek); err != nil {
		return err
	}

	var m [backend.MessageSize]byte
	defer ZeroizeBytes(m[:])

	if _, err := io.ReadFull(randOrDefault(r), m[:]); err != nil {
		return fmt.Errorf("%w: read randomness: %v", ErrEncapsulation, err)
	}
	return encapsChecked(p, ek, m[:], ct, ss)
}

func encapsDerand(p backend.Params, ek []byte, m *[SeedSize]byte, ct, ss []byte) error {
	if err := checkEncapsKey(p, ek); err != nil {
		return err
	}
	return encapsChecked(p, ek, m[:], ct, ss)
}

func encapsChecked(p backend.Params, ek, m, ct, ss []byte) error {
	if err := p.Encaps(ek, m, ct, ss); err != nil {
		if errors.Is(err, backend.ErrInvalidKey) {
			return fmt.Errorf("%w: %s: %v", ErrDeserialization, p.Name, err)
		}
		return fmt.Errorf("%w: %s: %v", ErrEncapsulation, p.Name, err)
	}
	return nil
}

func decaps(p backend.Params, dk, ct, ss []byte) error {
	if err := checkDecapsKey(p, dk); err != nil {
		return err
	}
	if err := p.Decaps(dk, ct, ss); err != nil {
		if errors.Is(err, backend.ErrInvalidKey) {
			return fmt.Errorf("%w: %s: %v", ErrDeserialization, p.Name, err)
		}
		return fmt.Errorf("%w: %s: %v", ErrDecapsulation, p.Name, err)
	}
	return nil
}

// validationMessage is the fixed encapsulation message used by keypair
// validation so that it needs no randomness source.
var validationMessage = [SeedSize]byte{
	0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
	0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
	0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
	0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
}

// validateKeypair checks that dk embeds ek and H(ek), that both keys pass
// their input checks, and that a fixed encapsulation round-trips. It runs in
// variable time.
func validateKeypair(p backend.Params, ek, dk []byte) bool {
	parts, ok := encoding.SplitDecapsKey(dk, p.K)
	if !ok || len(ek) != p.EncapsKeySize {
		return false
	}
	if subtle.ConstantTimeCompare(parts.EK, ek) != 1 {
		return false
	}
	if checkEncapsKey(p, ek) != nil || checkDecapsKey(p, dk) != nil {
		return false
	}

	m := validationMessage
	ct := make([]byte, p.CiphertextSize)
	var ssA, ssB SharedSecret
	defer ssA.Zeroize()
	defer ssB.Zeroize()

	if encapsChecked(p, ek, m[:], ct, ssA[:]) != nil {
		return false
	}
	if decaps(p, dk, ct, ssB[:]) != nil {
		return false
	}
	return ssA.Equal(&ssB)
}

// derivePub copies the encapsulation key embedded in a validated dk.
func derivePub(p backend.Params, dk, ek []byte) error {
	if err := checkDecapsKey(p, dk); err != nil {
		return err
	}
	parts, _ := encoding.SplitDecapsKey(dk, p.K)
	copy(ek, parts.EK)
	return nil
}
