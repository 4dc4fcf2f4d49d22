package main

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem"
)

// selftest runs a round trip, checks implicit rejection, and confirms that
// unreduced keys are refused.
func selftest(st *state, set mlkem.ParameterSet) error {
	k, err := st.kem(set)
	if err != nil {
		return err
	}

	ek, dk, err := k.Generate()
	if err != nil {
		return withStatus(err)
	}
	defer mlkem.ZeroizeBytes(dk)
	if !k.Validate(ek, dk) {
		return errors.New("fresh key pair failed validation")
	}

	ct, ssA, err := k.Encapsulate(ek)
	if err != nil {
		return withStatus(err)
	}
	ssB, err := k.Decapsulate(dk, ct)
	if err != nil {
		return withStatus(err)
	}
	if subtle.ConstantTimeCompare(ssA, ssB) != 1 {
		return errors.New("round trip produced different shared secrets")
	}

	ct[0] ^= 0x01
	ssC, err := k.Decapsulate(dk, ct)
	if err != nil {
		return fmt.Errorf("tampered ciphertext: %w", withStatus(err))
	}
	if subtle.ConstantTimeCompare(ssA, ssC) == 1 {
		return errors.New("tampered ciphertext recovered the shared secret")
	}

	ff := bytes.Repeat([]byte{0xff}, set.EncapsKeySize())
	if _, _, err := k.Encapsulate(ff); !errors.Is(err, mlkem.ErrDeserialization) {
		return fmt.Errorf("all-0xff encapsulation key: got %v, want %v", err, mlkem.ErrDeserialization)
	}
	ff = bytes.Repeat([]byte{0xff}, set.DecapsKeySize())
	if _, err := k.Decapsulate(ff, ct); !errors.Is(err, mlkem.ErrDeserialization) {
		return fmt.Errorf("all-0xff decapsulation key: got %v, want %v", err, mlkem.ErrDeserialization)
	}
	return nil
}
