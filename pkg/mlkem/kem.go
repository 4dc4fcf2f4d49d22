package mlkem

import (
	"context"
	"fmt"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/internal/backend"
	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/kem"
	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/logging"
)

var _ kem.KEM = (*KEM)(nil)

// KEM is the byte-slice form of one ML-KEM parameter set. It holds only
// immutable configuration and is safe for concurrent use as long as the
// configured Rand and Logger are.
//
// Nil slices are reported as ErrNullPointer and slices of the wrong length as
// ErrDeserialization. Returned slices are freshly allocated and owned by the
// caller.
type KEM struct {
	set    ParameterSet
	params backend.Params
	cfg    Config
	log    logging.Logger
}

// New returns a KEM for the given parameter set.
func New(set ParameterSet, cfg Config) (*KEM, error) {
	p, err := set.backend()
	if err != nil {
		return nil, fmt.Errorf("mlkem: %w", err)
	}
	return &KEM{
		set:    set,
		params: p,
		cfg:    cfg,
		log:    cfg.logger().With("parameter_set", set.String()),
	}, nil
}

// ParameterSet returns the security level of k.
func (k *KEM) ParameterSet() ParameterSet { return k.set }

// Generate returns a fresh key pair.
func (k *KEM) Generate() (ek, dk []byte, err error) {
	ek = make([]byte, k.params.EncapsKeySize)
	dk = make([]byte, k.params.DecapsKeySize)
	if err := keygen(k.params, k.cfg.Rand, ek, dk); err != nil {
		ZeroizeBytes(dk)
		return nil, nil, k.fail("generate", err)
	}
	k.log.Debug(context.Background(), "generated key pair", logging.Redacted("decapsulation_key"))
	return ek, dk, nil
}

// GenerateFromSeed derives the key pair for the 32-byte seeds d and z.
func (k *KEM) GenerateFromSeed(d, z []byte) (ek, dk []byte, err error) {
	if d == nil || z == nil {
		return nil, nil, k.fail("generate from seed", ErrNullPointer)
	}
	if len(d) != SeedSize || len(z) != SeedSize {
		return nil, nil, k.fail("generate from seed",
			fmt.Errorf("%w: seeds must be %d bytes", ErrKeygen, SeedSize))
	}
	var ds, zs [SeedSize]byte
	defer ZeroizeBytes(ds[:])
	defer ZeroizeBytes(zs[:])
	copy(ds[:], d)
	copy(zs[:], z)

	ek = make([]byte, k.params.EncapsKeySize)
	dk = make([]byte, k.params.DecapsKeySize)
	if err := keygenFromSeed(k.params, &ds, &zs, ek, dk); err != nil {
		ZeroizeBytes(dk)
		return nil, nil, k.fail("generate from seed", err)
	}
	k.log.Debug(context.Background(), "derived key pair from seed",
		logging.Redacted("seed"), logging.Redacted("decapsulation_key"))
	return ek, dk, nil
}

// Encapsulate generates a ciphertext and shared secret for ek.
func (k *KEM) Encapsulate(ek []byte) (ct, ss []byte, err error) {
	if err := k.checkLen("encapsulation key", ek, k.params.EncapsKeySize); err != nil {
		return nil, nil, k.fail("encapsulate", err)
	}
	ct = make([]byte, k.params.CiphertextSize)
	ss = make([]byte, SharedSecretSize)
	if err := encaps(k.params, k.cfg.Rand, ek, ct, ss); err != nil {
		ZeroizeBytes(ss)
		return nil, nil, k.fail("encapsulate", err)
	}
	k.log.Debug(context.Background(), "encapsulated", logging.Redacted("shared_secret"))
	return ct, ss, nil
}

// Decapsulate recovers the shared secret from ct using dk.
func (k *KEM) Decapsulate(dk, ct []byte) (ss []byte, err error) {
	if err := k.checkLen("decapsulation key", dk, k.params.DecapsKeySize); err != nil {
		return nil, k.fail("decapsulate", err)
	}
	if err := k.checkLen("ciphertext", ct, k.params.CiphertextSize); err != nil {
		return nil, k.fail("decapsulate", err)
	}
	ss = make([]byte, SharedSecretSize)
	if err := decaps(k.params, dk, ct, ss); err != nil {
		ZeroizeBytes(ss)
		return nil, k.fail("decapsulate", err)
	}
	k.log.Debug(context.Background(), "decapsulated", logging.Redacted("shared_secret"))
	return ss, nil
}

// DerivePub returns the encapsulation key embedded in dk.
func (k *KEM) DerivePub(dk []byte) ([]byte, error) {
	if err := k.checkLen("decapsulation key", dk, k.params.DecapsKeySize); err != nil {
		return nil, k.fail("derive public key", err)
	}
	ek := make([]byte, k.params.EncapsKeySize)
	if err := derivePub(k.params, dk, ek); err != nil {
		return nil, k.fail("derive public key", err)
	}
	return ek, nil
}

// Validate reports whether ek and dk form a consistent key pair. Variable
// time.
func (k *KEM) Validate(ek, dk []byte) bool {
	ok := validateKeypair(k.params, ek, dk)
	k.log.Debug(context.Background(), "validated key pair", "consistent", ok)
	return ok
}

func (k *KEM) checkLen(what string, b []byte, want int) error {
	if b == nil {
		return fmt.Errorf("%w: %s", ErrNullPointer, what)
	}
	if len(b) != want {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrDeserialization, what, len(b), want)
	}
	return nil
}

func (k *KEM) fail(op string, err error) error {
	status, _ := StatusOf(err)
	k.log.Warn(context.Background(), op+" failed", "status", status.String())
	return err
}
