package backend

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem512"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

const (
	// KeySeedSize is the size of d || z.
	KeySeedSize = 64
	// MessageSize is the size of the encapsulation message m.
	MessageSize = 32
	// SharedSecretSize is the same for every parameter set.
	SharedSecretSize = 32
)

var (
	// ErrUnknownParams is returned by Lookup for an unsupported security level.
	ErrUnknownParams = errors.New("backend: unknown parameter set")
	// ErrBufferSize reports a caller buffer of the wrong length.
	ErrBufferSize = errors.New("backend: buffer size mismatch")
	// ErrInvalidKey reports a key the lattice implementation refused to load.
	ErrInvalidKey = errors.New("backend: invalid key")
	// ErrOperation reports any other failure inside the lattice implementation.
	ErrOperation = errors.New("backend: operation failed")
)

// Params binds one ML-KEM parameter set to its circl scheme.
type Params struct {
	Name           string
	K              int
	EncapsKeySize  int
	DecapsKeySize  int
	CiphertextSize int

	scheme kem.Scheme
}

// Lookup returns the parameters for ML-KEM-512, -768 or -1024.
func Lookup(level int) (Params, error) {
	switch level {
	case 512:
		return newParams("ML-KEM-512", 2, mlkem512.Scheme()), nil
	case 768:
		return newParams("ML-KEM-768", 3, mlkem768.Scheme()), nil
	case 1024:
		return newParams("ML-KEM-1024", 4, mlkem1024.Scheme()), nil
	default:
		return Params{}, fmt.Errorf("%w: %d", ErrUnknownParams, level)
	}
}

func newParams(name string, k int, s kem.Scheme) Params {
	return Params{
		Name:           name,
		K:              k,
		EncapsKeySize:  s.PublicKeySize(),
		DecapsKeySize:  s.PrivateKeySize(),
		CiphertextSize: s.CiphertextSize(),
		scheme:         s,
	}
}

// KeyGen runs ML-KEM.KeyGen_internal(d, z) where seed = d || z, writing the
// serialized keys into ek and dk. Nothing is written on failure.
func (p Params) KeyGen(seed, ek, dk []byte) error {
	if len(seed) != KeySeedSize || len(ek) != p.EncapsKeySize || len(dk) != p.DecapsKeySize {
		return ErrBufferSize
	}
	if p.scheme.SeedSize() != KeySeedSize {
		return fmt.Errorf("%w: unexpected seed size %d", ErrOperation, p.scheme.SeedSize())
	}
	pk, sk := p.scheme.DeriveKeyPair(seed)
	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: marshal encapsulation key: %v", ErrOperation, err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: marshal decapsulation key: %v", ErrOperation, err)
	}
	defer zeroize(skBytes)
	if len(pkBytes) != len(ek) || len(skBytes) != len(dk) {
		return fmt.Errorf("%w: marshalled key size", ErrOperation)
	}
	copy(ek, pkBytes)
	copy(dk, skBytes)
	return nil
}

// Encaps runs ML-KEM.Encaps_internal(ek, m) and writes the ciphertext and
// shared secret. Nothing is written on failure.
func (p Params) Encaps(ek, m, ct, ss []byte) error {
	if len(ek) != p.EncapsKeySize || len(m) != MessageSize ||
		len(ct) != p.CiphertextSize || len(ss) != SharedSecretSize {
		return ErrBufferSize
	}
	if p.scheme.EncapsulationSeedSize() != MessageSize {
		return fmt.Errorf("%w: unexpected message size %d", ErrOperation, p.scheme.EncapsulationSeedSize())
	}
	pk, err := p.scheme.UnmarshalBinaryPublicKey(ek)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	c, k, err := p.scheme.EncapsulateDeterministically(pk, m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOperation, err)
	}
	defer zeroize(k)
	if len(c) != len(ct) || len(k) != len(ss) {
		return fmt.Errorf("%w: encapsulation output size", ErrOperation)
	}
	copy(ct, c)
	copy(ss, k)
	return nil
}

// Decaps runs ML-KEM.Decaps_internal(dk, c). Tampered ciphertexts produce the
// implicit-rejection key rather than an error.
func (p Params) Decaps(dk, ct, ss []byte) error {
	if len(dk) != p.DecapsKeySize || len(ct) != p.CiphertextSize || len(ss) != SharedSecretSize {
		return ErrBufferSize
	}
	sk, err := p.scheme.UnmarshalBinaryPrivateKey(dk)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	k, err := p.scheme.Decapsulate(sk, ct)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOperation, err)
	}
	defer zeroize(k)
	if len(k) != len(ss) {
		return fmt.Errorf("%w: shared secret size", ErrOperation)
	}
	copy(ss, k)
	return nil
}

// Version returns the circl module version linked into the binary, or empty
// if build information is unavailable.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range info.Deps {
		if dep.Path == "github.com/cloudflare/circl" {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return ""
}

// zeroize clears temporaries copied out of circl. It mirrors
// mlkem.ZeroizeBytes, which this package cannot import.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(b)
}
