package encoding

import (
	"crypto/subtle"

	"golang.org/x/crypto/sha3"
)

const (
	// Q is the ML-KEM prime modulus.
	Q = 3329

	// PolyBytes is the size of one ByteEncode12 polynomial.
	PolyBytes = 384

	// SeedSize is the size of rho, z, d, m and H outputs.
	SeedSize = 32
)

// EncapsKeySize returns the serialized encapsulation key size for rank k.
func EncapsKeySize(k int) int { return PolyBytes*k + SeedSize }

// DecapsKeySize returns the serialized decapsulation key size for rank k.
func DecapsKeySize(k int) int { return 2*PolyBytes*k + 3*SeedSize }

// H is the SHA3-256 hash used to bind a decapsulation key to its
// encapsulation key.
func H(b []byte) [SeedSize]byte { return sha3.Sum256(b) }

// CheckModulus reports whether the t-hat vector of ek decodes to coefficients
// that are all strictly less than Q, i.e. ByteEncode12(ByteDecode12(t)) == t.
// The scan does not exit early.
func CheckModulus(ek []byte, k int) bool {
	if k <= 0 || len(ek) != EncapsKeySize(k) {
		return false
	}
	ok := uint32(1)
	for i := 0; i < PolyBytes*k; i += 3 {
		a := uint32(ek[i]) | uint32(ek[i+1]&0x0f)<<8
		b := uint32(ek[i+1])>>4 | uint32(ek[i+2])<<4
		// (x - Q) wraps and sets the top bit exactly when x < Q.
		ok &= (a - Q) >> 31
		ok &= (b - Q) >> 31
	}
	return ok == 1
}

// DecapsKey is a view over the four regions of a serialized decapsulation
// key: dk_PKE || ek || H(ek) || z. The slices alias the input.
type DecapsKey struct {
	PKE  []byte
	EK   []byte
	Hash []byte
	Z    []byte
}

// SplitDecapsKey slices dk into its regions. It returns false when dk has the
// wrong length for rank k.
func SplitDecapsKey(dk []byte, k int) (DecapsKey, bool) {
	if k <= 0 || len(dk) != DecapsKeySize(k) {
		return DecapsKey{}, false
	}
	pke := PolyBytes * k
	ekEnd := pke + EncapsKeySize(k)
	return DecapsKey{
		PKE:  dk[:pke:pke],
		EK:   dk[pke:ekEnd:ekEnd],
		Hash: dk[ekEnd : ekEnd+SeedSize : ekEnd+SeedSize],
		Z:    dk[ekEnd+SeedSize:],
	}, true
}

// CheckDecapsKey runs the decapsulation input check: the embedded
// encapsulation key must pass CheckModulus and the stored hash must equal
// H(ek). The hash comparison is constant time.
func CheckDecapsKey(dk []byte, k int) bool {
	parts, ok := SplitDecapsKey(dk, k)
	if !ok {
		return false
	}
	modOK := CheckModulus(parts.EK, k)
	h := H(parts.EK)
	hashOK := subtle.ConstantTimeCompare(h[:], parts.Hash) == 1
	return modOK && hashOK
}
