package mlkem_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem"
)

// Fuzz inputs are XOR masks over a fixed valid key pair and ciphertext, so
// the fuzzer explores inputs near well-formed ones instead of random noise.
// Structural corruption may only ever surface as DeserializationError.

func FuzzEncaps512(f *testing.F)  { fuzzEncaps(f, suite512()) }
func FuzzEncaps768(f *testing.F)  { fuzzEncaps(f, suite768()) }
func FuzzEncaps1024(f *testing.F) { fuzzEncaps(f, suite1024()) }

func FuzzDecaps512(f *testing.F)  { fuzzDecaps(f, suite512()) }
func FuzzDecaps768(f *testing.F)  { fuzzDecaps(f, suite768()) }
func FuzzDecaps1024(f *testing.F) { fuzzDecaps(f, suite1024()) }

type fuzzFixture[EK, DK, CT any] struct {
	ek EK
	dk DK
	ct CT
	ss mlkem.SharedSecret
}

func newFuzzFixture[EK, DK, CT any](f *testing.F, s levelSuite[EK, DK, CT]) *fuzzFixture[EK, DK, CT] {
	f.Helper()
	var d, z, m [mlkem.SeedSize]byte
	fill(d[:], 0x01)
	fill(z[:], 0x02)
	fill(m[:], 0x03)

	fx := &fuzzFixture[EK, DK, CT]{}
	require.NoError(f, s.keygenSeed(&d, &z, &fx.ek, &fx.dk))
	require.NoError(f, s.encapsDerand(&fx.ek, &m, &fx.ct, &fx.ss))
	return fx
}

// xorMask flips dst by mask over their common prefix and reports whether any
// bit changed.
func xorMask(dst, mask []byte) bool {
	changed := byte(0)
	for i := 0; i < len(dst) && i < len(mask); i++ {
		dst[i] ^= mask[i]
		changed |= mask[i]
	}
	return changed != 0
}

func requireStructuralStatus(t *testing.T, err error) mlkem.Status {
	t.Helper()
	st, ok := mlkem.StatusOf(err)
	require.True(t, ok, "unmapped error %v", err)
	require.Contains(t, []mlkem.Status{mlkem.StatusOK, mlkem.StatusDeserialization}, st, "error: %v", err)
	return st
}

func fuzzEncaps[EK, DK, CT any](f *testing.F, s levelSuite[EK, DK, CT]) {
	fx := newFuzzFixture(f, s)

	f.Add([]byte{})
	f.Add([]byte{0x01})
	f.Add([]byte{0x00, 0xf0})
	f.Add(bytes.Repeat([]byte{0xff}, s.ekSize))

	f.Fuzz(func(t *testing.T, mask []byte) {
		ek := fx.ek
		changed := xorMask(s.ekBytes(&ek), mask)

		var ct CT
		var ss mlkem.SharedSecret
		var m [mlkem.SeedSize]byte
		st := requireStructuralStatus(t, s.encapsDerand(&ek, &m, &ct, &ss))
		if !changed {
			require.Equal(t, mlkem.StatusOK, st)
		}

		var dk DK
		fill(s.dkBytes(&dk), 0xff)
		if s.validate(&ek, &fx.dk) && changed {
			t.Fatalf("modified encapsulation key validated against the original decapsulation key")
		}
		_ = s.validate(&ek, &dk)
	})
}

func fuzzDecaps[EK, DK, CT any](f *testing.F, s levelSuite[EK, DK, CT]) {
	fx := newFuzzFixture(f, s)

	f.Add([]byte{}, []byte{})
	f.Add([]byte{}, []byte{0x01})
	f.Add([]byte{0x01}, []byte{})
	f.Add(bytes.Repeat([]byte{0xff}, s.dkSize), bytes.Repeat([]byte{0xff}, s.ctSize))

	f.Fuzz(func(t *testing.T, dkMask, ctMask []byte) {
		dk := fx.dk
		dkChanged := xorMask(s.dkBytes(&dk), dkMask)
		ct := fx.ct
		ctChanged := xorMask(s.ctBytes(&ct), ctMask)

		var ss mlkem.SharedSecret
		st := requireStructuralStatus(t, s.decaps(&dk, &ct, &ss))
		if !dkChanged {
			// Ciphertexts are never rejected.
			require.Equal(t, mlkem.StatusOK, st)
			require.Equal(t, !ctChanged, ss.Equal(&fx.ss))
		}

		var pub EK
		requireStructuralStatus(t, s.derivePub(&dk, &pub))
		_ = s.validate(&fx.ek, &dk)
	})
}
