package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizes(t *testing.T) {
	cases := []struct {
		k      int
		ek, dk int
	}{
		{2, 800, 1632},
		{3, 1184, 2400},
		{4, 1568, 3168},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ek, EncapsKeySize(tc.k), "ek size for k=%d", tc.k)
		assert.Equal(t, tc.dk, DecapsKeySize(tc.k), "dk size for k=%d", tc.k)
	}
}

func TestCheckModulus(t *testing.T) {
	const k = 2

	t.Run("all zero is canonical", func(t *testing.T) {
		ek := make([]byte, EncapsKeySize(k))
		assert.True(t, CheckModulus(ek, k))
	})

	t.Run("all 0xff is rejected", func(t *testing.T) {
		ek := bytes.Repeat([]byte{0xff}, EncapsKeySize(k))
		assert.False(t, CheckModulus(ek, k))
	})

	t.Run("rho is not checked", func(t *testing.T) {
		ek := make([]byte, EncapsKeySize(k))
		for i := PolyBytes * k; i < len(ek); i++ {
			ek[i] = 0xff
		}
		assert.True(t, CheckModulus(ek, k))
	})

	t.Run("low coefficient boundary", func(t *testing.T) {
		ek := make([]byte, EncapsKeySize(k))
		// a = 0xd00 = 3328
		ek[0], ek[1] = 0x00, 0x0d
		assert.True(t, CheckModulus(ek, k))
		// a = 0xd01 = 3329
		ek[0] = 0x01
		assert.False(t, CheckModulus(ek, k))
	})

	t.Run("high coefficient boundary", func(t *testing.T) {
		ek := make([]byte, EncapsKeySize(k))
		// b = 0xd00 = 3328
		ek[1], ek[2] = 0x00, 0xd0
		assert.True(t, CheckModulus(ek, k))
		// b = 0xd01 = 3329
		ek[1] = 0x10
		assert.False(t, CheckModulus(ek, k))
	})

	t.Run("last coefficient is scanned", func(t *testing.T) {
		ek := make([]byte, EncapsKeySize(k))
		ek[PolyBytes*k-1] = 0xff
		assert.False(t, CheckModulus(ek, k))
	})

	t.Run("wrong length", func(t *testing.T) {
		assert.False(t, CheckModulus(make([]byte, EncapsKeySize(k)-1), k))
		assert.False(t, CheckModulus(nil, k))
		assert.False(t, CheckModulus(make([]byte, EncapsKeySize(k)), 0))
	})
}

func TestSplitDecapsKey(t *testing.T) {
	for _, k := range []int{2, 3, 4} {
		dk := make([]byte, DecapsKeySize(k))
		for i := range dk {
			dk[i] = byte(i)
		}
		parts, ok := SplitDecapsKey(dk, k)
		require.True(t, ok)
		assert.Len(t, parts.PKE, PolyBytes*k)
		assert.Len(t, parts.EK, EncapsKeySize(k))
		assert.Len(t, parts.Hash, SeedSize)
		assert.Len(t, parts.Z, SeedSize)
		assert.Equal(t, dk[PolyBytes*k], parts.EK[0])
		assert.Equal(t, dk[len(dk)-1], parts.Z[SeedSize-1])

		_, ok = SplitDecapsKey(dk[1:], k)
		assert.False(t, ok)
	}
}

func TestCheckDecapsKey(t *testing.T) {
	const k = 3

	build := func() []byte {
		dk := make([]byte, DecapsKeySize(k))
		parts, _ := SplitDecapsKey(dk, k)
		h := H(parts.EK)
		copy(parts.Hash, h[:])
		return dk
	}

	t.Run("consistent hash", func(t *testing.T) {
		assert.True(t, CheckDecapsKey(build(), k))
	})

	t.Run("wrong hash", func(t *testing.T) {
		dk := build()
		parts, _ := SplitDecapsKey(dk, k)
		parts.Hash[0] ^= 1
		assert.False(t, CheckDecapsKey(dk, k))
	})

	t.Run("embedded key fails modulus check", func(t *testing.T) {
		dk := build()
		parts, _ := SplitDecapsKey(dk, k)
		parts.EK[0], parts.EK[1] = 0xff, 0xff
		h := H(parts.EK)
		copy(parts.Hash, h[:])
		assert.False(t, CheckDecapsKey(dk, k))
	})

	t.Run("all 0xff", func(t *testing.T) {
		assert.False(t, CheckDecapsKey(bytes.Repeat([]byte{0xff}, DecapsKeySize(k)), k))
	})
}
