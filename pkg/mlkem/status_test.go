package mlkem_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem"
)

func TestStatusValues(t *testing.T) {
	tests := []struct {
		status mlkem.Status
		value  uint8
		name   string
		err    error
	}{
		{mlkem.StatusOK, 0, "OK", nil},
		{mlkem.StatusNullPointer, 1, "NullPointerError", mlkem.ErrNullPointer},
		{mlkem.StatusSerialization, 2, "SerializationError", mlkem.ErrSerialization},
		{mlkem.StatusDeserialization, 3, "DeserializationError", mlkem.ErrDeserialization},
		{mlkem.StatusKeygen, 4, "KeygenError", mlkem.ErrKeygen},
		{mlkem.StatusEncapsulation, 5, "EncapsulationError", mlkem.ErrEncapsulation},
		{mlkem.StatusDecapsulation, 6, "DecapsulationError", mlkem.ErrDecapsulation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.value, uint8(tc.status))
			assert.Equal(t, tc.name, tc.status.String())
			assert.Equal(t, tc.err, tc.status.Err())

			got, ok := mlkem.StatusOf(tc.err)
			require.True(t, ok)
			assert.Equal(t, tc.status, got)

			if tc.err != nil {
				wrapped := fmt.Errorf("outer: %w", fmt.Errorf("%w: detail", tc.err))
				got, ok = mlkem.StatusOf(wrapped)
				require.True(t, ok)
				assert.Equal(t, tc.status, got)
			}
		})
	}
}

func TestStatusOfForeignError(t *testing.T) {
	s, ok := mlkem.StatusOf(errors.New("something else"))
	assert.False(t, ok)
	assert.NotEqual(t, mlkem.StatusOK, s)
	assert.Equal(t, "Status(255)", s.String())
	assert.Error(t, mlkem.Status(42).Err())
}
