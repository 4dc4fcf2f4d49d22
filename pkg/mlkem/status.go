package mlkem

import (
	"errors"
	"fmt"
)

// Status is the numeric result code shared by every operation and parameter
// set. The values match the C interface: zero is success and any other value
// is a failure.
type Status uint8

const (
	StatusOK Status = iota
	StatusNullPointer
	StatusSerialization
	StatusDeserialization
	StatusKeygen
	StatusEncapsulation
	StatusDecapsulation
)

var (
	// ErrNullPointer indicates a required buffer reference was absent.
	ErrNullPointer = errors.New("mlkem: null pointer")
	// ErrSerialization indicates a buffer could not be encoded.
	ErrSerialization = errors.New("mlkem: serialization error")
	// ErrDeserialization indicates a serialized key was structurally invalid.
	ErrDeserialization = errors.New("mlkem: deserialization error")
	// ErrKeygen indicates key generation failed inside the backend or while
	// reading randomness.
	ErrKeygen = errors.New("mlkem: key generation error")
	// ErrEncapsulation indicates encapsulation failed for a reason not
	// attributable to malformed input.
	ErrEncapsulation = errors.New("mlkem: encapsulation error")
	// ErrDecapsulation indicates decapsulation failed for a reason not
	// attributable to malformed input. A tampered ciphertext never causes it.
	ErrDecapsulation = errors.New("mlkem: decapsulation error")
)

// String returns the status name used by the C interface.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNullPointer:
		return "NullPointerError"
	case StatusSerialization:
		return "SerializationError"
	case StatusDeserialization:
		return "DeserializationError"
	case StatusKeygen:
		return "KeygenError"
	case StatusEncapsulation:
		return "EncapsulationError"
	case StatusDecapsulation:
		return "DecapsulationError"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Err returns the sentinel error for s, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusNullPointer:
		return ErrNullPointer
	case StatusSerialization:
		return ErrSerialization
	case StatusDeserialization:
		return ErrDeserialization
	case StatusKeygen:
		return ErrKeygen
	case StatusEncapsulation:
		return ErrEncapsulation
	case StatusDecapsulation:
		return ErrDecapsulation
	default:
		return fmt.Errorf("mlkem: unknown status %d", uint8(s))
	}
}

// StatusOf maps an error returned by this package to its Status. A nil error
// is StatusOK. The boolean is false for errors that do not wrap one of the
// package sentinels; the returned Status is then non-zero and has no name.
func StatusOf(err error) (Status, bool) {
	switch {
	case err == nil:
		return StatusOK, true
	case errors.Is(err, ErrNullPointer):
		return StatusNullPointer, true
	case errors.Is(err, ErrSerialization):
		return StatusSerialization, true
	case errors.Is(err, ErrDeserialization):
		return StatusDeserialization, true
	case errors.Is(err, ErrKeygen):
		return StatusKeygen, true
	case errors.Is(err, ErrEncapsulation):
		return StatusEncapsulation, true
	case errors.Is(err, ErrDecapsulation):
		return StatusDecapsulation, true
	default:
		return Status(^uint8(0)), false
	}
}
