package mlkem

import (
	"encoding/pem"
	"fmt"
	"strings"
)

// Kind identifies what an armored buffer contains.
type Kind uint8

const (
	KindEncapsKey Kind = iota + 1
	KindDecapsKey
	KindCiphertext
)

func (k Kind) String() string {
	switch k {
	case KindEncapsKey:
		return "ENCAPSULATION KEY"
	case KindDecapsKey:
		return "DECAPSULATION KEY"
	case KindCiphertext:
		return "CIPHERTEXT"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) size(set ParameterSet) int {
	switch k {
	case KindEncapsKey:
		return set.EncapsKeySize()
	case KindDecapsKey:
		return set.DecapsKeySize()
	case KindCiphertext:
		return set.CiphertextSize()
	default:
		return 0
	}
}

func blockType(set ParameterSet, k Kind) string {
	return set.String() + " " + k.String()
}

// Armor encodes buf as a PEM block whose type names the parameter set and
// kind, e.g. "ML-KEM-768 ENCAPSULATION KEY". It returns ErrSerialization when
// buf does not have the exact length for that kind and parameter set.
func Armor(set ParameterSet, k Kind, buf []byte) ([]byte, error) {
	want := k.size(set)
	if want == 0 {
		return nil, fmt.Errorf("%w: cannot armor %s for %s", ErrSerialization, k, set)
	}
	if len(buf) != want {
		return nil, fmt.Errorf("%w: %s %s is %d bytes, want %d", ErrSerialization, set, k, len(buf), want)
	}
	return pem.EncodeToMemory(&pem.Block{Type: blockType(set, k), Bytes: buf}), nil
}

// Dearmor decodes the first PEM block in data and checks that it holds a
// buffer of the expected parameter set and kind. Missing blocks, unexpected
// types and wrong lengths are ErrDeserialization.
func Dearmor(set ParameterSet, k Kind, data []byte) ([]byte, error) {
	gotSet, gotKind, buf, err := DearmorAny(data)
	if err != nil {
		return nil, err
	}
	if gotSet != set || gotKind != k {
		return nil, fmt.Errorf("%w: found %s, want %s", ErrDeserialization,
			blockType(gotSet, gotKind), blockType(set, k))
	}
	return buf, nil
}

// DearmorAny decodes the first PEM block in data and reports which parameter
// set and kind it holds.
func DearmorAny(data []byte) (ParameterSet, Kind, []byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return 0, 0, nil, fmt.Errorf("%w: no PEM block found", ErrDeserialization)
	}
	set, k, ok := parseBlockType(block.Type)
	if !ok {
		return 0, 0, nil, fmt.Errorf("%w: unexpected PEM block %q", ErrDeserialization, block.Type)
	}
	if want := k.size(set); len(block.Bytes) != want {
		return 0, 0, nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrDeserialization,
			block.Type, len(block.Bytes), want)
	}
	return set, k, block.Bytes, nil
}

func parseBlockType(t string) (ParameterSet, Kind, bool) {
	name, rest, found := strings.Cut(t, " ")
	if !found {
		return 0, 0, false
	}
	set, err := ParseParameterSet(name)
	if err != nil {
		return 0, 0, false
	}
	for _, k := range []Kind{KindEncapsKey, KindDecapsKey, KindCiphertext} {
		if rest == k.String() {
			return set, k, true
		}
	}
	return 0, 0, false
}
