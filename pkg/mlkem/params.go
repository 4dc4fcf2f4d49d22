package mlkem

import (
	"fmt"
	"strings"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/internal/backend"
)

// ParameterSet selects one of the three ML-KEM security levels.
type ParameterSet int

const (
	MLKEM512  ParameterSet = 512
	MLKEM768  ParameterSet = 768
	MLKEM1024 ParameterSet = 1024
)

// ParameterSets lists the supported parameter sets in ascending strength.
func ParameterSets() []ParameterSet {
	return []ParameterSet{MLKEM512, MLKEM768, MLKEM1024}
}

func (p ParameterSet) String() string {
	switch p {
	case MLKEM512, MLKEM768, MLKEM1024:
		return fmt.Sprintf("ML-KEM-%d", int(p))
	default:
		return fmt.Sprintf("ParameterSet(%d)", int(p))
	}
}

// Valid reports whether p is one of the supported parameter sets.
func (p ParameterSet) Valid() bool {
	return p == MLKEM512 || p == MLKEM768 || p == MLKEM1024
}

// EncapsKeySize returns the encapsulation key length, or 0 if p is invalid.
func (p ParameterSet) EncapsKeySize() int {
	bp, err := p.backend()
	if err != nil {
		return 0
	}
	return bp.EncapsKeySize
}

// DecapsKeySize returns the decapsulation key length, or 0 if p is invalid.
func (p ParameterSet) DecapsKeySize() int {
	bp, err := p.backend()
	if err != nil {
		return 0
	}
	return bp.DecapsKeySize
}

// CiphertextSize returns the ciphertext length, or 0 if p is invalid.
func (p ParameterSet) CiphertextSize() int {
	bp, err := p.backend()
	if err != nil {
		return 0
	}
	return bp.CiphertextSize
}

// ParseParameterSet accepts "512", "ML-KEM-512", "mlkem512" and the
// equivalents for 768 and 1024, case-insensitively.
func ParseParameterSet(s string) (ParameterSet, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.TrimPrefix(norm, "ml-kem-")
	norm = strings.TrimPrefix(norm, "mlkem")
	norm = strings.TrimPrefix(norm, "-")
	switch norm {
	case "512":
		return MLKEM512, nil
	case "768":
		return MLKEM768, nil
	case "1024":
		return MLKEM1024, nil
	default:
		return 0, fmt.Errorf("mlkem: unknown parameter set %q", s)
	}
}

func (p ParameterSet) backend() (backend.Params, error) {
	return backend.Lookup(int(p))
}

// mustBackend is only used with the package's own constants.
func mustBackend(p ParameterSet) backend.Params {
	bp, err := backend.Lookup(int(p))
	if err != nil {
		panic(err)
	}
	return bp
}
