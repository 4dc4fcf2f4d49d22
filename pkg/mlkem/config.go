package mlkem

import (
	"io"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/logging"
)

// Config carries the optional collaborators of a KEM. The zero value is ready
// to use: randomness comes from crypto/rand and nothing is logged.
type Config struct {
	// Rand overrides the randomness source. Reads that fail or come up short
	// surface as ErrKeygen or ErrEncapsulation.
	Rand io.Reader

	// Logger receives one record per operation. Key material is never logged.
	Logger logging.Logger
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}
