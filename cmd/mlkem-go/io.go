package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem"
)

type armored struct {
	kind mlkem.Kind
	buf  []byte
}

func writeArmored(c *cli.Context, set mlkem.ParameterSet, blocks []armored) error {
	for _, b := range blocks {
		out, err := mlkem.Armor(set, b.kind, b.buf)
		if err != nil {
			return withStatus(err)
		}
		if _, err := c.App.Writer.Write(out); err != nil {
			return fmt.Errorf("write %s: %w", b.kind, err)
		}
	}
	return nil
}

// readKind loads the first PEM block of path and checks its kind. The
// parameter set comes from the block type; an explicit --level must agree.
func (s *state) readKind(path string, kind mlkem.Kind) (mlkem.ParameterSet, []byte, error) {
	data, err := readFile(path)
	if err != nil {
		return 0, nil, err
	}
	set, got, buf, err := mlkem.DearmorAny(data)
	if err != nil {
		return 0, nil, withStatus(fmt.Errorf("%s: %w", path, err))
	}
	if got != kind {
		return 0, nil, withStatus(fmt.Errorf("%w: %s holds %s, want %s", mlkem.ErrDeserialization, path, got, kind))
	}
	if s.explicit && set != s.set {
		return 0, nil, withStatus(fmt.Errorf("%w: %s is %s but --level is %s", mlkem.ErrDeserialization, path, set, s.set))
	}
	return set, buf, nil
}
