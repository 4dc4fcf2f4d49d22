package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem"
	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/logging"
)

const stateKey = "mlkem-state"

// state is resolved once in Before and shared by every command.
type state struct {
	set mlkem.ParameterSet
	// explicit is true when --level was given on the command line.
	explicit bool
	log      logging.Logger
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "mlkem-go",
		Usage:     "ML-KEM (FIPS 203) key encapsulation",
		Version:   mlkem.WrapperVersion(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "parameter set: 512, 768 or 1024"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file (must be inside the working directory)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json"},
		},
		Before: func(c *cli.Context) error {
			st, err := resolveState(c, stderr)
			if err != nil {
				return err
			}
			c.App.Metadata = map[string]interface{}{stateKey: st}
			return nil
		},
		Commands: []*cli.Command{
			keygenCommand(),
			encapsCommand(),
			decapsCommand(),
			derivePubCommand(),
			validateCommand(),
			selftestCommand(),
			versionCommand(),
		},
		HideVersion: true,
	}
}

func resolveState(c *cli.Context, logOut io.Writer) (*state, error) {
	cfg := defaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}
	if c.IsSet("level") {
		cfg.Level = c.String("level")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	set, err := mlkem.ParseParameterSet(cfg.Level)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}
	log.Debug(context.Background(), "configuration resolved",
		"parameter_set", set.String(), "log_format", cfg.Log.Format)
	return &state{set: set, explicit: c.IsSet("level"), log: log}, nil
}

func stateFrom(c *cli.Context) *state {
	return c.App.Metadata[stateKey].(*state)
}

func (s *state) kem(set mlkem.ParameterSet) (*mlkem.KEM, error) {
	return mlkem.New(set, mlkem.Config{Logger: s.log})
}

// withStatus prefixes err with its status name so shell users see the same
// vocabulary as the library.
func withStatus(err error) error {
	if err == nil {
		return nil
	}
	if st, ok := mlkem.StatusOf(err); ok {
		return fmt.Errorf("%s: %w", st, err)
	}
	return err
}
