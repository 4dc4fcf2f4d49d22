package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem"
)

func keygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "generate a key pair and print both keys as PEM",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seed", Usage: "64-byte hex seed d||z for deterministic generation"},
		},
		Action: func(c *cli.Context) error {
			st := stateFrom(c)
			k, err := st.kem(st.set)
			if err != nil {
				return err
			}

			var ek, dk []byte
			if seedHex := c.String("seed"); seedHex != "" {
				seed, err := hex.DecodeString(seedHex)
				if err != nil {
					return fmt.Errorf("--seed: %w", err)
				}
				defer mlkem.ZeroizeBytes(seed)
				if len(seed) != 2*mlkem.SeedSize {
					return fmt.Errorf("--seed: want %d bytes, got %d", 2*mlkem.SeedSize, len(seed))
				}
				ek, dk, err = k.GenerateFromSeed(seed[:mlkem.SeedSize], seed[mlkem.SeedSize:])
				if err != nil {
					return withStatus(err)
				}
			} else {
				ek, dk, err = k.Generate()
				if err != nil {
					return withStatus(err)
				}
			}
			defer mlkem.ZeroizeBytes(dk)

			return writeArmored(c, st.set, []armored{
				{mlkem.KindEncapsKey, ek},
				{mlkem.KindDecapsKey, dk},
			})
		},
	}
}

func encapsCommand() *cli.Command {
	return &cli.Command{
		Name:  "encaps",
		Usage: "encapsulate to a PEM encapsulation key; prints the ciphertext and shared secret",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ek", Usage: "encapsulation key file", Required: true},
		},
		Action: func(c *cli.Context) error {
			st := stateFrom(c)
			set, ek, err := st.readKind(c.String("ek"), mlkem.KindEncapsKey)
			if err != nil {
				return err
			}
			k, err := st.kem(set)
			if err != nil {
				return err
			}
			ct, ss, err := k.Encapsulate(ek)
			if err != nil {
				return withStatus(err)
			}
			defer mlkem.ZeroizeBytes(ss)

			if err := writeArmored(c, set, []armored{{mlkem.KindCiphertext, ct}}); err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "shared secret: %s\n", hex.EncodeToString(ss))
			return err
		},
	}
}

func decapsCommand() *cli.Command {
	return &cli.Command{
		Name:  "decaps",
		Usage: "decapsulate a PEM ciphertext and print the shared secret",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dk", Usage: "decapsulation key file", Required: true},
			&cli.StringFlag{Name: "ct", Usage: "ciphertext file", Required: true},
		},
		Action: func(c *cli.Context) error {
			st := stateFrom(c)
			set, dk, err := st.readKind(c.String("dk"), mlkem.KindDecapsKey)
			if err != nil {
				return err
			}
			defer mlkem.ZeroizeBytes(dk)
			ctSet, ct, err := st.readKind(c.String("ct"), mlkem.KindCiphertext)
			if err != nil {
				return err
			}
			if ctSet != set {
				return withStatus(fmt.Errorf("%w: ciphertext is %s but key is %s", mlkem.ErrDeserialization, ctSet, set))
			}
			k, err := st.kem(set)
			if err != nil {
				return err
			}
			ss, err := k.Decapsulate(dk, ct)
			if err != nil {
				return withStatus(err)
			}
			defer mlkem.ZeroizeBytes(ss)
			_, err = fmt.Fprintf(c.App.Writer, "shared secret: %s\n", hex.EncodeToString(ss))
			return err
		},
	}
}

func derivePubCommand() *cli.Command {
	return &cli.Command{
		Name:  "derive-pub",
		Usage: "print the encapsulation key embedded in a decapsulation key",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dk", Usage: "decapsulation key file", Required: true},
		},
		Action: func(c *cli.Context) error {
			st := stateFrom(c)
			set, dk, err := st.readKind(c.String("dk"), mlkem.KindDecapsKey)
			if err != nil {
				return err
			}
			defer mlkem.ZeroizeBytes(dk)
			k, err := st.kem(set)
			if err != nil {
				return err
			}
			ek, err := k.DerivePub(dk)
			if err != nil {
				return withStatus(err)
			}
			return writeArmored(c, set, []armored{{mlkem.KindEncapsKey, ek}})
		},
	}
}

var errInconsistentKeypair = errors.New("key pair is inconsistent")

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "check that an encapsulation key and decapsulation key belong together",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ek", Usage: "encapsulation key file", Required: true},
			&cli.StringFlag{Name: "dk", Usage: "decapsulation key file", Required: true},
		},
		Action: func(c *cli.Context) error {
			st := stateFrom(c)
			set, ek, err := st.readKind(c.String("ek"), mlkem.KindEncapsKey)
			if err != nil {
				return err
			}
			dkSet, dk, err := st.readKind(c.String("dk"), mlkem.KindDecapsKey)
			if err != nil {
				return err
			}
			defer mlkem.ZeroizeBytes(dk)
			if dkSet != set {
				return fmt.Errorf("%w: encapsulation key is %s, decapsulation key is %s", errInconsistentKeypair, set, dkSet)
			}
			k, err := st.kem(set)
			if err != nil {
				return err
			}
			if !k.Validate(ek, dk) {
				return errInconsistentKeypair
			}
			_, err = fmt.Fprintf(c.App.Writer, "%s key pair is consistent\n", set)
			return err
		},
	}
}

func selftestCommand() *cli.Command {
	return &cli.Command{
		Name:  "selftest",
		Usage: "run a round trip and input-validation check for every parameter set",
		Action: func(c *cli.Context) error {
			st := stateFrom(c)
			for _, set := range mlkem.ParameterSets() {
				if err := selftest(st, set); err != nil {
					return fmt.Errorf("%s: %w", set, err)
				}
				if _, err := fmt.Fprintf(c.App.Writer, "%s ok\n", set); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print wrapper and backend versions",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(c.App.Writer, "mlkem-go %s\nbackend %s\n",
				mlkem.WrapperVersion(), mlkem.UpstreamVersion())
			return err
		},
	}
}
