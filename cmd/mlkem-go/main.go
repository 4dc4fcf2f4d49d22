// Command mlkem-go exercises the ML-KEM surface from the shell: it generates
// key pairs, encapsulates and decapsulates with PEM-armored files, and runs a
// self test over all parameter sets.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "mlkem-go: %v\n", err)
		os.Exit(1)
	}
}
