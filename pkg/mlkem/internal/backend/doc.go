// Package backend hosts the thin layer that links the validated ML-KEM
// surface to the lattice implementation in github.com/cloudflare/circl. It
// performs no input validation of its own beyond buffer sizes; callers run
// the FIPS 203 input checks first and map errors from here onto their own
// status values.
package backend
