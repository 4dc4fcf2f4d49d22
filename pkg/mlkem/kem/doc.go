// Package kem defines the byte-slice Key Encapsulation Mechanism interface
// implemented by mlkem.KEM.
//
// Code that only needs "some KEM" should depend on this interface rather than
// on a concrete parameter set, so that the security level can be chosen by
// configuration:
//
//	var k kem.KEM
//	k, _ = mlkem.New(mlkem.MLKEM1024, mlkem.Config{})
//	ek, dk, _ := k.Generate()
//	ct, ss, _ := k.Encapsulate(ek)
//	ss2, _ := k.Decapsulate(dk, ct)
//
// Unlike the fixed-array functions in package mlkem, implementations accept
// slices and must reject inputs of the wrong length.
package kem
