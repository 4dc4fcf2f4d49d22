// Package encoding implements the byte-level input checks FIPS 203 requires
// before a serialized key may be used: the encapsulation key modulus check
// and the decapsulation key hash check. It also describes the fixed layout of
// the serialized decapsulation key.
package encoding
