// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarSize is the byte length of the big-endian scalar encoding.
const ScalarSize = 32

// ScalarBackend is the capability interface over the external curve
// arithmetic.  Implementations operate on canonical 32 byte big-endian
// encodings of integers modulo the curve group order and report failure via
// the bool: an input that is not a canonical scalar, or a result the
// primitive rejects, yields false.  Scalar collapses every failure to the
// zero scalar, so backends never need to invent a sentinel value themselves.
type ScalarBackend interface {
	// Add returns (a + b) mod N.
	Add(a, b [ScalarSize]byte) ([ScalarSize]byte, bool)

	// Multiply returns (a * b) mod N.
	Multiply(a, b [ScalarSize]byte) ([ScalarSize]byte, bool)

	// Negate returns (-a) mod N.
	Negate(a [ScalarSize]byte) ([ScalarSize]byte, bool)
}

// Secp256k1Backend implements ScalarBackend over the secp256k1 group order
// using the decred curve implementation.  It mirrors the failure surface of
// the C library tweak primitives: a non-canonical input fails, and so does an
// addition or multiplication landing exactly on zero.
type Secp256k1Backend struct{}

// Add returns (a + b) mod N.
func (Secp256k1Backend) Add(a, b [ScalarSize]byte) ([ScalarSize]byte, bool) {
	var x, y secp256k1.ModNScalar
	if x.SetBytes(&a) != 0 || y.SetBytes(&b) != 0 {
		return [ScalarSize]byte{}, false
	}

	x.Add(&y)
	if x.IsZero() {
		return [ScalarSize]byte{}, false
	}

	var out [ScalarSize]byte
	x.PutBytes(&out)
	return out, true
}

// Multiply returns (a * b) mod N.
func (Secp256k1Backend) Multiply(a, b [ScalarSize]byte) ([ScalarSize]byte, bool) {
	var x, y secp256k1.ModNScalar
	if x.SetBytes(&a) != 0 || y.SetBytes(&b) != 0 {
		return [ScalarSize]byte{}, false
	}

	x.Mul(&y)
	if x.IsZero() {
		return [ScalarSize]byte{}, false
	}

	var out [ScalarSize]byte
	x.PutBytes(&out)
	return out, true
}

// Negate returns (-a) mod N.  Negating zero succeeds and yields zero.
func (Secp256k1Backend) Negate(a [ScalarSize]byte) ([ScalarSize]byte, bool) {
	var x secp256k1.ModNScalar
	if x.SetBytes(&a) != 0 {
		return [ScalarSize]byte{}, false
	}

	x.Negate()

	var out [ScalarSize]byte
	x.PutBytes(&out)
	return out, true
}
