// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys provides the elliptic curve scalar value type used for
// private keys and tweak values.  The modular arithmetic itself is delegated
// to an external, security reviewed curve backend; this package only layers
// value semantics on top of it.
package keys

import (
	"encoding/binary"
)

// backend performs the modular arithmetic for every Scalar operation.  It
// defaults to the secp256k1 implementation; UseBackend swaps it, primarily
// so tests can exercise the failure collapse with a scripted fake.
var backend ScalarBackend = Secp256k1Backend{}

// UseBackend replaces the curve arithmetic backend used by all Scalar
// operations.  It is not safe to call concurrently with scalar arithmetic.
func UseBackend(b ScalarBackend) {
	backend = b
}

// Scalar represents an integer modulo the curve group order, encoded as 32
// big-endian bytes.  The all-zero encoding is the unique representation of
// zero and also the well-defined result of any failed operation.  The zero
// value of the type is the zero scalar.
//
// Scalars are plain values: copy freely, compare with Equal.
type Scalar struct {
	secret [ScalarSize]byte
}

// NewScalar returns the scalar with the given big-endian encoding.
func NewScalar(secret [ScalarSize]byte) Scalar {
	return Scalar{secret: secret}
}

// NewScalarFromInt64 returns the scalar congruent to v.  The magnitude is
// written big-endian into the low-order eight bytes of the encoding and the
// result is negated when v is negative.
func NewScalarFromInt64(v int64) Scalar {
	// Shortcircuit writing a zero.
	if v == 0 {
		return Scalar{}
	}

	magnitude := uint64(v)
	if v < 0 {
		magnitude = -magnitude
	}

	// All hashes and secrets are stored as big-endian by convention.
	var secret [ScalarSize]byte
	binary.BigEndian.PutUint64(secret[ScalarSize-8:], magnitude)

	scalar := Scalar{secret: secret}
	if v < 0 {
		return scalar.Negate()
	}
	return scalar
}

// Secret returns the 32 byte big-endian encoding of the scalar.
func (s Scalar) Secret() [ScalarSize]byte {
	return s.secret
}

// Add returns s + other.  A backend failure yields the zero scalar.
func (s Scalar) Add(other Scalar) Scalar {
	out, ok := backend.Add(s.secret, other.secret)
	if !ok {
		return Scalar{}
	}
	return Scalar{secret: out}
}

// Sub returns s - other, computed as s + (-other).
func (s Scalar) Sub(other Scalar) Scalar {
	return s.Add(other.Negate())
}

// Mul returns s * other.  A backend failure yields the zero scalar.
func (s Scalar) Mul(other Scalar) Scalar {
	out, ok := backend.Multiply(s.secret, other.secret)
	if !ok {
		return Scalar{}
	}
	return Scalar{secret: out}
}

// Negate returns -s.  A backend failure yields the zero scalar.
func (s Scalar) Negate() Scalar {
	out, ok := backend.Negate(s.secret)
	if !ok {
		return Scalar{}
	}
	return Scalar{secret: out}
}

// Equal reports whether both scalars hold the same encoding.  The arrays are
// compared in reverse order since scalars are big-endian with leading zero
// bytes for small values, so typically only one byte is examined.
func (s Scalar) Equal(other Scalar) bool {
	for i := ScalarSize - 1; i >= 0; i-- {
		if s.secret[i] != other.secret[i] {
			return false
		}
	}
	return true
}

// EqualInt64 reports whether the scalar is congruent to v.
func (s Scalar) EqualInt64(v int64) bool {
	return s.Equal(NewScalarFromInt64(v))
}

// IsZero reports whether the scalar is the zero scalar, using the same
// reverse order scan as Equal.
func (s Scalar) IsZero() bool {
	for i := ScalarSize - 1; i >= 0; i-- {
		if s.secret[i] != 0 {
			return false
		}
	}
	return true
}
