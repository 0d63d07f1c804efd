// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/scrypt"
)

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a
// Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// ScryptHashB calculates the scrypt hash of b, keyed with b itself, and
// returns the resulting bytes.  These are the parameters used by the
// scrypt-based proof of work chains (N=1024, r=1, p=1).
func ScryptHashB(b []byte) []byte {
	hash, err := scrypt.Key(b, b, 1024, 1, 1, HashSize)
	if err != nil {
		// Parameters are constant and valid, so this cannot happen.
		panic(err)
	}
	return hash
}

// ScryptHashH calculates the scrypt hash of b and returns the resulting bytes
// as a Hash.
func ScryptHashH(b []byte) Hash {
	var hash Hash
	copy(hash[:], ScryptHashB(b))
	return hash
}
