// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// SeedScalar derives a private key scalar from a BIP-39 mnemonic and
// passphrase.  The word list handling lives entirely in the external
// library; this function only canonicalizes the first 32 bytes of the seed
// through the curve backend.  Seed material that is not a canonical scalar
// collapses to the zero scalar, like every other backend failure.
func SeedScalar(mnemonic, passphrase string) (Scalar, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return Scalar{}, errors.Wrap(err, "unable to derive seed from mnemonic")
	}

	var secret [ScalarSize]byte
	copy(secret[:], seed[:ScalarSize])

	// Adding zero routes the encoding through the backend's canonical
	// range check without changing the value.
	return NewScalar(secret).Add(Scalar{}), nil
}
