// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedScalar(t *testing.T) {
	// Reference vector: BIP-39 test mnemonic with the "TREZOR"
	// passphrase.  The seed begins 878386ef..., well below the group
	// order, so the scalar is the first 32 seed bytes verbatim.
	const mnemonic = "legal winner thank year wave sausage worth useful " +
		"legal winner thank yellow"

	scalar, err := SeedScalar(mnemonic, "TREZOR")
	require.NoError(t, err)
	assert.False(t, scalar.IsZero())
	assert.Equal(t, fromHex(t,
		"878386efb78845b3355bd15ea4d39ef97d179cb712b77d5c12b6be415fffeffe"),
		scalar.Secret())

	// Same mnemonic, different passphrase, different key material.
	other, err := SeedScalar(mnemonic, "")
	require.NoError(t, err)
	assert.False(t, other.Equal(scalar))
}

func TestSeedScalarInvalidMnemonic(t *testing.T) {
	_, err := SeedScalar("not a valid mnemonic", "")
	assert.Error(t, err)
}
