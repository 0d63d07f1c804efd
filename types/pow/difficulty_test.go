// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"
	"testing"

	"gitlab.com/basechain/basecore/types/chainhash"
)

// TestCalcWork ensures the work values computed from compact difficulty bits
// match the known reference values.
func TestCalcWork(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		want *big.Int
	}{
		// Genesis difficulty: 2^256 / (0xffff*2^208 + 1).
		{"genesis bits", 0x1d00ffff, big.NewInt(0x100010001)},

		// Zero target decodes without overflow; 2^256 / 1 = 2^256.
		{"zero target", 0, new(big.Int).Lsh(big.NewInt(1), 256)},

		// Overflowed encodings carry no work.
		{"negative encoding", 0x04923456, big.NewInt(0)},
		{"overflowed exponent", 0xff123456, big.NewInt(0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := CalcWork(test.bits)
			if got.Cmp(test.want) != 0 {
				t.Fatalf("CalcWork(%08x) = %v, want %v", test.bits,
					got, test.want)
			}
		})
	}
}

// TestWorkFromTargetMax guards the branch where target+1 overflows the
// 256-bit consensus width to zero.
func TestWorkFromTargetMax(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	if got := WorkFromTarget(max); got.Sign() != 0 {
		t.Fatalf("WorkFromTarget((2^256)-1) = %v, want 0", got)
	}

	// One below the maximum is the last target with defined work.
	nearMax := new(big.Int).Sub(max, big.NewInt(1))
	if got := WorkFromTarget(nearMax); got.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("WorkFromTarget((2^256)-2) = %v, want 1", got)
	}
}

// TestHashToBig ensures hashes are interpreted as big-endian 256-bit
// integers after the little-endian byte reversal.
func TestHashToBig(t *testing.T) {
	var hash chainhash.Hash
	hash[chainhash.HashSize-1] = 0x01

	if got := HashToBig(&hash); got.Cmp(new(big.Int).Lsh(big.NewInt(1), 248)) != 0 {
		t.Fatalf("HashToBig: got %x, want 1<<248", got)
	}

	var small chainhash.Hash
	small[0] = 0x02
	if got := HashToBig(&small); got.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("HashToBig: got %x, want 2", got)
	}
}
