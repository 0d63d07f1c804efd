// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"

	"gitlab.com/basechain/basecore/types/chainhash"
)

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.
func HashToBig(hash *chainhash.Hash) *big.Int {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// CalcWork calculates a work value from difficulty bits.  Bitcoin increases
// the difficulty for generating a block by decreasing the value which the
// generated hash must be less than.  This difficulty target is stored in each
// block header using a compact representation as described in the
// documentation for CompactToBig.
//
// The main chain is selected by choosing the chain that has the most proof of
// work (highest difficulty).  Since a lower target difficulty value equates
// to higher actual difficulty, the work value which will be accumulated must
// be the inverse of the difficulty.  Also, in order to avoid potential
// division by zero and really small floating point numbers, the result adds
// 1 to the denominator and multiplies the numerator by 2^256.
func CalcWork(bits uint32) *big.Int {
	target, overflow := CompactToTarget(bits)
	if overflow {
		return big.NewInt(0)
	}

	return WorkFromTarget(target)
}

// WorkFromTarget returns 2^256 / (target+1) for an unsigned 256-bit target.
//
// 2^256 itself does not fit the 256-bit consensus width.  Since 2^256 is at
// least as large as target+1, it is equal to
// ((2^256 - target - 1) / (target+1)) + 1, which in turn equals
// (^target / (target+1)) + 1 with the complement taken within 256 bits.
func WorkFromTarget(target *big.Int) *big.Int {
	divisor := new(big.Int).Add(target, bigOne)
	if divisor.Cmp(oneLsh256) >= 0 {
		// target is (2^256)-1, so the divisor overflows the consensus
		// width to zero.  Guard the division rather than panic.
		return big.NewInt(0)
	}

	complement := new(big.Int).Sub(maxTarget, target)
	return complement.Div(complement, divisor).Add(complement, bigOne)
}
