// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"fmt"
	"time"

	"gitlab.com/basechain/basecore/types/chainhash"
	"gitlab.com/basechain/basecore/types/pow"
	"gitlab.com/basechain/basecore/types/wire"
)

// MaxTimeOffsetSeconds is the maximum number of seconds a block time
// is allowed to be ahead of the current time.  This is currently 2
// hours.
const MaxTimeOffsetSeconds = 2 * 60 * 60

// TimeSource provides the notion of wall-clock "now" for the timestamp
// check.  Production code uses the system clock; tests inject a fixed one so
// the check is deterministic.
type TimeSource interface {
	// AdjustedTime returns the current wall clock time.
	AdjustedTime() time.Time
}

// systemTimeSource reads the system clock directly.
type systemTimeSource struct{}

func (systemTimeSource) AdjustedTime() time.Time {
	return time.Now()
}

// NewTimeSource returns a TimeSource backed by the system clock.
func NewTimeSource() TimeSource {
	return systemTimeSource{}
}

// ChainState is the read-only consensus context used for contextual header
// acceptance.  It is treated purely as an oracle: AcceptBlockHeader performs
// no mutation through it.
type ChainState interface {
	// IsCheckpointConflict reports whether the given block hash conflicts
	// with a hard-coded checkpoint at the candidate height.
	IsCheckpointConflict(hash *chainhash.Hash) bool

	// MinimumBlockVersion returns the lowest header version the chain
	// currently accepts.
	MinimumBlockVersion() int32

	// MedianTimePast returns the median timestamp of the recent header
	// window, the monotonic lower bound for new timestamps.
	MedianTimePast() time.Time

	// WorkRequired returns the exact compact difficulty value required of
	// the candidate header.
	WorkRequired() uint32
}

// checkProofOfWork ensures the block header bits which indicate the target
// difficulty is in min/max range and that the proof hash is less than the
// target difficulty as claimed.
func checkProofOfWork(header *wire.BlockHeader, powLimitBits uint32, scryptPoW bool) error {
	// An overflowed encoding can never be satisfied by any hash.
	target, overflow := pow.CompactToTarget(header.Bits)
	if overflow {
		str := fmt.Sprintf("block target difficulty bits of %08x overflow "+
			"the 256 bit range", header.Bits)
		return NewRuleError(ErrInvalidProofOfWork, str)
	}

	// The target difficulty must be larger than zero.
	if target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty of %064x is too low", target)
		return NewRuleError(ErrInvalidProofOfWork, str)
	}

	// The target difficulty must be less than the maximum allowed.
	powLimit, _ := pow.CompactToTarget(powLimitBits)
	if target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is higher "+
			"than max of %064x", target, powLimit)
		return NewRuleError(ErrInvalidProofOfWork, str)
	}

	// The proof hash must be less than the claimed target.  Smaller hash
	// means more work.
	hash := header.PowHash(scryptPoW)
	hashNum := pow.HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than expected "+
			"max of %064x", hashNum, target)
		return NewRuleError(ErrInvalidProofOfWork, str)
	}

	return nil
}

// checkTimestamp ensures the header timestamp is not further into the future
// than the allowed skew past the injected wall clock.
func checkTimestamp(header *wire.BlockHeader, timestampLimitSeconds uint32,
	timeSource TimeSource,
) error {
	maxTimestamp := timeSource.AdjustedTime().
		Add(time.Duration(timestampLimitSeconds) * time.Second)
	if header.Timestamp.After(maxTimestamp) {
		str := fmt.Sprintf("block timestamp of %v is too far in the future",
			header.Timestamp)
		return NewRuleError(ErrFuturisticTimestamp, str)
	}

	return nil
}

// CheckBlockHeader performs the intrinsic, context-free validation of a
// block header: proof of work against the configured compact limit, then the
// future timestamp bound.  The order is part of the contract; a header that
// fails both reports the proof of work failure.
//
// The returned error is a RuleError on rule violations and nil on success.
func CheckBlockHeader(header *wire.BlockHeader, timestampLimitSeconds uint32,
	powLimitBits uint32, scryptPoW bool, timeSource TimeSource,
) error {
	if err := checkProofOfWork(header, powLimitBits, scryptPoW); err != nil {
		return err
	}

	return checkTimestamp(header, timestampLimitSeconds, timeSource)
}

// AcceptBlockHeader performs the contextual validation of a block header
// against the chain state oracle.  Checks run in a fixed order and the first
// failure wins: checkpoint conflict, minimum version, median time past,
// required work.  The oracle is only read; there are no side effects.
//
// Callers are expected to have run CheckBlockHeader first; nothing here
// enforces that ordering.
func AcceptBlockHeader(header *wire.BlockHeader, state ChainState) error {
	hash := header.BlockHash()
	if state.IsCheckpointConflict(&hash) {
		str := fmt.Sprintf("block hash %v conflicts with a checkpoint", hash)
		return NewRuleError(ErrCheckpointsFailed, str)
	}

	if header.Version < state.MinimumBlockVersion() {
		str := fmt.Sprintf("block version %d is less than the minimum of %d",
			header.Version, state.MinimumBlockVersion())
		return NewRuleError(ErrInvalidBlockVersion, str)
	}

	// The timestamp must be strictly after the median time of the recent
	// header window.
	if !header.Timestamp.After(state.MedianTimePast()) {
		str := fmt.Sprintf("block timestamp of %v is not after the median "+
			"time past of %v", header.Timestamp, state.MedianTimePast())
		return NewRuleError(ErrTimestampTooEarly, str)
	}

	if header.Bits != state.WorkRequired() {
		str := fmt.Sprintf("block difficulty bits of %08x do not match the "+
			"required value of %08x", header.Bits, state.WorkRequired())
		return NewRuleError(ErrIncorrectProofOfWork, str)
	}

	log.Trace().Str("block", hash.String()).Msg("header accepted")
	return nil
}
