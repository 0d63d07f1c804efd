// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/basechain/basecore/types/chainhash"
	"gitlab.com/basechain/basecore/types/wire"
)

// fakeTimeSource returns a fixed instant so the timestamp check is
// deterministic.
type fakeTimeSource struct {
	now time.Time
}

func (f fakeTimeSource) AdjustedTime() time.Time {
	return f.now
}

// fakeChainState is a scriptable consensus context oracle.
type fakeChainState struct {
	checkpointConflict bool
	minVersion         int32
	medianTimePast     time.Time
	workRequired       uint32
}

func (s *fakeChainState) IsCheckpointConflict(_ *chainhash.Hash) bool {
	return s.checkpointConflict
}

func (s *fakeChainState) MinimumBlockVersion() int32 {
	return s.minVersion
}

func (s *fakeChainState) MedianTimePast() time.Time {
	return s.medianTimePast
}

func (s *fakeChainState) WorkRequired() uint32 {
	return s.workRequired
}

func newHashFromStr(t *testing.T, s string) *chainhash.Hash {
	t.Helper()
	hash, err := chainhash.NewHashFromStr(s)
	require.NoError(t, err)
	return hash
}

// btcGenesisHeader returns the bitcoin main network genesis header, which
// satisfies its own compact target under double sha256.
func btcGenesisHeader(t *testing.T) *wire.BlockHeader {
	merkleRoot := newHashFromStr(t,
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
	return wire.NewBlockHeader(1, &chainhash.ZeroHash, merkleRoot,
		time.Unix(1231006505, 0), 0x1d00ffff, 2083236893)
}

// ltcGenesisHeader returns the litecoin main network genesis header, which
// satisfies its own compact target under scrypt.
func ltcGenesisHeader(t *testing.T) *wire.BlockHeader {
	merkleRoot := newHashFromStr(t,
		"97ddfbbae6be97fd6cdf3e7ca13232a3afff2353e29badfab7f73011edd4ced9")
	return wire.NewBlockHeader(1, &chainhash.ZeroHash, merkleRoot,
		time.Unix(1317972665, 0), 0x1e0ffff0, 2084524493)
}

func TestCheckBlockHeader(t *testing.T) {
	genesis := btcGenesisHeader(t)
	genesisNow := fakeTimeSource{now: genesis.Timestamp}

	tests := []struct {
		name       string
		header     *wire.BlockHeader
		powLimit   uint32
		scryptPoW  bool
		timeSource TimeSource
		wantCode   ErrorCode
		wantOK     bool
	}{
		{
			name:       "genesis passes",
			header:     genesis,
			powLimit:   0x1d00ffff,
			timeSource: genesisNow,
			wantOK:     true,
		},
		{
			name:       "overflowed bits",
			header:     mutateBits(genesis, 0xff123456),
			powLimit:   0x1d00ffff,
			timeSource: genesisNow,
			wantCode:   ErrInvalidProofOfWork,
		},
		{
			name:       "negative encoding",
			header:     mutateBits(genesis, 0x04923456),
			powLimit:   0x1d00ffff,
			timeSource: genesisNow,
			wantCode:   ErrInvalidProofOfWork,
		},
		{
			name:       "zero target",
			header:     mutateBits(genesis, 0),
			powLimit:   0x1d00ffff,
			timeSource: genesisNow,
			wantCode:   ErrInvalidProofOfWork,
		},
		{
			name:       "target above limit",
			header:     genesis,
			powLimit:   0x1c00ffff,
			timeSource: genesisNow,
			wantCode:   ErrInvalidProofOfWork,
		},
		{
			name: "hash above target",
			header: wire.NewBlockHeader(1, &chainhash.ZeroHash,
				&chainhash.ZeroHash, genesis.Timestamp, 0x1d00ffff, 0),
			powLimit:   0x1d00ffff,
			timeSource: genesisNow,
			wantCode:   ErrInvalidProofOfWork,
		},
		{
			name:     "futuristic timestamp",
			header:   genesis,
			powLimit: 0x1d00ffff,
			// Now is three hours before the header's timestamp, so
			// the header sits beyond the two hour skew.
			timeSource: fakeTimeSource{now: genesis.Timestamp.Add(-3 * time.Hour)},
			wantCode:   ErrFuturisticTimestamp,
		},
		{
			name: "proof of work checked before timestamp",
			// Fails both checks; proof of work must win.
			header:     mutateBits(genesis, 0xff123456),
			powLimit:   0x1d00ffff,
			timeSource: fakeTimeSource{now: genesis.Timestamp.Add(-3 * time.Hour)},
			wantCode:   ErrInvalidProofOfWork,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := CheckBlockHeader(test.header, MaxTimeOffsetSeconds,
				test.powLimit, test.scryptPoW, test.timeSource)
			if test.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsErrorCode(err, test.wantCode),
				"got %v, want %v", err, test.wantCode)
		})
	}
}

// TestCheckBlockHeaderScrypt validates the alternate proof of work path with
// the litecoin genesis header, which was mined under scrypt.
func TestCheckBlockHeaderScrypt(t *testing.T) {
	genesis := ltcGenesisHeader(t)
	now := fakeTimeSource{now: genesis.Timestamp}

	// The block identifier hash is still double sha256.
	assert.Equal(t,
		"12a765e31ffd4059bada1e25190f6e98c99d9714d334efa41a195a7e7e04bfe2",
		genesis.BlockHash().String())

	// Under scrypt the mined header satisfies its own bits.
	assert.NoError(t, CheckBlockHeader(genesis, MaxTimeOffsetSeconds,
		0x1e0ffff0, true, now))

	// Under double sha256 the same header carries no such work.
	err := CheckBlockHeader(genesis, MaxTimeOffsetSeconds, 0x1e0ffff0,
		false, now)
	assert.True(t, IsErrorCode(err, ErrInvalidProofOfWork))
}

func TestAcceptBlockHeader(t *testing.T) {
	genesis := btcGenesisHeader(t)

	// goodState accepts the genesis header.
	goodState := func() *fakeChainState {
		return &fakeChainState{
			minVersion:     1,
			medianTimePast: genesis.Timestamp.Add(-time.Hour),
			workRequired:   0x1d00ffff,
		}
	}

	tests := []struct {
		name     string
		state    *fakeChainState
		wantCode ErrorCode
		wantOK   bool
	}{
		{
			name:   "accepted",
			state:  goodState(),
			wantOK: true,
		},
		{
			name: "checkpoint conflict",
			state: func() *fakeChainState {
				s := goodState()
				s.checkpointConflict = true
				return s
			}(),
			wantCode: ErrCheckpointsFailed,
		},
		{
			name: "version below minimum",
			state: func() *fakeChainState {
				s := goodState()
				s.minVersion = 2
				return s
			}(),
			wantCode: ErrInvalidBlockVersion,
		},
		{
			name: "timestamp equal to median time past",
			state: func() *fakeChainState {
				s := goodState()
				s.medianTimePast = genesis.Timestamp
				return s
			}(),
			wantCode: ErrTimestampTooEarly,
		},
		{
			name: "timestamp before median time past",
			state: func() *fakeChainState {
				s := goodState()
				s.medianTimePast = genesis.Timestamp.Add(time.Hour)
				return s
			}(),
			wantCode: ErrTimestampTooEarly,
		},
		{
			name: "wrong required work",
			state: func() *fakeChainState {
				s := goodState()
				s.workRequired = 0x1c00ffff
				return s
			}(),
			wantCode: ErrIncorrectProofOfWork,
		},
		{
			name: "checkpoint conflict checked before version",
			state: func() *fakeChainState {
				s := goodState()
				s.checkpointConflict = true
				s.minVersion = 2
				return s
			}(),
			wantCode: ErrCheckpointsFailed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := AcceptBlockHeader(genesis, test.state)
			if test.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsErrorCode(err, test.wantCode),
				"got %v, want %v", err, test.wantCode)
		})
	}
}

// TestRuleError covers the error stringification helpers.
func TestRuleError(t *testing.T) {
	err := NewRuleError(ErrTimestampTooEarly, "too early")
	assert.Equal(t, "too early", err.Error())
	assert.Equal(t, "ErrTimestampTooEarly", err.ErrorCode.String())
	assert.True(t, IsErrorCode(err, ErrTimestampTooEarly))
	assert.False(t, IsErrorCode(err, ErrCheckpointsFailed))

	assert.Equal(t, "Unknown ErrorCode (1000)", ErrorCode(1000).String())
}

// mutateBits copies the header with replaced difficulty bits.
func mutateBits(h *wire.BlockHeader, bits uint32) *wire.BlockHeader {
	clone := h.Copy()
	clone.Bits = bits
	return clone
}
