// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"math/big"
	"time"

	"gitlab.com/basechain/basecore/types/chainhash"
	"gitlab.com/basechain/basecore/types/pow"
)

// MaxBlockHeaderPayload is the maximum number of bytes a block header can be.
// Version 4 bytes + Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes +
// PrevBlock and MerkleRoot hashes.
const MaxBlockHeaderPayload = 16 + (chainhash.HashSize * 2)

// BlockHeader defines information about a block and is used in the bitcoin
// block (MsgBlock) and headers (MsgHeaders) messages.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32

	// valid records construction provenance: true when the header was
	// built from explicit fields or a decode path, false for the zero
	// value.  It says nothing about consensus validity.
	valid bool
}

// IsValid reports whether the header was constructed from explicit fields or
// a byte source rather than being the zero value.  Semantic validity is the
// domain of the chaindata package, not this flag.
func (h *BlockHeader) IsValid() bool {
	return h.valid
}

// BlockHash computes the block identifier hash for the given block header,
// which is the double sha256 of the 80 byte serialization.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 everything.  Ignore the error
	// returns since there is no way the encode could fail except being out
	// of memory which would cause a run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, h)
	return chainhash.DoubleHashH(buf.Bytes())
}

// PowHash computes the hash the proof of work commits to.  For the standard
// chains this is the block identifier hash; chains with scrypt proof of work
// hash the same 80 byte serialization with scrypt instead.
func (h *BlockHeader) PowHash(scryptPoW bool) chainhash.Hash {
	if !scryptPoW {
		return h.BlockHash()
	}

	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, h)
	return chainhash.ScryptHashH(buf.Bytes())
}

// Difficulty returns the work value the header's compact target encodes,
// 2^256/(target+1).  It is computed from the current Bits value on every
// call and is zero when the encoding overflows.
func (h *BlockHeader) Difficulty() *big.Int {
	return pow.CalcWork(h.Bits)
}

// Deserialize decodes a block header from r into the receiver.  It is the
// strict decode path: short input returns the underlying read error and
// leaves the receiver unmarked.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	err := readBlockHeader(r, h)
	if err != nil {
		return err
	}
	h.valid = true
	return nil
}

// DeserializeLenient decodes a block header from r, tolerating short input.
// Fields the source cannot fill remain zero valued and the header is still
// marked as constructed, matching the legacy best-effort read behavior.
// Callers that need structural completeness must use Deserialize.
func (h *BlockHeader) DeserializeLenient(r io.Reader) {
	*h = BlockHeader{Timestamp: time.Unix(0, 0), valid: true}

	if err := ReadElement(r, &h.Version); err != nil {
		return
	}
	if err := ReadElement(r, &h.PrevBlock); err != nil {
		return
	}
	if err := ReadElement(r, &h.MerkleRoot); err != nil {
		return
	}
	if err := ReadElement(r, (*Uint32Time)(&h.Timestamp)); err != nil {
		return
	}
	if err := ReadElement(r, &h.Bits); err != nil {
		return
	}
	if err := ReadElement(r, &h.Nonce); err != nil {
		return
	}
}

// Serialize encodes a block header from the receiver into w.  The output is
// always exactly 80 bytes.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// ToBytes returns the serialized 80 byte form of the header.
func (h *BlockHeader) ToBytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, h)
	return buf.Bytes()
}

// IsEqual reports whether other holds the same six header fields.  The
// provenance flag does not participate in equality.
func (h *BlockHeader) IsEqual(other *BlockHeader) bool {
	return h.Version == other.Version &&
		h.PrevBlock == other.PrevBlock &&
		h.MerkleRoot == other.MerkleRoot &&
		h.Timestamp.Unix() == other.Timestamp.Unix() &&
		h.Bits == other.Bits &&
		h.Nonce == other.Nonce
}

// Copy creates a copy of the block header so that the original does not get
// modified when the copy is manipulated.
func (h *BlockHeader) Copy() *BlockHeader {
	// All fields are passed by value.
	clone := *h
	return &clone
}

// String returns the hexadecimal block identifier hash of the header.
func (h *BlockHeader) String() string {
	hash := h.BlockHash()
	return hash.String()
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, timestamp, difficulty bits, and
// nonce.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	timestamp time.Time, bits uint32, nonce uint32,
) *BlockHeader {
	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(timestamp.Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
		valid:      true,
	}
}

// NewBlockHeaderFromBytes decodes b into a new BlockHeader using the lenient
// decode path.
func NewBlockHeaderFromBytes(b []byte) *BlockHeader {
	var header BlockHeader
	header.DeserializeLenient(bytes.NewReader(b))
	return &header
}

// readBlockHeader reads a bitcoin block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	return ReadElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		(*Uint32Time)(&bh.Timestamp), &bh.Bits, &bh.Nonce)
}

// writeBlockHeader writes a bitcoin block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	sec := uint32(bh.Timestamp.Unix())
	return WriteElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		sec, bh.Bits, bh.Nonce)
}
