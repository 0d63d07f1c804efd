// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"
	"fmt"
	"time"

	"gitlab.com/basechain/basecore/types/chainhash"
)

// blockHeaderJSON is the text interchange form of a block header.  The two
// digests are hex encoded in the conventional byte-reversed display order.
type blockHeaderJSON struct {
	Version    int32  `json:"version"`
	Previous   string `json:"previous"`
	MerkleRoot string `json:"merkle_root"`
	Timestamp  uint32 `json:"timestamp"`
	Bits       uint32 `json:"bits"`
	Nonce      uint32 `json:"nonce"`
}

// MarshalJSON implements the json.Marshaler interface.
func (h *BlockHeader) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockHeaderJSON{
		Version:    h.Version,
		Previous:   h.PrevBlock.String(),
		MerkleRoot: h.MerkleRoot.String(),
		Timestamp:  uint32(h.Timestamp.Unix()),
		Bits:       h.Bits,
		Nonce:      h.Nonce,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.  A digest string
// that does not decode to exactly 32 bytes resets the receiver to the invalid
// default record in addition to reporting the decode error, so callers that
// drop the error still observe a header with IsValid() == false.
func (h *BlockHeader) UnmarshalJSON(b []byte) error {
	var aux blockHeaderJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		*h = BlockHeader{}
		return err
	}

	prevHash, err := decodeHeaderDigest(aux.Previous)
	if err != nil {
		*h = BlockHeader{}
		return err
	}
	merkleRoot, err := decodeHeaderDigest(aux.MerkleRoot)
	if err != nil {
		*h = BlockHeader{}
		return err
	}

	*h = *NewBlockHeader(aux.Version, prevHash, merkleRoot,
		time.Unix(int64(aux.Timestamp), 0), aux.Bits, aux.Nonce)
	return nil
}

// decodeHeaderDigest decodes a digest string, requiring the full 64 hex
// characters so a truncated digest cannot silently zero pad.
func decodeHeaderDigest(s string) (*chainhash.Hash, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return nil, fmt.Errorf("digest string length of %d, want %d",
			len(s), chainhash.MaxHashStringSize)
	}
	return chainhash.NewHashFromStr(s)
}
