// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mixproof builds and checks Sako–Kilian cut-and-choose proofs that
// a ciphertext batch was honestly permuted and re-encrypted.
package mixproof

import (
	"encoding/json"
	"errors"
	"math/big"

	"github.com/getamis/mixnet/crypto/elgamal"
)

var (
	// ErrInvalidFormat is returned by Verify when a required transcript
	// field is missing, or the three per-round collection arrays don't
	// all have length R, or the offset vector of a round is not a
	// permutation of [0, n).
	ErrInvalidFormat = errors.New("mixproof: invalid transcript format")
	// ErrInvalidChallenge is returned when the recomputed challenge does
	// not match the one stored in the transcript.
	ErrInvalidChallenge = errors.New("mixproof: challenge mismatch")
	// ErrTooFewRounds is returned by Prove when the requested round count
	// is below MinRounds. Verify does not enforce this — historic
	// transcripts may carry exactly MinRounds and must still verify.
	ErrTooFewRounds = errors.New("mixproof: round count below minimum")
)

// MinRounds is the minimum number of cut-and-choose rounds Prove will
// accept; it is the floor the published protocol has always used.
const MinRounds = 16

// RoundMismatchError reports that round k's re-encryption equality failed
// at ciphertext index i under challenge bit bit. It is fatal: any mismatch
// means the transcript does not prove what it claims to.
type RoundMismatchError struct {
	Round int
	Index int
	Bit   int
}

func (e *RoundMismatchError) Error() string {
	return "mixproof: round mismatch at round=" + itoa(e.Round) + " index=" + itoa(e.Index) + " bit=" + itoa(e.Bit)
}

func itoa(n int) string {
	return new(big.Int).SetInt64(int64(n)).String()
}

// CipherVector is a JSON-friendly ordered list of ciphertexts.
type CipherVector []elgamal.Ciphertext

// MixTranscript is the complete published record of a mix-net proof: the
// cryptosystem parameters, the original and mixed ciphertext vectors, the R
// auxiliary round collections, and the Fiat–Shamir challenge. Field names
// match the wire format exactly; every big integer serializes as a JSON
// integer literal of arbitrary length.
type MixTranscript struct {
	Params              *elgamal.CryptosystemParams `json:"-"`
	OriginalCiphers     CipherVector                `json:"original_ciphers"`
	MixedCiphers        CipherVector                `json:"mixed_ciphers"`
	CipherCollections   []CipherVector               `json:"cipher_collections"`
	OffsetCollections   [][]int                      `json:"offset_collections"`
	RandomCollections   [][]*big.Int                 `json:"random_collections"`
	Challenge           string                       `json:"challenge"`
}

// transcriptWire is the exact on-disk shape: params are flattened to the
// top level under their wire names instead of nested, matching the
// external interface's wire-compatible key names.
type transcriptWire struct {
	Modulus           *big.Int     `json:"modulus"`
	Generator         *big.Int     `json:"generator"`
	Order             *big.Int     `json:"order"`
	Public            *big.Int     `json:"public"`
	OriginalCiphers   CipherVector `json:"original_ciphers"`
	MixedCiphers      CipherVector `json:"mixed_ciphers"`
	CipherCollections []CipherVector `json:"cipher_collections"`
	OffsetCollections [][]int      `json:"offset_collections"`
	RandomCollections [][]*big.Int `json:"random_collections"`
	Challenge         string       `json:"challenge"`
}

// MarshalJSON flattens Params into the top-level wire fields.
func (t *MixTranscript) MarshalJSON() ([]byte, error) {
	w := transcriptWire{
		OriginalCiphers:   t.OriginalCiphers,
		MixedCiphers:      t.MixedCiphers,
		CipherCollections: t.CipherCollections,
		OffsetCollections: t.OffsetCollections,
		RandomCollections: t.RandomCollections,
		Challenge:         t.Challenge,
	}
	if t.Params != nil {
		w.Modulus = t.Params.P
		w.Generator = t.Params.G
		w.Order = t.Params.Q
		w.Public = t.Params.Y
	}
	return json.Marshal(w)
}

// UnmarshalJSON reconstructs Params from the flattened top-level fields.
func (t *MixTranscript) UnmarshalJSON(data []byte) error {
	var w transcriptWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.OriginalCiphers = w.OriginalCiphers
	t.MixedCiphers = w.MixedCiphers
	t.CipherCollections = w.CipherCollections
	t.OffsetCollections = w.OffsetCollections
	t.RandomCollections = w.RandomCollections
	t.Challenge = w.Challenge
	if w.Modulus != nil && w.Generator != nil && w.Order != nil && w.Public != nil {
		params, err := elgamal.NewCryptosystemParams(w.Modulus, w.Generator, w.Order, w.Public)
		if err != nil {
			return err
		}
		t.Params = params
	}
	return nil
}

// Validate checks the structural invariants Verify relies on before any
// cryptographic check runs: every required field present, and the three
// collection arrays all of equal length R.
func (t *MixTranscript) Validate() (rounds int, err error) {
	if t.Params == nil || t.Challenge == "" {
		return 0, ErrInvalidFormat
	}
	if t.OriginalCiphers == nil || t.MixedCiphers == nil {
		return 0, ErrInvalidFormat
	}
	if len(t.OriginalCiphers) != len(t.MixedCiphers) {
		return 0, ErrInvalidFormat
	}
	r := len(t.CipherCollections)
	if len(t.OffsetCollections) != r || len(t.RandomCollections) != r {
		return 0, ErrInvalidFormat
	}
	n := len(t.OriginalCiphers)
	for k := 0; k < r; k++ {
		if len(t.CipherCollections[k]) != n || len(t.OffsetCollections[k]) != n || len(t.RandomCollections[k]) != n {
			return 0, ErrInvalidFormat
		}
		if !isPermutation(t.OffsetCollections[k], n) {
			return 0, ErrInvalidFormat
		}
	}
	return r, nil
}

func isPermutation(offsets []int, n int) bool {
	seen := make([]bool, n)
	for _, o := range offsets {
		if o < 0 || o >= n || seen[o] {
			return false
		}
		seen[o] = true
	}
	return true
}
