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

package elgamal

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/getamis/mixnet/crypto/utils"
)

// DefaultSource is the entropy source randomized mix-net operations draw
// from by default: crypto/rand.Reader. DeterministicSource
// below produces a reproducible one for regression tests and for giving
// parallel workers independent, reseeded CSPRNG state — worker RNG state
// must never be inherited from a parent.
var DefaultSource io.Reader = rand.Reader

// DeterministicSource expands a 32-byte master seed and a per-use label
// (e.g. a round or worker index) into an HKDF-SHA256 keystream usable
// anywhere an io.Reader entropy source is accepted, including directly as
// the reader argument to crypto/rand.Int. Two calls with the same seed and
// label always produce the same stream; different labels under the same
// seed are independent. This is how per-round/per-worker RNG reseeding is
// realized without process forking.
func DeterministicSource(seed []byte, label []byte) io.Reader {
	return hkdf.New(sha256.New, seed, nil, label)
}

// RandomInRange draws a uniform integer in [lo, hi) from source via
// rejection sampling, mirroring utils.RandomIntFrom/RandomPositiveIntFrom.
func RandomInRange(source io.Reader, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() <= 0 {
		return nil, utils.ErrNotInRange
	}
	x, err := utils.RandomIntFrom(source, span)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(x, lo), nil
}

// RandomPermutation draws a uniform permutation of [0, n) via Fisher–Yates.
// n = 0 and n = 1 both have a unique permutation (the identity) and require
// no draws; the per-element re-encryption randomness sampled by Shuffle is
// what must not be short-circuited at n = 1, not the permutation itself.
func RandomPermutation(source io.Reader, n int) ([]int, error) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j, err := RandomInRange(source, big.NewInt(0), big.NewInt(int64(i+1)))
		if err != nil {
			return nil, err
		}
		jj := int(j.Int64())
		perm[i], perm[jj] = perm[jj], perm[i]
	}
	return perm, nil
}
