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
	"io"
	"math/big"
)

// minReencryptExponent excludes the trivial re-encryption exponents 0, 1, 2:
// 0 leaves the ciphertext untouched, 1 and 2 are small enough to make the
// re-encryption exponent guessable by brute force for small-order groups.
var minReencryptExponent = big.NewInt(3)

// Reencrypt re-randomizes (alpha, beta) under params, returning the new
// ciphertext together with the exponent r actually used: alpha' = alpha *
// g^r mod p, beta' = beta * y^r mod p. If r is nil, one is sampled from
// source in [3, q). Passing an explicit r makes the operation replayable,
// which the mix-net prover relies on when it must reveal r during the
// cut-and-choose opening.
func Reencrypt(source io.Reader, params *CryptosystemParams, c Ciphertext, r *big.Int) (Ciphertext, *big.Int, error) {
	var err error
	if r == nil {
		r, err = RandomInRange(source, minReencryptExponent, params.Q)
		if err != nil {
			return Ciphertext{}, nil, err
		}
	}
	gr := new(big.Int).Exp(params.G, r, params.P)
	yr := new(big.Int).Exp(params.Y, r, params.P)
	alpha := new(big.Int).Mod(new(big.Int).Mul(c.Alpha, gr), params.P)
	beta := new(big.Int).Mod(new(big.Int).Mul(c.Beta, yr), params.P)
	return Ciphertext{Alpha: alpha, Beta: beta}, r, nil
}

// ComposeExponent folds two re-encryption exponents the way the mix-net
// proof's witness opening does: given the exponent cipherR that re-encrypts
// an original cipher into its round commitment, and the exponent mixedR
// that re-encrypts the same original cipher into its mixed output, it
// returns the exponent that re-encrypts the commitment directly into the
// mixed output, i.e. (mixedR - cipherR) mod q.
func ComposeExponent(q, cipherR, mixedR *big.Int) *big.Int {
	d := new(big.Int).Sub(mixedR, cipherR)
	return d.Mod(d, q)
}
