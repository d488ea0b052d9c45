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

	"github.com/getamis/mixnet/crypto/utils"
)

// GenerateParams produces a fresh CryptosystemParams: a pbits-bit safe prime
// p = 2q+1, a generator g of the unique order-q subgroup of (Z/pZ)*, and a
// public key y = g^x mod p for a locally sampled secret x that is
// immediately discarded. Distributed trustee key generation (splitting x
// across several parties) is out of scope here; this produces a single-party
// key suitable for development and testing of the mix itself.
func GenerateParams(source io.Reader, pbits int) (*CryptosystemParams, error) {
	safePrime, err := utils.GenerateRandomSafePrime(source, pbits)
	if err != nil {
		return nil, err
	}
	p := safePrime.P
	q := safePrime.Q

	g, err := generatorOfOrderQ(source, p)
	if err != nil {
		return nil, err
	}

	x, err := RandomInRange(source, big.NewInt(1), q)
	if err != nil {
		return nil, err
	}
	y := new(big.Int).Exp(g, x, p)

	return NewCryptosystemParams(p, g, q, y)
}

// generatorOfOrderQ finds a generator of the order-q subgroup of (Z/pZ)*
// for a safe prime p = 2q+1, by squaring uniform elements of (Z/pZ)* until
// the result isn't the identity. Squaring a uniform element lands in the
// order-q subgroup with overwhelming probability (it fails only when the
// sampled element already has order 1 or 2), and since q is prime every
// non-identity element of that subgroup generates it.
func generatorOfOrderQ(source io.Reader, p *big.Int) (*big.Int, error) {
	pMinus2 := new(big.Int).Sub(p, big.NewInt(2))
	one := big.NewInt(1)
	for {
		h, err := RandomInRange(source, big.NewInt(2), pMinus2)
		if err != nil {
			return nil, err
		}
		g := new(big.Int).Exp(h, big.NewInt(2), p)
		if g.Cmp(one) != 0 {
			return g, nil
		}
	}
}
