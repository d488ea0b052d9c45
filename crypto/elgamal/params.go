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

// Package elgamal implements the multiplicative-group ElGamal cryptosystem
// a re-encryption mix-net is built on: a safe prime p = 2q+1, a generator g
// of the order-q subgroup, and re-encryption of (alpha, beta) pairs under a
// shared public key y.
package elgamal

import (
	"errors"
	"math/big"
)

// paramsYAML mirrors CryptosystemParams with decimal-string big integers,
// since gopkg.in/yaml.v2 has no notion of math/big.Int and would otherwise
// marshal its unexported internals as an empty mapping.
type paramsYAML struct {
	P string `yaml:"modulus"`
	G string `yaml:"generator"`
	Q string `yaml:"order"`
	Y string `yaml:"public"`
}

var (
	// ErrInvalidParams is returned when a CryptosystemParams fails its basic
	// sanity checks (non-positive modulus/order, zero public key, or a
	// generator that does not land in [1, p)).
	ErrInvalidParams = errors.New("elgamal: invalid cryptosystem params")
)

// CryptosystemParams is the immutable tuple (p, g, q, y) every mix-net
// operation in this package is parameterized by. It is never mutated after
// construction; every operation that would "change" it returns a new value.
type CryptosystemParams struct {
	P *big.Int `json:"modulus" yaml:"modulus"`
	G *big.Int `json:"generator" yaml:"generator"`
	Q *big.Int `json:"order" yaml:"order"`
	Y *big.Int `json:"public" yaml:"public"`
}

// NewCryptosystemParams validates and wraps (p, g, q, y). It does not check
// g^q == 1 (mod p) or that p = 2q+1 — those are expensive structural
// invariants that a parameter provider is expected to have already
// established; this only guards against the obviously malformed.
func NewCryptosystemParams(p, g, q, y *big.Int) (*CryptosystemParams, error) {
	if p == nil || g == nil || q == nil || y == nil {
		return nil, ErrInvalidParams
	}
	if p.Sign() <= 0 || q.Sign() <= 0 {
		return nil, ErrInvalidParams
	}
	if y.Sign() == 0 {
		return nil, ErrInvalidParams
	}
	if y.Sign() < 0 || y.Cmp(p) >= 0 {
		return nil, ErrInvalidParams
	}
	if g.Sign() <= 0 || g.Cmp(p) >= 0 {
		return nil, ErrInvalidParams
	}
	return &CryptosystemParams{
		P: new(big.Int).Set(p),
		G: new(big.Int).Set(g),
		Q: new(big.Int).Set(q),
		Y: new(big.Int).Set(y),
	}, nil
}

// MarshalYAML renders params as decimal strings under the wire field names.
func (params *CryptosystemParams) MarshalYAML() (interface{}, error) {
	return paramsYAML{
		P: params.P.String(),
		G: params.G.String(),
		Q: params.Q.String(),
		Y: params.Y.String(),
	}, nil
}

// UnmarshalYAML parses decimal-string fields back into a CryptosystemParams.
func (params *CryptosystemParams) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var w paramsYAML
	if err := unmarshal(&w); err != nil {
		return err
	}
	p, ok := new(big.Int).SetString(w.P, 10)
	if !ok {
		return ErrInvalidParams
	}
	g, ok := new(big.Int).SetString(w.G, 10)
	if !ok {
		return ErrInvalidParams
	}
	q, ok := new(big.Int).SetString(w.Q, 10)
	if !ok {
		return ErrInvalidParams
	}
	y, ok := new(big.Int).SetString(w.Y, 10)
	if !ok {
		return ErrInvalidParams
	}
	built, err := NewCryptosystemParams(p, g, q, y)
	if err != nil {
		return err
	}
	*params = *built
	return nil
}

// Copy returns an independent copy of params.
func (params *CryptosystemParams) Copy() *CryptosystemParams {
	return &CryptosystemParams{
		P: new(big.Int).Set(params.P),
		G: new(big.Int).Set(params.G),
		Q: new(big.Int).Set(params.Q),
		Y: new(big.Int).Set(params.Y),
	}
}
