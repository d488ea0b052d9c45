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

import "math/big"

// Ciphertext is an ElGamal pair (alpha, beta) = (g^r, m*y^r) encrypting a
// plaintext m under the public key y. The mix-net never inspects m; it only
// ever re-encrypts and permutes pairs.
type Ciphertext struct {
	Alpha *big.Int `json:"alpha"`
	Beta  *big.Int `json:"beta"`
}

// NewCiphertext wraps (alpha, beta) without copying nor validating against a
// particular CryptosystemParams; use Ciphertext.Validate for that.
func NewCiphertext(alpha, beta *big.Int) Ciphertext {
	return Ciphertext{Alpha: alpha, Beta: beta}
}

// Validate checks alpha, beta in [1, p), per the CryptosystemParams they are
// claimed to belong to. It does not check subgroup membership (alpha, beta
// in <g>) — use ValidateSubgroup for that.
func (c Ciphertext) Validate(params *CryptosystemParams) error {
	if c.Alpha == nil || c.Beta == nil {
		return ErrInvalidParams
	}
	if c.Alpha.Sign() <= 0 || c.Alpha.Cmp(params.P) >= 0 {
		return ErrInvalidParams
	}
	if c.Beta.Sign() <= 0 || c.Beta.Cmp(params.P) >= 0 {
		return ErrInvalidParams
	}
	return nil
}

// ValidateSubgroup checks that alpha and beta both lie in the order-q
// subgroup generated by g, i.e. alpha^q == 1 (mod p) and beta^q == 1 (mod
// p). The default verifier never calls this (honest-verifier zero
// knowledge does not require it); it exists for callers that opt into
// stricter acceptance of otherwise-malformed ciphertexts.
func (c Ciphertext) ValidateSubgroup(params *CryptosystemParams) error {
	if err := c.Validate(params); err != nil {
		return err
	}
	one := big.NewInt(1)
	if new(big.Int).Exp(c.Alpha, params.Q, params.P).Cmp(one) != 0 {
		return ErrInvalidParams
	}
	if new(big.Int).Exp(c.Beta, params.Q, params.P).Cmp(one) != 0 {
		return ErrInvalidParams
	}
	return nil
}

// Equal reports whether two ciphertexts hold the same (alpha, beta).
func (c Ciphertext) Equal(other Ciphertext) bool {
	if c.Alpha == nil || c.Beta == nil || other.Alpha == nil || other.Beta == nil {
		return false
	}
	return c.Alpha.Cmp(other.Alpha) == 0 && c.Beta.Cmp(other.Beta) == 0
}

// Copy returns an independent copy of c.
func (c Ciphertext) Copy() Ciphertext {
	return Ciphertext{
		Alpha: new(big.Int).Set(c.Alpha),
		Beta:  new(big.Int).Set(c.Beta),
	}
}
