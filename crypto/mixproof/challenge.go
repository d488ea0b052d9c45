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

package mixproof

import (
	"math/big"

	"github.com/getamis/mixnet/crypto/elgamal"
)

// computeChallenge absorbs params, originalCiphers, mixedCiphers, and every
// collection in order into a single SHA-256 digest, in the exact order:
// hex(p), hex(g), hex(q), hex(y), then alpha/beta of each original cipher,
// then alpha/beta of each mixed cipher, then alpha/beta of each cipher in
// each collection in round order. No delimiters, no length prefixes: the
// byte framing is load-bearing and must never change (it is what makes a
// transcript verify against a published election).
func computeChallenge(params *elgamal.CryptosystemParams, original, mixed CipherVector, collections []CipherVector) string {
	parts := make([]string, 0, 4+2*len(original)+2*len(mixed)+countCollectionElements(collections)*2)
	parts = append(parts,
		elgamal.HexNoPad(params.P),
		elgamal.HexNoPad(params.G),
		elgamal.HexNoPad(params.Q),
		elgamal.HexNoPad(params.Y),
	)
	for _, c := range original {
		parts = append(parts, elgamal.HexNoPad(c.Alpha), elgamal.HexNoPad(c.Beta))
	}
	for _, c := range mixed {
		parts = append(parts, elgamal.HexNoPad(c.Alpha), elgamal.HexNoPad(c.Beta))
	}
	for _, collection := range collections {
		for _, c := range collection {
			parts = append(parts, elgamal.HexNoPad(c.Alpha), elgamal.HexNoPad(c.Beta))
		}
	}
	return elgamal.Sha256HexAbsorb(parts...)
}

func countCollectionElements(collections []CipherVector) int {
	total := 0
	for _, c := range collections {
		total += len(c)
	}
	return total
}

// challengeInt parses the stored lowercase-hex challenge back into the
// integer elgamal.BitIterator consumes LSB-first to pick each round's answer bit.
func challengeInt(challenge string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(challenge, 16)
	return n, ok
}
