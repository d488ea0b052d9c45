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
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// HexNoPad renders x as lowercase hex with no "0x" prefix and no leading
// zero padding — exactly the digit string the Fiat–Shamir challenge is
// computed over. big.Int.Text(16) already has this shape; this wrapper
// exists so every call site names its intent.
func HexNoPad(x *big.Int) string {
	return x.Text(16)
}

// Sha256HexAbsorb streams each element of parts through SHA-256, in order,
// with no delimiter between elements, and returns the lowercase hex digest.
// This is the exact byte framing the challenge hash requires: changing it
// breaks verification of every transcript produced against the old framing.
func Sha256HexAbsorb(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// BitIterator returns a function yielding the bits of the non-negative
// integer n from the least-significant bit upward. Calling it more times
// than n has bits yields 0 forever (equivalent to n's infinite leading
// zeros) — the mix-net only ever calls it R times with R known in advance,
// so this never masks a real out-of-range read.
func BitIterator(n *big.Int) func() int {
	i := 0
	return func() int {
		bit := n.Bit(i)
		i++
		return int(bit)
	}
}
