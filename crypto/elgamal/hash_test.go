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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Hash", func() {
	Describe("HexNoPad()", func() {
		It("has no leading zeros and no 0x prefix", func() {
			Expect(HexNoPad(big.NewInt(255))).Should(Equal("ff"))
			Expect(HexNoPad(big.NewInt(1))).Should(Equal("1"))
			Expect(HexNoPad(big.NewInt(0))).Should(Equal("0"))
		})
	})

	Describe("Sha256HexAbsorb()", func() {
		It("matches sha256 over the plain concatenation of its parts", func() {
			want := sha256.Sum256([]byte("abc" + "def"))
			got := Sha256HexAbsorb("abc", "def")
			Expect(got).Should(Equal(hex.EncodeToString(want[:])))
		})

		It("depends only on the concatenated bytes, not on element boundaries", func() {
			Expect(Sha256HexAbsorb("ab", "c")).Should(Equal(Sha256HexAbsorb("a", "bc")))
		})
	})

	Describe("BitIterator()", func() {
		It("yields bits least-significant-first", func() {
			next := BitIterator(big.NewInt(0b1011))
			Expect(next()).Should(Equal(1))
			Expect(next()).Should(Equal(1))
			Expect(next()).Should(Equal(0))
			Expect(next()).Should(Equal(1))
			Expect(next()).Should(Equal(0))
		})

		It("yields all zero bits for n=0", func() {
			next := BitIterator(big.NewInt(0))
			for i := 0; i < 8; i++ {
				Expect(next()).Should(Equal(0))
			}
		})
	})
})
