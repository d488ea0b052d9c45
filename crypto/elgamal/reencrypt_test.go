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
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reencrypt", func() {
	params := toyParams()
	original := NewCiphertext(big.NewInt(4), big.NewInt(9))

	It("re-encrypts to a different pair with an explicit exponent", func() {
		mixed, r, err := Reencrypt(DefaultSource, params, original, big.NewInt(5))
		Expect(err).Should(BeNil())
		Expect(r.Int64()).Should(Equal(int64(5)))
		Expect(mixed.Equal(original)).Should(BeFalse())
	})

	It("samples r in [3, q) when none is supplied", func() {
		for i := 0; i < 50; i++ {
			_, r, err := Reencrypt(DefaultSource, params, original, nil)
			Expect(err).Should(BeNil())
			Expect(r.Cmp(minReencryptExponent) >= 0).Should(BeTrue())
			Expect(r.Cmp(params.Q) < 0).Should(BeTrue())
		}
	})

	It("is replayable: the same r always yields the same pair", func() {
		a, _, err := Reencrypt(DefaultSource, params, original, big.NewInt(7))
		Expect(err).Should(BeNil())
		b, _, err := Reencrypt(DefaultSource, params, original, big.NewInt(7))
		Expect(err).Should(BeNil())
		Expect(a.Equal(b)).Should(BeTrue())
	})

	It("ComposeExponent folds two exponents into the bridging one", func() {
		cipherR := big.NewInt(4)
		mixedR := big.NewInt(9)
		commitFromCipher, _, err := Reencrypt(DefaultSource, params, original, cipherR)
		Expect(err).Should(BeNil())
		commitFromMixed, _, err := Reencrypt(DefaultSource, params, original, mixedR)
		Expect(err).Should(BeNil())
		// Re-encrypting the commitment by the composed exponent must land on
		// the mixed cipher produced from the original.
		bridge := ComposeExponent(params.Q, cipherR, mixedR)
		direct, _, err := Reencrypt(DefaultSource, params, commitFromCipher, bridge)
		Expect(err).Should(BeNil())
		Expect(direct.Equal(commitFromMixed)).Should(BeTrue())
	})
})
