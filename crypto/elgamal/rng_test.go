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
	"sort"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RNG", func() {
	Context("DeterministicSource()", func() {
		It("is reproducible for the same seed and label", func() {
			seed := []byte("master-seed")
			a := DeterministicSource(seed, []byte("round-0"))
			b := DeterministicSource(seed, []byte("round-0"))

			bufA := make([]byte, 64)
			bufB := make([]byte, 64)
			_, err := io.ReadFull(a, bufA)
			Expect(err).Should(BeNil())
			_, err = io.ReadFull(b, bufB)
			Expect(err).Should(BeNil())
			Expect(bufA).Should(Equal(bufB))
		})

		It("differs across labels under the same seed", func() {
			seed := []byte("master-seed")
			a := DeterministicSource(seed, []byte("round-0"))
			b := DeterministicSource(seed, []byte("round-1"))

			bufA := make([]byte, 64)
			bufB := make([]byte, 64)
			_, err := io.ReadFull(a, bufA)
			Expect(err).Should(BeNil())
			_, err = io.ReadFull(b, bufB)
			Expect(err).Should(BeNil())
			Expect(bufA).ShouldNot(Equal(bufB))
		})
	})

	Context("RandomInRange()", func() {
		It("returns an error when hi <= lo", func() {
			_, err := RandomInRange(DefaultSource, big.NewInt(5), big.NewInt(5))
			Expect(err).ShouldNot(BeNil())
		})

		It("always draws within [lo, hi)", func() {
			lo := big.NewInt(3)
			hi := big.NewInt(11)
			for i := 0; i < 100; i++ {
				x, err := RandomInRange(DefaultSource, lo, hi)
				Expect(err).Should(BeNil())
				Expect(x.Cmp(lo) >= 0).Should(BeTrue())
				Expect(x.Cmp(hi) < 0).Should(BeTrue())
			}
		})
	})

	Context("RandomPermutation()", func() {
		It("returns the empty permutation for n=0", func() {
			perm, err := RandomPermutation(DefaultSource, 0)
			Expect(err).Should(BeNil())
			Expect(perm).Should(BeEmpty())
		})

		It("returns a permutation of [0, n)", func() {
			perm, err := RandomPermutation(DefaultSource, 20)
			Expect(err).Should(BeNil())
			Expect(perm).Should(HaveLen(20))

			sorted := append([]int(nil), perm...)
			sort.Ints(sorted)
			for i, v := range sorted {
				Expect(v).Should(Equal(i))
			}
		})
	})
})
