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
	"context"
	"math/big"

	"github.com/getamis/mixnet/crypto/elgamal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Prove/Verify round-trip", func() {
	params := toyParams()

	It("rejects Rounds below MinRounds", func() {
		_, err := Prove(context.Background(), params, toyCiphers(3), ProveOptions{Rounds: MinRounds - 1})
		Expect(err).Should(Equal(ErrTooFewRounds))
	})

	assertRoundTrip := func(n, workers int) {
		ciphers := toyCiphers(n)
		transcript, err := Prove(context.Background(), params, ciphers, ProveOptions{Rounds: MinRounds, Workers: workers})
		Expect(err).Should(BeNil())
		Expect(transcript.OriginalCiphers).Should(HaveLen(n))
		Expect(transcript.MixedCiphers).Should(HaveLen(n))
		Expect(transcript.CipherCollections).Should(HaveLen(MinRounds))

		err = Verify(context.Background(), transcript, VerifyOptions{Workers: workers})
		Expect(err).Should(BeNil())
	}

	for _, n := range []int{1, 2, 10, 30} {
		n := n
		It("round-trips for n="+itoa(n)+" sequentially", func() {
			assertRoundTrip(n, 0)
		})
		It("round-trips for n="+itoa(n)+" with 4 workers", func() {
			assertRoundTrip(n, 4)
		})
	}

	It("produces a byte-identical transcript across worker counts for a fixed seed", func() {
		ciphers := toyCiphers(12)
		seed := []byte("regression-seed")
		a, err := Prove(context.Background(), params, ciphers, ProveOptions{Rounds: MinRounds, Workers: 1, Seed: seed, Source: elgamal.DeterministicSource(seed, []byte("primary"))})
		Expect(err).Should(BeNil())
		b, err := Prove(context.Background(), params, ciphers, ProveOptions{Rounds: MinRounds, Workers: 8, Seed: seed, Source: elgamal.DeterministicSource(seed, []byte("primary"))})
		Expect(err).Should(BeNil())
		Expect(a.Challenge).Should(Equal(b.Challenge))
		Expect(a.MixedCiphers).Should(Equal(b.MixedCiphers))
	})

	It("detects tampering with mixed_ciphers", func() {
		// mixed_ciphers feeds the challenge hash, so tampering with it is
		// caught as soon as the verifier recomputes the challenge, before
		// any per-round equality is even checked.
		ciphers := toyCiphers(8)
		transcript, err := Prove(context.Background(), params, ciphers, ProveOptions{Rounds: MinRounds})
		Expect(err).Should(BeNil())

		transcript.MixedCiphers[0].Alpha = new(big.Int).Add(transcript.MixedCiphers[0].Alpha, big.NewInt(1))
		transcript.MixedCiphers[0].Alpha.Mod(transcript.MixedCiphers[0].Alpha, params.P)

		err = Verify(context.Background(), transcript, VerifyOptions{})
		Expect(err).Should(Equal(ErrInvalidChallenge))
	})

	It("detects a changed challenge input as InvalidChallenge", func() {
		ciphers := toyCiphers(6)
		transcript, err := Prove(context.Background(), params, ciphers, ProveOptions{Rounds: MinRounds})
		Expect(err).Should(BeNil())

		transcript.CipherCollections[0][0].Alpha = new(big.Int).Add(transcript.CipherCollections[0][0].Alpha, big.NewInt(1))
		transcript.CipherCollections[0][0].Alpha.Mod(transcript.CipherCollections[0][0].Alpha, params.P)

		err = Verify(context.Background(), transcript, VerifyOptions{})
		Expect(err).Should(Equal(ErrInvalidChallenge))
	})

	It("accepts subgroup-valid ciphertexts in StrictMode", func() {
		ciphers := subgroupCiphers(params, 6)
		transcript, err := Prove(context.Background(), params, ciphers, ProveOptions{Rounds: MinRounds})
		Expect(err).Should(BeNil())

		err = Verify(context.Background(), transcript, VerifyOptions{StrictMode: true})
		Expect(err).Should(BeNil())
	})

	It("rejects an out-of-subgroup ciphertext in StrictMode", func() {
		ciphers := subgroupCiphers(params, 6)
		transcript, err := Prove(context.Background(), params, ciphers, ProveOptions{Rounds: MinRounds})
		Expect(err).Should(BeNil())

		// 5 is not a quadratic residue mod 23, so it does not lie in the
		// order-11 subgroup generated by g=2.
		transcript.OriginalCiphers[0].Alpha = big.NewInt(5)

		err = Verify(context.Background(), transcript, VerifyOptions{StrictMode: true})
		Expect(err).Should(Equal(ErrInvalidFormat))
	})

	It("rejects a transcript with mismatched collection lengths before any crypto work", func() {
		ciphers := toyCiphers(4)
		transcript, err := Prove(context.Background(), params, ciphers, ProveOptions{Rounds: MinRounds})
		Expect(err).Should(BeNil())

		transcript.OffsetCollections = transcript.OffsetCollections[:MinRounds-1]
		err = Verify(context.Background(), transcript, VerifyOptions{})
		Expect(err).Should(Equal(ErrInvalidFormat))
	})
})
