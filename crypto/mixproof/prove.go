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
	"io"
	"math/big"

	"github.com/getamis/mixnet/crypto/dispatcher"
	"github.com/getamis/mixnet/crypto/elgamal"
	"github.com/getamis/mixnet/crypto/shuffle"
	"github.com/getamis/mixnet/logger"
)

// ProveOptions configures Prove. The zero value runs MinRounds sequentially
// with a fresh OS-seeded entropy source and no progress reporting.
type ProveOptions struct {
	// Rounds is the number of cut-and-choose auxiliary shuffles. Must be
	// >= MinRounds.
	Rounds int
	// Workers bounds dispatcher concurrency for the auxiliary shuffles;
	// 0 runs them sequentially in the calling goroutine.
	Workers int
	// Source is the entropy source the primary shuffle draws from. Nil
	// defaults to elgamal.DefaultSource (the OS CSPRNG).
	Source io.Reader
	// Seed, if non-nil, makes every auxiliary round's entropy stream a
	// deterministic function of (Seed, round index). Two Prove calls with
	// the same Seed and equally seeded deterministic Sources produce
	// byte-identical transcripts regardless of Workers.
	Seed []byte
	// Reporter observes primary-shuffle progress only; auxiliary round
	// shuffles run inside the dispatcher and report no progress.
	Reporter shuffle.ProgressReporter
}

func (o ProveOptions) rounds() int {
	if o.Rounds == 0 {
		return MinRounds
	}
	return o.Rounds
}

func (o ProveOptions) source() io.Reader {
	if o.Source == nil {
		return elgamal.DefaultSource
	}
	return o.Source
}

// Prove builds a complete MixTranscript: a primary shuffle of ciphersIn,
// Rounds independent auxiliary shuffles of ciphersIn computed via the
// dispatcher, a Fiat–Shamir challenge over the full draft transcript, and
// per-round answers selected by the challenge's bits.
func Prove(ctx context.Context, params *elgamal.CryptosystemParams, ciphersIn CipherVector, opts ProveOptions) (*MixTranscript, error) {
	rounds := opts.rounds()
	if rounds < MinRounds {
		return nil, ErrTooFewRounds
	}

	primary, err := shuffle.Shuffle(opts.source(), params, ciphersIn, shuffle.Options{Reporter: opts.Reporter})
	if err != nil {
		return nil, err
	}
	logger.Logger().Debug("mixproof: primary shuffle complete", "n", len(ciphersIn))

	auxWork := func(ctx context.Context, k int, source io.Reader) (interface{}, error) {
		return shuffle.Shuffle(source, params, ciphersIn, shuffle.Options{})
	}
	rawWitnesses, err := dispatcher.Run(ctx, opts.Workers, rounds, opts.Seed, auxWork)
	if err != nil {
		return nil, err
	}
	logger.Logger().Debug("mixproof: auxiliary shuffles complete", "rounds", rounds)

	collections := make([]CipherVector, rounds)
	offsetCollections := make([][]int, rounds)
	randomCollections := make([][]*big.Int, rounds)
	for k := 0; k < rounds; k++ {
		w := rawWitnesses[k].(*shuffle.Witness)
		collections[k] = w.Ciphers
		offsetCollections[k] = w.Offsets
		randomCollections[k] = w.Randoms
	}

	challenge := computeChallenge(params, ciphersIn, primary.Ciphers, collections)
	challengeVal, ok := challengeInt(challenge)
	if !ok {
		return nil, ErrInvalidChallenge
	}
	nextBit := elgamal.BitIterator(challengeVal)

	for k := 0; k < rounds; k++ {
		switch nextBit() {
		case 0:
			// Leave O_k, S_k as-is: they already witness original -> C_k.
		case 1:
			answerBitOne(params.Q, offsetCollections[k], randomCollections[k], primary.Offsets, primary.Randoms)
		}
	}

	return &MixTranscript{
		Params:            params,
		OriginalCiphers:   ciphersIn,
		MixedCiphers:      primary.Ciphers,
		CipherCollections: collections,
		OffsetCollections: offsetCollections,
		RandomCollections: randomCollections,
		Challenge:         challenge,
	}, nil
}

// answerBitOne composes the round-k witness so it proves C_k -> mixed
// instead of original -> C_k: for each i, cipherOffset = O_k[i] is where
// C_k holds the re-encryption of original[i], and mixedOffset =
// mixedOffsets[i] is where mixed holds the re-encryption of the same
// original[i]. Placing the new witness at cipherOffset maps
// C_k[cipherOffset] -> mixed[mixedOffset] with exponent
// mixedRandoms[i] - randoms[i] (mod q).
func answerBitOne(q *big.Int, offsets []int, randoms []*big.Int, mixedOffsets []int, mixedRandoms []*big.Int) {
	n := len(offsets)
	newOffsets := make([]int, n)
	newRandoms := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		cipherOffset := offsets[i]
		mixedOffset := mixedOffsets[i]
		newOffsets[cipherOffset] = mixedOffset
		newRandoms[cipherOffset] = elgamal.ComposeExponent(q, randoms[i], mixedRandoms[i])
	}
	copy(offsets, newOffsets)
	copy(randoms, newRandoms)
}
