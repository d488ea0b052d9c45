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

	"github.com/getamis/mixnet/crypto/dispatcher"
	"github.com/getamis/mixnet/crypto/elgamal"
)

// VerifyOptions configures Verify. The zero value checks every round
// sequentially and does not check subgroup membership.
type VerifyOptions struct {
	// Workers bounds dispatcher concurrency across rounds; 0 runs them
	// sequentially. Verification has no RNG draws, so worker entropy
	// seeding is irrelevant here.
	Workers int
	// StrictMode additionally requires every ciphertext component visited
	// during verification (original, mixed, and every round collection)
	// to lie in the order-q subgroup generated by g. The default verifier
	// skips this check — it is a known limitation inherited from the
	// protocol being verified, not an oversight.
	StrictMode bool
}

// Verify recomputes the Fiat–Shamir challenge over transcript and checks
// every round's re-encryption equality under its challenge bit. It returns
// nil only if every round accepts.
func Verify(ctx context.Context, transcript *MixTranscript, opts VerifyOptions) error {
	rounds, err := transcript.Validate()
	if err != nil {
		return err
	}
	params := transcript.Params

	if opts.StrictMode {
		if err := validateSubgroups(params, transcript); err != nil {
			return err
		}
	}

	recomputed := computeChallenge(params, transcript.OriginalCiphers, transcript.MixedCiphers, transcript.CipherCollections)
	if recomputed != transcript.Challenge {
		return ErrInvalidChallenge
	}

	challengeVal, ok := challengeInt(transcript.Challenge)
	if !ok {
		return ErrInvalidChallenge
	}
	nextBit := elgamal.BitIterator(challengeVal)
	bits := make([]int, rounds)
	for k := 0; k < rounds; k++ {
		bits[k] = nextBit()
	}

	n := len(transcript.OriginalCiphers)
	work := func(ctx context.Context, k int, source io.Reader) (interface{}, error) {
		if err := verifyRound(params, transcript, k, bits[k], n); err != nil {
			return nil, err
		}
		return nil, nil
	}
	_, err = dispatcher.Run(ctx, opts.Workers, rounds, nil, work)
	return err
}

// validateSubgroups checks every ciphertext component the verifier touches
// lies in the order-q subgroup generated by g. It fails fast with
// ErrInvalidFormat before any cryptographic equality check runs.
func validateSubgroups(params *elgamal.CryptosystemParams, transcript *MixTranscript) error {
	for _, c := range transcript.OriginalCiphers {
		if err := c.ValidateSubgroup(params); err != nil {
			return ErrInvalidFormat
		}
	}
	for _, c := range transcript.MixedCiphers {
		if err := c.ValidateSubgroup(params); err != nil {
			return ErrInvalidFormat
		}
	}
	for _, collection := range transcript.CipherCollections {
		for _, c := range collection {
			if err := c.ValidateSubgroup(params); err != nil {
				return ErrInvalidFormat
			}
		}
	}
	return nil
}

func verifyRound(params *elgamal.CryptosystemParams, transcript *MixTranscript, k, bit, n int) error {
	offsets := transcript.OffsetCollections[k]
	randoms := transcript.RandomCollections[k]
	collection := transcript.CipherCollections[k]

	for i := 0; i < n; i++ {
		var source elgamal.Ciphertext
		var target CipherVector
		switch bit {
		case 0:
			source = transcript.OriginalCiphers[i]
			target = collection
		case 1:
			source = collection[i]
			target = transcript.MixedCiphers
		default:
			return &RoundMismatchError{Round: k, Index: i, Bit: bit}
		}

		reencrypted, _, err := elgamal.Reencrypt(nil, params, source, randoms[i])
		if err != nil {
			return err
		}
		if !target[offsets[i]].Equal(reencrypted) {
			return &RoundMismatchError{Round: k, Index: i, Bit: bit}
		}
	}
	return nil
}
