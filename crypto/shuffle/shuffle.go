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

// Package shuffle produces a uniformly permuted re-encryption of a
// ciphertext vector together with the permutation and randomness that
// witness it, the building block both the prover's primary mix and its
// auxiliary rounds are made of.
package shuffle

import (
	"io"
	"math/big"

	"github.com/getamis/mixnet/crypto/elgamal"
)

// DefaultReportThreshold is how many ciphertexts a Shuffle call processes
// between ProgressReporter.Advance calls, bounding synchronization overhead
// for large batches without making progress reporting per-element.
const DefaultReportThreshold = 128

// ProgressReporter observes shuffle progress. It has no bearing whatsoever
// on the cryptographic output; a nil ProgressReporter (see NoopReporter) is
// always safe to pass.
type ProgressReporter interface {
	// Advance reports that delta more ciphertexts have been processed.
	Advance(delta int)
}

// NoopReporter is a ProgressReporter that discards every call.
type NoopReporter struct{}

// Advance implements ProgressReporter.
func (NoopReporter) Advance(int) {}

// Witness is the bundle (ciphers', offsets, randoms) produced by a shuffle:
// ciphers'[offsets[i]] is the re-encryption of ciphers[i] under randoms[i].
type Witness struct {
	Ciphers []elgamal.Ciphertext
	Offsets []int
	Randoms []*big.Int
}

// Options configures a Shuffle call. The zero value is valid: it reports to
// no one and batches progress at DefaultReportThreshold.
type Options struct {
	Reporter     ProgressReporter
	ReportThresh int
}

func (o Options) reporter() ProgressReporter {
	if o.Reporter == nil {
		return NoopReporter{}
	}
	return o.Reporter
}

func (o Options) reportThresh() int {
	if o.ReportThresh <= 0 {
		return DefaultReportThreshold
	}
	return o.ReportThresh
}

// Shuffle draws a uniform permutation of [0, n) and re-encrypts every
// ciphertext under params, writing each result to its permuted position.
// n = 0 returns empty vectors; n = 1 is not short-circuited: it still goes
// through RandomPermutation (which returns the identity without drawing)
// and draws a fresh re-encryption exponent.
func Shuffle(source io.Reader, params *elgamal.CryptosystemParams, ciphers []elgamal.Ciphertext, opts Options) (*Witness, error) {
	n := len(ciphers)
	offsets, err := elgamal.RandomPermutation(source, n)
	if err != nil {
		return nil, err
	}

	reporter := opts.reporter()
	thresh := opts.reportThresh()

	mixedCiphers := make([]elgamal.Ciphertext, n)
	randoms := make([]*big.Int, n)
	sinceReport := 0
	for i := 0; i < n; i++ {
		mixed, r, err := elgamal.Reencrypt(source, params, ciphers[i], nil)
		if err != nil {
			return nil, err
		}
		randoms[i] = r
		mixedCiphers[offsets[i]] = mixed

		sinceReport++
		if sinceReport >= thresh {
			reporter.Advance(sinceReport)
			sinceReport = 0
		}
	}
	if sinceReport > 0 {
		reporter.Advance(sinceReport)
	}

	return &Witness{
		Ciphers: mixedCiphers,
		Offsets: offsets,
		Randoms: randoms,
	}, nil
}
