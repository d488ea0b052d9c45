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

// Package dispatcher fans out an indexed work list across a bounded worker
// pool, preserving input order in the result and giving every worker its
// own independently seeded entropy stream.
package dispatcher

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/sync/errgroup"

	"github.com/getamis/mixnet/crypto/elgamal"
)

// Work is the unit of work dispatched for index i: given an entropy source
// seeded independently for i, it returns the index's result or an error.
type Work func(ctx context.Context, index int, source io.Reader) (interface{}, error)

// Run executes fn for every index in [0, n), returning results in input
// order. seed, if non-nil, makes every worker's entropy stream a
// deterministic function of (seed, index) via DeterministicWorkerSource —
// pass nil to seed each worker straight from the OS CSPRNG.
//
// workers = 0 runs sequentially in the calling goroutine. workers > 0 bounds
// concurrency to that many goroutines regardless of n. If any invocation of
// fn returns an error, the first such error is returned, pending work is
// abandoned, and the partial results slice is discarded (nil).
func Run(ctx context.Context, workers int, n int, seed []byte, fn Work) ([]interface{}, error) {
	results := make([]interface{}, n)

	if workers <= 0 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := fn(ctx, i, DeterministicWorkerSource(seed, i))
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)
	for i := 0; i < n; i++ {
		i := i
		if err := gctx.Err(); err != nil {
			_ = g.Wait()
			return nil, err
		}
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			_ = g.Wait()
			return nil, gctx.Err()
		}
		g.Go(func() error {
			defer func() { <-sem }()
			r, err := fn(gctx, i, DeterministicWorkerSource(seed, i))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A Work func that doesn't itself observe ctx can still complete every
	// item successfully after the caller cancelled; don't report success
	// in that case.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// DeterministicWorkerSource derives worker index's entropy stream. With a
// nil seed it is freshly reseeded from the OS CSPRNG, independent of every
// other worker and of the calling goroutine — this is the Go-native
// equivalent of forcing an RNG reseed inside a forked worker process.
// With a non-nil seed, the same (seed, index) pair always yields the same
// stream, which is what lets prover runs be byte-identical across worker
// counts for a fixed seed.
func DeterministicWorkerSource(seed []byte, index int) io.Reader {
	if seed == nil {
		// crypto/rand.Reader is safe for concurrent use by multiple
		// goroutines; each worker reads directly from OS entropy rather
		// than from any state shared with the dispatching goroutine.
		return elgamal.DefaultSource
	}
	label := make([]byte, 8)
	binary.LittleEndian.PutUint64(label, uint64(index))
	return hkdf.New(sha256.New, seed, nil, label)
}
