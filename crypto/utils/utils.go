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

package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var (
	// maxGenPrimeInt defines the max retries to generate a coprime int by reject sampling
	maxGenPrimeInt = 100

	// ErrLessOrEqualBig2 is returned if the field order is less than or equal to 2
	ErrLessOrEqualBig2 = errors.New("less 2")
	// ErrExceedMaxRetry is returned if we retried over times
	ErrExceedMaxRetry = errors.New("exceed max retries")
	// ErrInvalidInput is returned if the input is invalid
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotInRange is returned if the value is not in the given range.
	ErrNotInRange = errors.New("not in range")
	// ErrLargerFloor is returned if the floor is larger than ceil.
	ErrLargerFloor = errors.New("larger floor")
	// ErrEmptySlice is returned if the length of slice is zero.
	ErrEmptySlice = errors.New("empty slice")
	// ErrSmallSafePrime is returned if the safePrime < 2^10.
	ErrSmallSafePrime = errors.New("safe-prime size must be at least 10-bit")

	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big4 = big.NewInt(4)
)

// EnsureFieldOrder ensures the field order should be more than 2.
func EnsureFieldOrder(fieldOrder *big.Int) error {
	if fieldOrder.Cmp(big2) <= 0 {
		return ErrLessOrEqualBig2
	}
	return nil
}

// RandomIntFrom generates a random number in [0, n) using the given entropy source.
// Passing rand.Reader reproduces non-deterministic behavior; a deterministic
// io.Reader (e.g. an HKDF expansion) makes the draw reproducible.
func RandomIntFrom(source io.Reader, n *big.Int) (*big.Int, error) {
	return rand.Int(source, n)
}

// RandomInt generates a random number in [0, n) from the OS CSPRNG.
func RandomInt(n *big.Int) (*big.Int, error) {
	return RandomIntFrom(rand.Reader, n)
}

// RandomPositiveIntFrom generates a random number in [1, n) using the given entropy source.
func RandomPositiveIntFrom(source io.Reader, n *big.Int) (*big.Int, error) {
	x, err := RandomIntFrom(source, new(big.Int).Sub(n, big1))
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(x, big1), nil
}

// RandomPositiveInt generates a random number in [1, n) from the OS CSPRNG.
func RandomPositiveInt(n *big.Int) (*big.Int, error) {
	return RandomPositiveIntFrom(rand.Reader, n)
}

// RandomCoprimeInt generates a random relative prime number in [2, n)
func RandomCoprimeInt(n *big.Int) (*big.Int, error) {
	if n.Cmp(big2) <= 0 {
		return nil, ErrLessOrEqualBig2
	}
	for i := 0; i < maxGenPrimeInt; i++ {
		r, err := RandomInt(n)
		if err != nil {
			return nil, err
		}
		// Try again if r == 0 or 1
		if r.Cmp(big1) <= 0 {
			continue
		}
		if IsRelativePrime(r, n) {
			return r, nil
		}
	}

	return nil, ErrExceedMaxRetry
}

// IsRelativePrime returns if a and b are relative primes
func IsRelativePrime(a *big.Int, b *big.Int) bool {
	return Gcd(a, b).Cmp(big1) == 0
}

// Gcd calculates greatest common divisor (GCD) via Euclidean algorithm
func Gcd(a *big.Int, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// InRange checks if the checkValue is in [floor, ceil).
func InRange(checkValue *big.Int, floor *big.Int, ceil *big.Int) error {
	if ceil.Cmp(floor) < 1 {
		return ErrLargerFloor
	}
	if checkValue.Cmp(floor) < 0 {
		return ErrNotInRange
	}
	if checkValue.Cmp(ceil) > -1 {
		return ErrNotInRange
	}
	return nil
}

// GenRandomBytes generates a random byte array of the given length.
func GenRandomBytes(size int) ([]byte, error) {
	if size < 1 {
		return nil, ErrEmptySlice
	}
	randomByte := make([]byte, size)
	_, err := rand.Read(randomByte)
	if err != nil {
		return nil, err
	}
	return randomByte, nil
}
