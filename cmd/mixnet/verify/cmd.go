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

// Package verify implements "mixnet verify", which checks a published mix
// transcript's Sako-Kilian proof.
package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/mixnet/crypto/mixproof"
)

var Cmd = &cobra.Command{
	Use:   "verify",
	Short: `Verify a mix transcript's proof of shuffle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("transcript")
		workers := viper.GetInt("workers")
		strict := viper.GetBool("strict")

		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("Failed to read transcript", "err", err)
			return err
		}

		var transcript mixproof.MixTranscript
		if err := json.Unmarshal(data, &transcript); err != nil {
			log.Error("Failed to parse transcript", "err", err)
			return err
		}

		opts := mixproof.VerifyOptions{Workers: workers, StrictMode: strict}
		if err := mixproof.Verify(context.Background(), &transcript, opts); err != nil {
			var mismatch *mixproof.RoundMismatchError
			if errors.As(err, &mismatch) {
				log.Error("Verification failed", "round", mismatch.Round, "index", mismatch.Index, "bit", mismatch.Bit)
			} else {
				log.Error("Verification failed", "err", err)
			}
			return err
		}

		fmt.Println("OK")
		return nil
	},
}

func init() {
	Cmd.Flags().String("transcript", "transcript.json", "path to the mix transcript to verify")
	Cmd.Flags().Int("workers", 0, "parallel worker count (0 = sequential)")
	Cmd.Flags().Bool("strict", false, "additionally require every ciphertext to lie in the order-q subgroup")
}
