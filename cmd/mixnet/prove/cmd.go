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

// Package prove implements "mixnet prove", which shuffles and re-encrypts
// a ciphertext batch and emits a verifiable mix transcript.
package prove

import (
	"context"
	"encoding/json"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/getamis/mixnet/crypto/elgamal"
	"github.com/getamis/mixnet/crypto/mixproof"
)

var Cmd = &cobra.Command{
	Use:   "prove",
	Short: `Shuffle and re-encrypt a ciphertext batch, producing a mix transcript with its Sako-Kilian proof.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paramsPath := viper.GetString("params")
		ciphersPath := viper.GetString("ciphers")
		rounds := viper.GetInt("rounds")
		workers := viper.GetInt("workers")
		out := viper.GetString("out")

		params, err := loadParams(paramsPath)
		if err != nil {
			log.Error("Failed to load params", "err", err)
			return err
		}

		ciphers, err := loadCiphers(ciphersPath)
		if err != nil {
			log.Error("Failed to load ciphers", "err", err)
			return err
		}

		transcript, err := mixproof.Prove(context.Background(), params, ciphers, mixproof.ProveOptions{
			Rounds:  rounds,
			Workers: workers,
		})
		if err != nil {
			log.Error("Failed to build mix transcript", "err", err)
			return err
		}

		data, err := json.MarshalIndent(transcript, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0600); err != nil {
			return err
		}

		log.Info("Wrote mix transcript", "n", len(ciphers), "rounds", rounds, "out", out)
		return nil
	},
}

func init() {
	Cmd.Flags().String("params", "params.yaml", "path to a CryptosystemParams YAML file")
	Cmd.Flags().String("ciphers", "", "path to a JSON file holding the input ciphertext batch")
	Cmd.Flags().Int("rounds", mixproof.MinRounds, "number of cut-and-choose auxiliary rounds")
	Cmd.Flags().Int("workers", 0, "parallel worker count (0 = sequential)")
	Cmd.Flags().StringP("out", "o", "transcript.json", "output path for the mix transcript")
	_ = Cmd.MarkFlagRequired("ciphers")
}

func loadParams(path string) (*elgamal.CryptosystemParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var params elgamal.CryptosystemParams
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func loadCiphers(path string) (mixproof.CipherVector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ciphers mixproof.CipherVector
	if err := json.Unmarshal(data, &ciphers); err != nil {
		return nil, err
	}
	return ciphers, nil
}
