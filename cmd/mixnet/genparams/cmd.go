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

// Package genparams implements "mixnet genparams", which generates a fresh
// safe-prime cryptosystem for local development and testing of the mix.
package genparams

import (
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/getamis/mixnet/crypto/elgamal"
)

var Cmd = &cobra.Command{
	Use:   "genparams",
	Short: `Generate a fresh (p, g, q, y) cryptosystem parameter set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bits := viper.GetInt("bits")
		out := viper.GetString("out")

		params, err := elgamal.GenerateParams(elgamal.DefaultSource, bits)
		if err != nil {
			log.Error("Failed to generate params", "err", err)
			return err
		}

		data, err := yaml.Marshal(params)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0600); err != nil {
			return err
		}

		log.Info("Wrote cryptosystem params", "bits", bits, "out", out)
		return nil
	},
}

func init() {
	Cmd.Flags().Int("bits", 2048, "bit length of the safe prime modulus")
	Cmd.Flags().StringP("out", "o", "params.yaml", "output path for the generated params")
}
