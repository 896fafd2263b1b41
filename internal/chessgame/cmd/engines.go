// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"laptudirm.com/x/chessgame/pkg/game/engines"
)

func Engines() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "Lists the available rules engines",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s:\n\n", color.GreenString("Available Engines"))

			for _, name := range engines.Names() {
				line := fmt.Sprintf("- %s", color.BlueString(name))
				if name == settings.Engine {
					line += " " + color.YellowString("(configured)")
				}

				fmt.Fprintln(w, line)
			}

			return nil
		},
	}
}
