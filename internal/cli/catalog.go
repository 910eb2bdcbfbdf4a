// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/internal/integrand"
	"github.com/katalvlaran/numkit/quadrature"
)

type ruleInfo struct {
	Rule  string `yaml:"rule"`
	Steps string `yaml:"steps"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List quadrature rules and their accepted n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]ruleInfo, 0, len(quadrature.Rules()))
			for _, r := range quadrature.Rules() {
				infos = append(infos, ruleInfo{Rule: r.String(), Steps: quadrature.StepsHint(r)})
			}
			if root.Output == config.OutputYAML {
				return writeYAML(cmd.OutOrStdout(), infos)
			}
			rows := make([][]string, len(infos))
			for i, info := range infos {
				rows[i] = []string{info.Rule, info.Steps}
			}

			return renderTable(cmd.OutOrStdout(), []string{"rule", "n"}, rows)
		},
	}
}

// NewFuncsCommand creates the funcs command.
func NewFuncsCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List builtin integrands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := integrand.Names()
			if root.Output == config.OutputYAML {
				return writeYAML(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
