package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List AI providers in the order they are tried",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := loadPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.logger.Sync()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-12s  %s\n", "PROVIDER", "CONFIGURED")
		fmt.Fprintln(out, strings.Repeat("-", 24))
		for _, c := range p.providers.Eligible() {
			fmt.Fprintf(out, "%-12s  %s\n", c.Name(), "yes")
		}
		for _, s := range p.providers.Status() {
			if !s.Configured {
				fmt.Fprintf(out, "%-12s  %s\n", s.Name, "no")
			}
		}
		return nil
	},
}
