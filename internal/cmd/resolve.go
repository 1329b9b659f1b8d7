package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/plugin-editions/internal/output"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the editions that would be generated, without writing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := mergedOptions(cmd)
			if err != nil {
				return err
			}

			res, err := resolveEditions(opts)
			if err != nil {
				return err
			}

			if len(res.editions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No editions resolved")
				return nil
			}

			tbl := output.NewTable("EDITION", "PLATFORM", "JARS", "ZIP")
			for _, e := range res.editions {
				zip := e.ZipFileName()
				if zip == "" {
					zip = "-"
				}
				tbl.Row(e.Key(), e.PlatformVersion().String(), strings.Join(e.Jars(), ", "), zip)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
			return nil
		},
	}

	addInputFlags(cmd)

	return cmd
}
