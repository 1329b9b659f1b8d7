package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the plugin jars the resolved editions need",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := mergedOptions(cmd)
			if err != nil {
				return err
			}

			res, err := resolveEditions(opts)
			if err != nil {
				return err
			}

			result, err := fetchJars(cmd.Context(), opts, res)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %d jars, %d already present in %s\n",
				len(result.Downloaded), len(result.Cached), opts.JarsDir)
			return nil
		},
	}

	addInputFlags(cmd)
	addJarsFlag(cmd)
	cmd.Flags().BoolVar(&rootOpts.Force, "force", false, "Download jars even when already present")

	return cmd
}
