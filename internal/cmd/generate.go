package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/plugin-editions/internal/render"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve editions and write their zips, editions.json and HTML pages",
		RunE:  runGenerate,
	}

	addInputFlags(cmd)
	addJarsFlag(cmd)
	cmd.Flags().StringVarP(&rootOpts.OutputDir, "output", "o", "", "Output directory for generated artifacts")
	cmd.Flags().StringVar(&rootOpts.DownloadBaseURL, "download-base-url", "", "Base URL the edition zips are published under")
	cmd.Flags().StringVar(&rootOpts.MinPlatformVersion, "min-platform-version", "", "Oldest platform version shown on HTML pages (default 6.6)")
	cmd.Flags().BoolVar(&rootOpts.Cleanup, "cleanup", false, "Remove edition artifacts this run did not produce")
	cmd.Flags().BoolVar(&rootOpts.Fetch, "fetch", false, "Download missing jars into the jar directory first")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts, err := mergedOptions(cmd)
	if err != nil {
		return err
	}

	floor, err := opts.minPlatformVersion()
	if err != nil {
		return err
	}

	res, err := resolveEditions(opts)
	if err != nil {
		return err
	}

	if opts.Fetch {
		if _, err := fetchJars(cmd.Context(), opts, res); err != nil {
			return err
		}
	}

	prompter := newWritePrompter(cmd, opts.Yes)
	summary, err := render.Generate(render.Options{
		Editions:           res.editions,
		Platforms:          res.catalog.Platform,
		OutputDir:          opts.OutputDir,
		JarsDir:            opts.JarsDir,
		DownloadBaseURL:    opts.DownloadBaseURL,
		MinPlatformVersion: floor,
		Cleanup:            opts.Cleanup,
		ConfirmWrite:       prompter.confirmWrite,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d editions (%d files) in %s\n", len(res.editions), len(summary.Written), opts.OutputDir)
	if len(summary.Removed) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d obsolete files\n", len(summary.Removed))
	}
	return nil
}
