package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/plugin-editions/internal/build"
)

func newVersionCmd(version, buildDate string) *cobra.Command {
	short := false

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build version information",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), normalizeVersion(version))
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), formatVersion(version, buildDate))
			if build.Revision != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "revision %s\n", build.Revision)
			}
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")

	return cmd
}

func normalizeVersion(version string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" {
		return "DEV"
	}
	return version
}

func formatVersion(version, buildDate string) string {
	version = normalizeVersion(version)
	if strings.TrimSpace(buildDate) != "" {
		return fmt.Sprintf("plugin-editions version %s (%s)\n", version, strings.TrimSpace(buildDate))
	}
	return fmt.Sprintf("plugin-editions version %s\n", version)
}
