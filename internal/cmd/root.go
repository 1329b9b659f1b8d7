package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/plugin-editions/internal/config"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/output"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

const (
	envPrefix                 = "PLUGIN_EDITIONS_"
	defaultMinPlatformVersion = "6.6"
)

type runtimeOptions struct {
	ConfigPath         string
	Catalog            string
	Editions           string
	JarsDir            string
	OutputDir          string
	DownloadBaseURL    string
	MinPlatformVersion string
	Cleanup            bool
	Fetch              bool
	Force              bool
	Debug              bool
	Yes                bool
}

var rootOpts runtimeOptions

func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	rootOpts = runtimeOptions{}
	showVersion := false

	cmd := &cobra.Command{
		Use:           "plugin-editions",
		Short:         "Resolve plugin editions per platform release and render their artifacts",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprint(cmd.OutOrStdout(), formatVersion(buildVersion, buildDate))
				return nil
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigPath, "config", "f", "", "Path to YAML config file")
	cmd.Flags().BoolVar(&showVersion, "version", false, "Print CLI version")
	cmd.PersistentFlags().BoolVar(&rootOpts.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Yes, "yes", "y", false, "Overwrite existing files without prompting")

	cmd.AddCommand(newVersionCmd(buildVersion, buildDate))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newFetchCmd())

	return cmd
}

// addInputFlags registers the catalog and template inputs every resolving
// command reads.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rootOpts.Catalog, "catalog", "", "Path to the platform and plugin catalog YAML")
	cmd.Flags().StringVar(&rootOpts.Editions, "editions", "", "Path to the edition templates YAML")
}

func addJarsFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rootOpts.JarsDir, "jars-dir", "", "Directory holding the plugin jars")
}

func mergedOptions(cmd *cobra.Command) (runtimeOptions, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return runtimeOptions{}, fmt.Errorf("get cwd: %w", err)
	}

	merged := runtimeOptions{
		ConfigPath:         rootOpts.ConfigPath,
		Catalog:            filepath.Join(cwd, "catalog.yaml"),
		Editions:           filepath.Join(cwd, "editions.yaml"),
		JarsDir:            filepath.Join(cwd, "jars"),
		OutputDir:          filepath.Join(cwd, "editions-out"),
		DownloadBaseURL:    "",
		MinPlatformVersion: defaultMinPlatformVersion,
	}

	if rootOpts.ConfigPath != "" {
		fileCfg, err := config.Load(rootOpts.ConfigPath)
		if err != nil {
			return runtimeOptions{}, err
		}

		if fileCfg.Catalog != "" {
			merged.Catalog = fileCfg.Catalog
		}
		if fileCfg.Editions != "" {
			merged.Editions = fileCfg.Editions
		}
		if fileCfg.JarsDir != "" {
			merged.JarsDir = fileCfg.JarsDir
		}
		if fileCfg.OutputDir != "" {
			merged.OutputDir = fileCfg.OutputDir
		}
		if fileCfg.DownloadBaseURL != "" {
			merged.DownloadBaseURL = fileCfg.DownloadBaseURL
		}
		if fileCfg.MinPlatformVersion != "" {
			merged.MinPlatformVersion = fileCfg.MinPlatformVersion
		}
		if fileCfg.Cleanup != nil {
			merged.Cleanup = *fileCfg.Cleanup
		}
		if fileCfg.Fetch != nil {
			merged.Fetch = *fileCfg.Fetch
		}
		if fileCfg.Debug != nil {
			merged.Debug = *fileCfg.Debug
		}
	}

	if err := applyEnvOverrides(&merged); err != nil {
		return runtimeOptions{}, err
	}

	if cmd.Flags().Changed("catalog") {
		merged.Catalog = rootOpts.Catalog
	}
	if cmd.Flags().Changed("editions") {
		merged.Editions = rootOpts.Editions
	}
	if cmd.Flags().Changed("jars-dir") {
		merged.JarsDir = rootOpts.JarsDir
	}
	if cmd.Flags().Changed("output") {
		merged.OutputDir = rootOpts.OutputDir
	}
	if cmd.Flags().Changed("download-base-url") {
		merged.DownloadBaseURL = rootOpts.DownloadBaseURL
	}
	if cmd.Flags().Changed("min-platform-version") {
		merged.MinPlatformVersion = rootOpts.MinPlatformVersion
	}
	if cmd.Flags().Changed("cleanup") {
		merged.Cleanup = rootOpts.Cleanup
	}
	if cmd.Flags().Changed("fetch") {
		merged.Fetch = rootOpts.Fetch
	}
	if cmd.Flags().Changed("force") {
		merged.Force = rootOpts.Force
	}
	if cmd.Flags().Changed("debug") {
		merged.Debug = rootOpts.Debug
	}
	if cmd.Flags().Changed("yes") {
		merged.Yes = rootOpts.Yes
	}

	merged.Catalog = strings.TrimSpace(merged.Catalog)
	merged.Editions = strings.TrimSpace(merged.Editions)
	merged.JarsDir = strings.TrimSpace(merged.JarsDir)
	merged.OutputDir = strings.TrimSpace(merged.OutputDir)
	merged.DownloadBaseURL = strings.TrimSpace(merged.DownloadBaseURL)
	merged.MinPlatformVersion = strings.TrimSpace(merged.MinPlatformVersion)

	output.SetupLogging(merged.Debug)

	return merged, nil
}

// minPlatformVersion parses the display floor; an empty value disables it.
func (o runtimeOptions) minPlatformVersion() (versions.Version, error) {
	if o.MinPlatformVersion == "" {
		return versions.Version{}, nil
	}
	v, err := versions.Parse(o.MinPlatformVersion)
	if err != nil {
		return versions.Version{}, perrors.NewConfigError("min_platform_version", "invalid minimum platform version", err)
	}
	return v, nil
}

func applyEnvOverrides(opts *runtimeOptions) error {
	if value, ok := getenvTrim(envPrefix + "CATALOG"); ok {
		opts.Catalog = value
	}
	if value, ok := getenvTrim(envPrefix + "EDITIONS"); ok {
		opts.Editions = value
	}
	if value, ok := getenvTrim(envPrefix + "JARS_DIR"); ok {
		opts.JarsDir = value
	}
	if value, ok := getenvTrim(envPrefix + "OUTPUT"); ok {
		opts.OutputDir = value
	}
	if value, ok := getenvTrim(envPrefix + "DOWNLOAD_BASE_URL"); ok {
		opts.DownloadBaseURL = value
	}
	if value, ok := getenvTrim(envPrefix + "MIN_PLATFORM_VERSION"); ok {
		opts.MinPlatformVersion = value
	}

	boolEnvs := []struct {
		name   string
		target *bool
	}{
		{envPrefix + "CLEANUP", &opts.Cleanup},
		{envPrefix + "FETCH", &opts.Fetch},
		{envPrefix + "DEBUG", &opts.Debug},
		{envPrefix + "YES", &opts.Yes},
	}
	for _, env := range boolEnvs {
		value, ok := getenvTrim(env.name)
		if !ok {
			continue
		}
		parsed, err := parseBoolEnv(env.name, value)
		if err != nil {
			return err
		}
		*env.target = parsed
	}
	return nil
}

func getenvTrim(name string) (string, bool) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func parseBoolEnv(name, raw string) (bool, error) {
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, perrors.NewConfigError(name, fmt.Sprintf("parse %s as bool", name), err)
	}
	return parsed, nil
}
