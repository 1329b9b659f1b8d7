package render

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/afero"

	"github.com/schmitthub/plugin-editions/internal/catalog"
	"github.com/schmitthub/plugin-editions/internal/editions"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/output"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

type Options struct {
	Editions           []editions.Edition
	Platforms          *catalog.PlatformCatalog
	OutputDir          string
	JarsDir            string
	DownloadBaseURL    string
	MinPlatformVersion versions.Version
	Cleanup            bool
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// ConfirmWrite is called for every target before anything is written.
	ConfirmWrite func(path string) error
}

type Summary struct {
	Written []string
	Removed []string
}

// staleArtifact matches file names this tool writes into an output directory.
var staleArtifact = regexp.MustCompile(`^(.+-edition-.+\.zip|edition-.+\.html|editions\.json)$`)

// Generators returns the zip, JSON and HTML generators, in that order.
func Generators(opts Options) ([]Generator, error) {
	fs := fsOrDefault(opts.Fs)

	zipGen, err := NewZipGenerator(fs, opts.JarsDir)
	if err != nil {
		return nil, err
	}

	return []Generator{
		zipGen,
		NewJSONGenerator(fs, opts.DownloadBaseURL),
		NewHTMLGenerator(fs, opts.Platforms, opts.DownloadBaseURL, opts.MinPlatformVersion),
	}, nil
}

func Generate(opts Options) (Summary, error) {
	if opts.Platforms == nil {
		return Summary{}, perrors.NewConfigError("catalog", "platform catalog is required", nil)
	}
	generators, err := Generators(opts)
	if err != nil {
		return Summary{}, err
	}
	return Run(opts, generators)
}

// Run writes every generator's artifacts into an existing output directory, in
// generator order, and stops at the first failure. Files already written stay
// on disk.
func Run(opts Options, generators []Generator) (Summary, error) {
	if opts.OutputDir == "" {
		return Summary{}, perrors.NewConfigError("output", "output directory is required", nil)
	}

	fs := fsOrDefault(opts.Fs)
	info, err := fs.Stat(opts.OutputDir)
	if err != nil {
		return Summary{}, perrors.NewConfigError(opts.OutputDir, "output directory does not exist", err)
	}
	if !info.IsDir() {
		return Summary{}, perrors.NewConfigError(opts.OutputDir, "output path is not a directory", nil)
	}

	planned := plannedOutputs(generators, opts.Editions)
	if opts.ConfirmWrite != nil {
		for _, name := range planned {
			if err := opts.ConfirmWrite(filepath.Join(opts.OutputDir, name)); err != nil {
				return Summary{}, err
			}
		}
	}

	for _, gen := range generators {
		output.Debug("running generator", "generator", gen.Name(), "editions", len(opts.Editions))
		if err := gen.Generate(opts.OutputDir, opts.Editions); err != nil {
			return Summary{}, fmt.Errorf("%s generator: %w", gen.Name(), err)
		}
	}

	summary := Summary{Written: planned}

	if opts.Cleanup {
		keep := make(map[string]struct{}, len(planned))
		for _, name := range planned {
			keep[name] = struct{}{}
		}
		removed, err := cleanupObsolete(fs, opts.OutputDir, keep)
		if err != nil {
			return summary, err
		}
		summary.Removed = removed
	}

	return summary, nil
}

func plannedOutputs(generators []Generator, list []editions.Edition) []string {
	out := make([]string, 0)
	for _, gen := range generators {
		planner, ok := gen.(Planner)
		if !ok {
			continue
		}
		out = append(out, planner.Outputs(list)...)
	}
	return out
}

// cleanupObsolete removes edition artifacts from an earlier run that this run
// did not produce. Other files are left alone.
func cleanupObsolete(fs afero.Fs, outputDir string, keep map[string]struct{}) ([]string, error) {
	entries, err := afero.ReadDir(fs, outputDir)
	if err != nil {
		return nil, perrors.NewArtifactError(outputDir, "read output directory for cleanup", err)
	}

	removed := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || !staleArtifact.MatchString(entry.Name()) {
			continue
		}
		if _, ok := keep[entry.Name()]; ok {
			continue
		}

		path := filepath.Join(outputDir, entry.Name())
		if err := fs.Remove(path); err != nil {
			return removed, perrors.NewArtifactError(path, "remove obsolete artifact", err)
		}
		output.Info("removed obsolete artifact", "path", path)
		removed = append(removed, entry.Name())
	}

	sort.Strings(removed)
	return removed, nil
}
