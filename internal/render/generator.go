package render

import (
	"github.com/spf13/afero"

	"github.com/schmitthub/plugin-editions/internal/editions"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/output"
)

// Generator writes one kind of artifact for a resolved edition list.
type Generator interface {
	Name() string
	Generate(outputDir string, list []editions.Edition) error
}

// Planner is implemented by generators that can name the files they would
// write, relative to the output directory, without writing them.
type Planner interface {
	Outputs(list []editions.Edition) []string
}

func fsOrDefault(fs afero.Fs) afero.Fs {
	if fs == nil {
		return afero.NewOsFs()
	}
	return fs
}

// writeArtifact replaces path with data in full.
func writeArtifact(fs afero.Fs, path string, data []byte) error {
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return perrors.NewArtifactError(path, "write artifact", err)
	}
	output.Info("wrote artifact", "path", path)
	return nil
}
