package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/schmitthub/plugin-editions/internal/editions"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
)

// ZipGenerator packs each edition's jars into <key>-edition-<platform>.zip.
type ZipGenerator struct {
	fs      afero.Fs
	jarsDir string
}

// NewZipGenerator fails when jarsDir does not exist or is not a directory.
func NewZipGenerator(fs afero.Fs, jarsDir string) (*ZipGenerator, error) {
	fs = fsOrDefault(fs)
	if jarsDir == "" {
		return nil, perrors.NewConfigError("jars_dir", "jar directory is required", nil)
	}
	info, err := fs.Stat(jarsDir)
	if err != nil {
		return nil, perrors.NewConfigError(jarsDir, fmt.Sprintf("jar directory %s does not exist", jarsDir), err)
	}
	if !info.IsDir() {
		return nil, perrors.NewConfigError(jarsDir, fmt.Sprintf("jar directory %s is not a directory", jarsDir), nil)
	}
	return &ZipGenerator{fs: fs, jarsDir: jarsDir}, nil
}

func (g *ZipGenerator) Name() string { return "zip" }

func (g *ZipGenerator) Outputs(list []editions.Edition) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		if e.HasZip() {
			out = append(out, e.ZipFileName())
		}
	}
	return out
}

func (g *ZipGenerator) Generate(outputDir string, list []editions.Edition) error {
	for _, e := range list {
		if !e.HasZip() {
			continue
		}

		data, err := g.archive(e)
		if err != nil {
			return err
		}
		if err := writeArtifact(g.fs, filepath.Join(outputDir, e.ZipFileName()), data); err != nil {
			return err
		}
	}
	return nil
}

// archive builds the zip in memory. Entries carry no timestamps so the same
// jars always give the same bytes.
func (g *ZipGenerator) archive(e editions.Edition) ([]byte, error) {
	jars := e.Jars()
	paths := make([]string, 0, len(jars))
	for _, jar := range jars {
		path := filepath.Join(g.jarsDir, jar)
		info, err := g.fs.Stat(path)
		if err != nil {
			return nil, perrors.NewArtifactError(path,
				fmt.Sprintf("jar %s for edition %s %s is missing", jar, e.Key(), e.PlatformVersion()), err)
		}
		if !info.Mode().IsRegular() {
			return nil, perrors.NewArtifactError(path,
				fmt.Sprintf("jar %s for edition %s %s is not a regular file", jar, e.Key(), e.PlatformVersion()), nil)
		}
		paths = append(paths, path)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, path := range paths {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: filepath.Base(jars[i]), Method: zip.Deflate})
		if err != nil {
			return nil, perrors.NewArtifactError(path, "add zip entry", err)
		}
		if err := g.copyJar(w, path); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, perrors.NewArtifactError(e.ZipFileName(), "finish zip", err)
	}

	return buf.Bytes(), nil
}

func (g *ZipGenerator) copyJar(w io.Writer, path string) error {
	f, err := g.fs.Open(path)
	if err != nil {
		return perrors.NewArtifactError(path, "open jar", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return perrors.NewArtifactError(path, "read jar", err)
	}
	return nil
}
