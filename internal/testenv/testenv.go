// Package testenv provides isolated test environments: a temp root with
// empty jar and output directories, plus optional catalog, editions and
// config files written into it.
//
// Usage:
//
//	env := testenv.New(t,
//		testenv.WithCatalog(catalogYAML),
//		testenv.WithEditions(editionsYAML),
//		testenv.WithJars(map[string]string{"cobol-1.1.jar": "..."}),
//	)
//	env.Dirs.Jars    // jar directory
//	env.Dirs.Output  // output directory
//	env.CatalogPath  // written catalog file
package testenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/plugin-editions/internal/config"
)

// IsolatedDirs holds the directory paths created for the test.
type IsolatedDirs struct {
	Base   string // temp root (parent of all dirs)
	Jars   string //
	Output string //
}

// Env is a unified test environment with isolated directories and optional
// input files.
type Env struct {
	Dirs         IsolatedDirs
	CatalogPath  string
	EditionsPath string
	ConfigPath   string
	Config       *config.FileConfig
}

// Option configures an Env during construction.
type Option func(t *testing.T, e *Env)

// WithConfig writes a config file and parses it into Env.Config.
func WithConfig(yaml string) Option {
	return func(t *testing.T, e *Env) {
		t.Helper()
		cfg, err := config.FromString(yaml)
		if err != nil {
			t.Fatalf("testenv: creating config: %v", err)
		}
		e.Config = &cfg
		e.ConfigPath = writeFile(t, e.Dirs.Base, "plugin-editions.yaml", yaml)
	}
}

func WithCatalog(yaml string) Option {
	return func(t *testing.T, e *Env) {
		t.Helper()
		e.CatalogPath = writeFile(t, e.Dirs.Base, "catalog.yaml", yaml)
	}
}

func WithEditions(yaml string) Option {
	return func(t *testing.T, e *Env) {
		t.Helper()
		e.EditionsPath = writeFile(t, e.Dirs.Base, "editions.yaml", yaml)
	}
}

// WithJars writes jar files, keyed by file name, into the jar directory.
func WithJars(jars map[string]string) Option {
	return func(t *testing.T, e *Env) {
		t.Helper()
		for name, content := range jars {
			writeFile(t, e.Dirs.Jars, name, content)
		}
	}
}

// New creates an isolated test environment. It:
//  1. Creates a temp directory with jars and out subdirectories
//  2. Applies any options (e.g. WithCatalog)
func New(t *testing.T, opts ...Option) *Env {
	t.Helper()

	// Resolve symlinks on the base temp dir so paths match os.Getwd()
	// after chdir (macOS: /var → /private/var).
	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("testenv: resolving temp dir symlinks: %v", err)
	}

	dirs := IsolatedDirs{
		Base:   base,
		Jars:   filepath.Join(base, "jars"),
		Output: filepath.Join(base, "out"),
	}

	for _, dir := range []string{dirs.Jars, dirs.Output} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("testenv: creating dir %s: %v", dir, err)
		}
	}

	env := &Env{Dirs: dirs}

	for _, opt := range opts {
		opt(t, env)
	}

	return env
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testenv: writing %s: %v", path, err)
	}
	return path
}
