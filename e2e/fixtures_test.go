package test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const cobolGovernanceCatalog = `
platform:
  releases:
    - version: "5.6"
      date: "2016-10-31"
    - version: "6.7"
      date: "2017-11-08"
      lts: true
    - version: "7.0"
      date: "2018-01-15"
plugins:
  - key: cobol
    name: COBOL
    releases:
      - version: "1.0"
        platforms: ["5.6"]
        filename: cobol-1.0.jar
      - version: "1.1"
        platforms: ["6.7", "7.0"]
        filename: cobol-1.1.jar
  - key: governance
    name: Governance
    releases:
      - version: "1.0"
        platforms: ["6.7"]
        filename: governance-1.0.jar
      - version: "2.0"
        platforms: ["7.0"]
        filename: governance-2.0.jar
`

const enterpriseEditions = `
editions:
  - key: enterprise
    name: Enterprise Edition
    textDescription: COBOL and governance
    homeUrl: https://example.com/enterprise
    requestLicenseUrl: https://example.com/enterprise/license
    plugins: [cobol, governance]
`

var allJars = map[string]string{
	"cobol-1.0.jar":      "cobol 1.0",
	"cobol-1.1.jar":      "cobol 1.1",
	"governance-1.0.jar": "governance 1.0",
	"governance-2.0.jar": "governance 2.0",
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

type zipEntry struct {
	Name    string
	Content string
}

func readZip(t *testing.T, path string) []zipEntry {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open zip %s: %v", path, err)
	}
	defer r.Close()

	out := make([]zipEntry, 0, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		out = append(out, zipEntry{f.Name, string(content)})
	}
	return out
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

func outputPath(dir, name string) string {
	return filepath.Join(dir, name)
}
