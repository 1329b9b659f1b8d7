package render

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/schmitthub/plugin-editions/internal/editions"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

const JSONFileName = "editions.json"

// JSONGenerator writes editions.json: editions grouped by platform version,
// versions ascending, editions sorted by key.
type JSONGenerator struct {
	fs      afero.Fs
	baseURL string
}

func NewJSONGenerator(fs afero.Fs, downloadBaseURL string) *JSONGenerator {
	return &JSONGenerator{fs: fsOrDefault(fs), baseURL: downloadBaseURL}
}

type jsonEdition struct {
	Key               string `json:"key"`
	Name              string `json:"name"`
	TextDescription   string `json:"textDescription"`
	HomeURL           string `json:"homeUrl"`
	LicenseRequestURL string `json:"licenseRequestUrl"`
	DownloadURL       string `json:"downloadUrl,omitempty"`
}

type jsonGroup struct {
	version  versions.Version
	editions []jsonEdition
}

func (g *JSONGenerator) Name() string { return "json" }

func (g *JSONGenerator) Outputs(list []editions.Edition) []string {
	if len(list) == 0 {
		return nil
	}
	return []string{JSONFileName}
}

func (g *JSONGenerator) Generate(outputDir string, list []editions.Edition) error {
	if len(list) == 0 {
		return nil
	}

	path := filepath.Join(outputDir, JSONFileName)
	data, err := g.Encode(list)
	if err != nil {
		return perrors.NewArtifactError(path, "encode editions", err)
	}
	return writeArtifact(g.fs, path, data)
}

// Encode renders the manifest. Object keys are written by hand so their
// order is fixed.
func (g *JSONGenerator) Encode(list []editions.Edition) ([]byte, error) {
	groups := g.group(list)

	buf := bytes.NewBuffer(nil)
	buf.WriteString("{\n")

	for index, group := range groups {
		key, err := marshalJSON(group.version.String(), "")
		if err != nil {
			return nil, err
		}
		value, err := marshalJSON(group.editions, "  ")
		if err != nil {
			return nil, err
		}

		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if index < len(groups)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func (g *JSONGenerator) group(list []editions.Edition) []jsonGroup {
	groups := make([]jsonGroup, 0)
	byLabel := make(map[string]int)

	for _, e := range list {
		label := e.PlatformVersion().String()
		index, ok := byLabel[label]
		if !ok {
			index = len(groups)
			byLabel[label] = index
			groups = append(groups, jsonGroup{version: e.PlatformVersion()})
		}
		groups[index].editions = append(groups[index].editions, jsonEdition{
			Key:               e.Key(),
			Name:              e.Name(),
			TextDescription:   e.TextDescription(),
			HomeURL:           e.HomeURL(),
			LicenseRequestURL: e.LicenseRequestURL(),
			DownloadURL:       e.DownloadURL(g.baseURL),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if c := groups[i].version.Compare(groups[j].version); c != 0 {
			return c < 0
		}
		return groups[i].version.String() < groups[j].version.String()
	})
	for _, group := range groups {
		sort.SliceStable(group.editions, func(i, j int) bool {
			return group.editions[i].Key < group.editions[j].Key
		})
	}

	return groups
}

func marshalJSON(v any, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
