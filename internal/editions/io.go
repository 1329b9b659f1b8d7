package editions

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	perrors "github.com/schmitthub/plugin-editions/internal/errors"
)

type fileTemplates struct {
	Editions []fileTemplate `yaml:"editions"`
}

type fileTemplate struct {
	Key               string   `yaml:"key"`
	Name              string   `yaml:"name"`
	TextDescription   string   `yaml:"textDescription"`
	HomeURL           string   `yaml:"homeUrl"`
	LicenseRequestURL string   `yaml:"requestLicenseUrl"`
	Plugins           []string `yaml:"plugins"`
}

func LoadTemplates(path string) ([]Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, perrors.NewConfigError(path, "read editions", err)
	}
	return ParseTemplates(raw, path)
}

// ParseTemplates decodes an editions document, keeping declaration order.
func ParseTemplates(raw []byte, source string) ([]Template, error) {
	var doc fileTemplates

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, perrors.NewConfigError(source, "parse editions YAML", err)
	}

	out := make([]Template, 0, len(doc.Editions))
	seen := make(map[string]struct{}, len(doc.Editions))
	for _, entry := range doc.Editions {
		plugins := make([]string, 0, len(entry.Plugins))
		for _, key := range entry.Plugins {
			plugins = append(plugins, strings.TrimSpace(key))
		}

		t := Template{
			Key:               strings.TrimSpace(entry.Key),
			Name:              strings.TrimSpace(entry.Name),
			TextDescription:   strings.TrimSpace(entry.TextDescription),
			HomeURL:           strings.TrimSpace(entry.HomeURL),
			LicenseRequestURL: strings.TrimSpace(entry.LicenseRequestURL),
			Plugins:           plugins,
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[t.Key]; dup {
			return nil, perrors.NewConfigError(t.Key, fmt.Sprintf("edition %q is declared twice", t.Key), nil)
		}
		seen[t.Key] = struct{}{}
		out = append(out, t)
	}

	return out, nil
}
