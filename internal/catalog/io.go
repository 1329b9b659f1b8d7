package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

// Catalog is the pair of catalogs read from one catalog file.
type Catalog struct {
	Platform *PlatformCatalog
	Plugins  *PluginCatalog
}

type fileCatalog struct {
	Platform struct {
		Releases []filePlatformRelease `yaml:"releases"`
	} `yaml:"platform"`
	Plugins []filePlugin `yaml:"plugins"`
}

type filePlatformRelease struct {
	Version string `yaml:"version"`
	Date    string `yaml:"date"`
	LTS     bool   `yaml:"lts"`
}

type filePlugin struct {
	Key      string              `yaml:"key"`
	Name     string              `yaml:"name"`
	Releases []filePluginRelease `yaml:"releases"`
}

type filePluginRelease struct {
	Version     string   `yaml:"version"`
	Platforms   []string `yaml:"platforms"`
	Filename    string   `yaml:"filename"`
	DownloadURL string   `yaml:"downloadUrl"`
}

func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, perrors.NewConfigError(path, "read catalog", err)
	}
	return Parse(raw, path)
}

// Parse decodes a catalog document. source names the document in errors.
func Parse(raw []byte, source string) (Catalog, error) {
	var doc fileCatalog

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, perrors.NewConfigError(source, "parse catalog YAML", err)
	}

	platformReleases := make([]PlatformRelease, 0, len(doc.Platform.Releases))
	for _, entry := range doc.Platform.Releases {
		v, err := versions.Parse(entry.Version)
		if err != nil {
			return Catalog{}, perrors.NewConfigError(source, "platform release", err)
		}
		date := strings.TrimSpace(entry.Date)
		if date != "" {
			if _, err := time.Parse(time.DateOnly, date); err != nil {
				return Catalog{}, perrors.NewConfigError(source,
					fmt.Sprintf("platform release %s has invalid date %q", v, date), err)
			}
		}
		platformReleases = append(platformReleases, PlatformRelease{Version: v, Date: date, LTS: entry.LTS})
	}

	platform, err := NewPlatformCatalog(platformReleases)
	if err != nil {
		return Catalog{}, err
	}

	plugins := make([]*Plugin, 0, len(doc.Plugins))
	for _, entry := range doc.Plugins {
		plugin, err := decodePlugin(entry)
		if err != nil {
			return Catalog{}, err
		}
		plugins = append(plugins, plugin)
	}

	pluginCatalog, err := NewPluginCatalog(plugins...)
	if err != nil {
		return Catalog{}, err
	}

	return Catalog{Platform: platform, Plugins: pluginCatalog}, nil
}

func decodePlugin(entry filePlugin) (*Plugin, error) {
	key := strings.TrimSpace(entry.Key)
	releases := make([]PluginRelease, 0, len(entry.Releases))

	for _, rawRelease := range entry.Releases {
		v, err := versions.Parse(rawRelease.Version)
		if err != nil {
			return nil, perrors.NewConfigError(key, fmt.Sprintf("plugin %q release", key), err)
		}

		platforms, err := versions.ParseAll(rawRelease.Platforms)
		if err != nil {
			return nil, perrors.NewConfigError(key,
				fmt.Sprintf("plugin %q release %s platforms", key, v), err)
		}

		downloadURL := strings.TrimSpace(rawRelease.DownloadURL)
		filename := strings.TrimSpace(rawRelease.Filename)
		if filename == "" && downloadURL != "" {
			filename, err = filenameFromURL(downloadURL)
			if err != nil {
				return nil, perrors.NewConfigError(key,
					fmt.Sprintf("plugin %q release %s download URL", key, v), err)
			}
		}

		releases = append(releases, PluginRelease{
			Version:     v,
			Platforms:   platforms,
			Filename:    filename,
			DownloadURL: downloadURL,
		})
	}

	return NewPlugin(key, strings.TrimSpace(entry.Name), releases)
}

// filenameFromURL returns the last path segment of a download URL.
func filenameFromURL(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("no file name in %q", raw)
	}
	return name, nil
}
