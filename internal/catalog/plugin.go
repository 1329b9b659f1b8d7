package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

type PluginRelease struct {
	Version versions.Version
	// Platforms is the explicit set of platform versions this release runs on.
	Platforms []versions.Version
	// Filename is the jar base name inside the jar directory.
	Filename    string
	DownloadURL string
}

// Supports reports exact membership of v in the compatibility set.
func (r PluginRelease) Supports(v versions.Version) bool {
	return versions.Contains(r.Platforms, v)
}

type Plugin struct {
	Key      string
	Name     string
	releases []PluginRelease
}

// NewPlugin validates and sorts a plugin's releases. Name defaults to key.
func NewPlugin(key, name string, releases []PluginRelease) (*Plugin, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, perrors.NewConfigError("plugins", "plugin without a key", nil)
	}

	sorted := make([]PluginRelease, 0, len(releases))
	for _, release := range releases {
		if release.Version.IsZero() {
			return nil, perrors.NewConfigError(key, fmt.Sprintf("plugin %q has a release without a version", key), nil)
		}
		if release.Filename == "" {
			return nil, perrors.NewConfigError(key,
				fmt.Sprintf("plugin %q release %s has no jar filename", key, release.Version), nil)
		}
		if filepath.Base(release.Filename) != release.Filename {
			return nil, perrors.NewConfigError(key,
				fmt.Sprintf("plugin %q release %s jar filename %q must be a base name", key, release.Version, release.Filename), nil)
		}
		for _, existing := range sorted {
			if existing.Version.Equal(release.Version) {
				return nil, perrors.NewConfigError(key,
					fmt.Sprintf("plugin %q declares release %s twice", key, release.Version), nil)
			}
		}
		release.Platforms = append([]versions.Version(nil), release.Platforms...)
		sorted = append(sorted, release)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Version.LessThan(sorted[j].Version)
	})

	if name == "" {
		name = key
	}
	return &Plugin{Key: key, Name: name, releases: sorted}, nil
}

// Releases returns the plugin releases in ascending version order.
func (p *Plugin) Releases() []PluginRelease {
	return append([]PluginRelease(nil), p.releases...)
}

// LatestCompatible returns the highest release whose compatibility set
// contains v. The boolean is false when no release does; that is a gap, not
// an error.
func (p *Plugin) LatestCompatible(v versions.Version) (PluginRelease, bool) {
	for i := len(p.releases) - 1; i >= 0; i-- {
		if p.releases[i].Supports(v) {
			return p.releases[i], true
		}
	}
	return PluginRelease{}, false
}

// Artifact is one downloadable jar of the catalog.
type Artifact struct {
	PluginKey   string
	Version     versions.Version
	Filename    string
	DownloadURL string
}

// PluginCatalog indexes plugins by key.
type PluginCatalog struct {
	plugins map[string]*Plugin
}

// NewPluginCatalog indexes plugins by key; duplicate keys are rejected.
func NewPluginCatalog(plugins ...*Plugin) (*PluginCatalog, error) {
	index := make(map[string]*Plugin, len(plugins))
	for _, plugin := range plugins {
		if plugin == nil {
			continue
		}
		if _, dup := index[plugin.Key]; dup {
			return nil, perrors.NewConfigError(plugin.Key, fmt.Sprintf("plugin %q is declared twice", plugin.Key), nil)
		}
		index[plugin.Key] = plugin
	}
	return &PluginCatalog{plugins: index}, nil
}

// Lookup returns the plugin for key, or an unknown-plugin configuration error
// naming the key.
func (c *PluginCatalog) Lookup(key string) (*Plugin, error) {
	plugin, ok := c.plugins[key]
	if !ok {
		return nil, perrors.NewUnknownPluginError(key, "")
	}
	return plugin, nil
}

// Keys returns the plugin keys in sorted order.
func (c *PluginCatalog) Keys() []string {
	keys := make([]string, 0, len(c.plugins))
	for key := range c.plugins {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (c *PluginCatalog) Len() int {
	return len(c.plugins)
}

// Artifacts lists every release jar, by plugin key then ascending version.
func (c *PluginCatalog) Artifacts() []Artifact {
	out := make([]Artifact, 0)
	for _, key := range c.Keys() {
		for _, release := range c.plugins[key].releases {
			out = append(out, Artifact{
				PluginKey:   key,
				Version:     release.Version,
				Filename:    release.Filename,
				DownloadURL: release.DownloadURL,
			})
		}
	}
	return out
}
