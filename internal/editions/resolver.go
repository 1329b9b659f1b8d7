package editions

import (
	"github.com/schmitthub/plugin-editions/internal/catalog"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/output"
)

type Resolver struct {
	platforms *catalog.PlatformCatalog
	plugins   *catalog.PluginCatalog
}

func NewResolver(platforms *catalog.PlatformCatalog, plugins *catalog.PluginCatalog) *Resolver {
	return &Resolver{platforms: platforms, plugins: plugins}
}

// Resolve builds one edition per (template, major release) pair whose
// plugins all have a compatible release. Templates keep their declared order
// and major releases ascend within each template. A plugin key missing from
// the catalog fails the whole run before any edition is built.
func (r *Resolver) Resolve(templates []Template) ([]Edition, error) {
	required := make([][]*catalog.Plugin, len(templates))
	for i, t := range templates {
		plugins := make([]*catalog.Plugin, 0, len(t.Plugins))
		for _, key := range t.Plugins {
			plugin, err := r.plugins.Lookup(key)
			if err != nil {
				return nil, perrors.NewUnknownPluginError(key, t.Key)
			}
			plugins = append(plugins, plugin)
		}
		required[i] = plugins
	}

	majors := r.platforms.MajorReleases()
	out := make([]Edition, 0)

	for i, t := range templates {
		for _, major := range majors {
			edition, ok := resolvePair(t, required[i], major)
			if !ok {
				continue
			}
			output.Debug("resolved edition", "edition", t.Key, "platform", major.Version.String(), "jars", len(edition.jars))
			out = append(out, edition)
		}
	}

	return out, nil
}

func resolvePair(t Template, plugins []*catalog.Plugin, major catalog.PlatformRelease) (Edition, bool) {
	jars := make([]string, 0, len(plugins))
	for _, plugin := range plugins {
		release, ok := plugin.LatestCompatible(major.Version)
		if !ok {
			output.Warn("plugin has no compatible release, skipping edition",
				"edition", t.Key, "plugin", plugin.Key, "platform", major.Version.String())
			return Edition{}, false
		}
		jars = append(jars, release.Filename)
	}
	return New(t, major.Version, jars), true
}
