package cmd

import (
	"context"

	"github.com/schmitthub/plugin-editions/internal/build"
	"github.com/schmitthub/plugin-editions/internal/catalog"
	"github.com/schmitthub/plugin-editions/internal/download"
	"github.com/schmitthub/plugin-editions/internal/editions"
	"github.com/schmitthub/plugin-editions/internal/output"
)

type resolution struct {
	catalog  catalog.Catalog
	editions []editions.Edition
}

// resolveEditions loads both input files and resolves every template against
// the platform major releases.
func resolveEditions(opts runtimeOptions) (resolution, error) {
	cat, err := catalog.Load(opts.Catalog)
	if err != nil {
		return resolution{}, err
	}

	templates, err := editions.LoadTemplates(opts.Editions)
	if err != nil {
		return resolution{}, err
	}

	list, err := editions.NewResolver(cat.Platform, cat.Plugins).Resolve(templates)
	if err != nil {
		return resolution{}, err
	}

	output.Debug("resolved editions",
		"templates", len(templates),
		"majorReleases", len(cat.Platform.MajorReleases()),
		"editions", len(list))

	return resolution{catalog: cat, editions: list}, nil
}

func fetchJars(ctx context.Context, opts runtimeOptions, res resolution) (download.Result, error) {
	fetcher := download.NewFetcher(download.Options{
		JarsDir:   opts.JarsDir,
		Force:     opts.Force,
		UserAgent: build.UserAgent(),
	})
	return fetcher.Fetch(ctx, download.Required(res.editions, res.catalog.Plugins))
}
