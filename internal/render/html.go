package render

import (
	"bytes"
	"embed"
	"html/template"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/schmitthub/plugin-editions/internal/catalog"
	"github.com/schmitthub/plugin-editions/internal/editions"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

//go:embed templates/edition.html.tmpl
var templateFS embed.FS

var editionPage = template.Must(template.ParseFS(templateFS, "templates/edition.html.tmpl"))

// HTMLGenerator writes edition-<key>.html, one page per edition key with a
// column for every supported major release the edition covers.
type HTMLGenerator struct {
	fs        afero.Fs
	platforms *catalog.PlatformCatalog
	baseURL   string
	floor     versions.Version
}

func NewHTMLGenerator(fs afero.Fs, platforms *catalog.PlatformCatalog, downloadBaseURL string, floor versions.Version) *HTMLGenerator {
	return &HTMLGenerator{
		fs:        fsOrDefault(fs),
		platforms: platforms,
		baseURL:   downloadBaseURL,
		floor:     floor,
	}
}

type htmlPage struct {
	Key               string
	Name              string
	TextDescription   string
	HomeURL           string
	LicenseRequestURL string
	Columns           []htmlColumn
}

type htmlColumn struct {
	Version     string
	Date        string
	DownloadURL string
	LTS         bool
}

func HTMLFileName(key string) string {
	return "edition-" + key + ".html"
}

func (g *HTMLGenerator) Name() string { return "html" }

func (g *HTMLGenerator) Outputs(list []editions.Edition) []string {
	keys := editionKeys(list)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, HTMLFileName(key))
	}
	return out
}

func (g *HTMLGenerator) Generate(outputDir string, list []editions.Edition) error {
	byKey := make(map[string][]editions.Edition)
	for _, e := range list {
		byKey[e.Key()] = append(byKey[e.Key()], e)
	}

	for _, key := range editionKeys(list) {
		path := filepath.Join(outputDir, HTMLFileName(key))

		var buf bytes.Buffer
		if err := editionPage.Execute(&buf, g.page(byKey[key])); err != nil {
			return perrors.NewArtifactError(path, "render edition page", err)
		}
		if err := writeArtifact(g.fs, path, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// page builds the model for one edition key. Supported releases the edition
// does not cover are left out.
func (g *HTMLGenerator) page(group []editions.Edition) htmlPage {
	first := group[0]
	page := htmlPage{
		Key:               first.Key(),
		Name:              first.Name(),
		TextDescription:   first.TextDescription(),
		HomeURL:           first.HomeURL(),
		LicenseRequestURL: first.LicenseRequestURL(),
	}

	for _, release := range g.platforms.SupportedMajorReleases(g.floor) {
		for _, e := range group {
			if !e.PlatformVersion().Equal(release.Version) {
				continue
			}
			page.Columns = append(page.Columns, htmlColumn{
				Version:     release.Version.String(),
				Date:        release.Date,
				DownloadURL: e.DownloadURL(g.baseURL),
				LTS:         g.platforms.IsLTS(release.Version),
			})
			break
		}
	}

	return page
}

func editionKeys(list []editions.Edition) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, e := range list {
		if _, ok := seen[e.Key()]; ok {
			continue
		}
		seen[e.Key()] = struct{}{}
		keys = append(keys, e.Key())
	}
	sort.Strings(keys)
	return keys
}
