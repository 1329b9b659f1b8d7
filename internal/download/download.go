// Package download fills the jar directory with the plugin jars that resolved
// editions need. A jar already present with a non-empty size is reused.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schmitthub/plugin-editions/internal/catalog"
	"github.com/schmitthub/plugin-editions/internal/editions"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/output"
)

const defaultTimeout = 5 * time.Minute

type Options struct {
	JarsDir string
	// Force re-downloads jars that are already present.
	Force     bool
	Client    *http.Client
	UserAgent string
}

type Fetcher struct {
	jarsDir   string
	force     bool
	client    *http.Client
	userAgent string
}

type Result struct {
	Downloaded []string
	Cached     []string
}

func NewFetcher(opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = "plugin-editions"
	}
	return &Fetcher{
		jarsDir:   opts.JarsDir,
		force:     opts.Force,
		client:    client,
		userAgent: userAgent,
	}
}

// Required returns the catalog artifacts behind every jar of list, once per
// file name, in first-use order.
func Required(list []editions.Edition, plugins *catalog.PluginCatalog) []catalog.Artifact {
	byFilename := make(map[string]catalog.Artifact)
	for _, artifact := range plugins.Artifacts() {
		if _, ok := byFilename[artifact.Filename]; !ok {
			byFilename[artifact.Filename] = artifact
		}
	}

	seen := make(map[string]struct{})
	out := make([]catalog.Artifact, 0)
	for _, e := range list {
		for _, jar := range e.Jars() {
			if _, dup := seen[jar]; dup {
				continue
			}
			seen[jar] = struct{}{}
			if artifact, ok := byFilename[jar]; ok {
				out = append(out, artifact)
			}
		}
	}
	return out
}

func (f *Fetcher) Fetch(ctx context.Context, artifacts []catalog.Artifact) (Result, error) {
	if err := os.MkdirAll(f.jarsDir, 0o755); err != nil {
		return Result{}, perrors.NewArtifactError(f.jarsDir, "create jar directory", err)
	}

	var result Result
	for _, artifact := range artifacts {
		downloaded, err := f.FetchOne(ctx, artifact)
		if err != nil {
			return result, err
		}
		if downloaded {
			result.Downloaded = append(result.Downloaded, artifact.Filename)
		} else {
			result.Cached = append(result.Cached, artifact.Filename)
		}
	}
	return result, nil
}

// FetchOne downloads a single jar. It reports false when the jar was already
// present and left untouched.
func (f *Fetcher) FetchOne(ctx context.Context, artifact catalog.Artifact) (bool, error) {
	target := filepath.Join(f.jarsDir, artifact.Filename)

	if !f.force {
		if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() && info.Size() > 0 {
			output.Debug("jar already present", "plugin", artifact.PluginKey, "path", target)
			return false, nil
		}
	}

	if strings.TrimSpace(artifact.DownloadURL) == "" {
		return false, perrors.NewFetchError(artifact.PluginKey,
			fmt.Sprintf("plugin %s release %s has no download URL for %s", artifact.PluginKey, artifact.Version, artifact.Filename), nil)
	}

	req, display, err := f.newRequest(ctx, artifact.DownloadURL)
	if err != nil {
		return false, perrors.NewFetchError(artifact.PluginKey,
			fmt.Sprintf("plugin %s download URL is invalid", artifact.PluginKey), err)
	}

	output.Info("downloading jar", "plugin", artifact.PluginKey, "version", artifact.Version.String(), "url", display)

	resp, err := f.client.Do(req)
	if err != nil {
		return false, perrors.NewFetchError(artifact.PluginKey,
			fmt.Sprintf("download %s for plugin %s", display, artifact.PluginKey), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, perrors.NewFetchError(artifact.PluginKey,
			fmt.Sprintf("download %s for plugin %s returned status %d", display, artifact.PluginKey, resp.StatusCode), nil)
	}

	if err := writeAtomic(target, resp.Body); err != nil {
		return false, err
	}
	return true, nil
}

// newRequest moves URL user info into a basic auth header. The returned
// display string has the password redacted.
func (f *Fetcher) newRequest(ctx context.Context, raw string) (*http.Request, string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, "", err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, "", fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}

	display := parsed.Redacted()
	user := parsed.User
	parsed.User = nil

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	if user != nil {
		password, _ := user.Password()
		req.SetBasicAuth(user.Username(), password)
	}
	return req, display, nil
}

// writeAtomic streams body into a temp file next to target and renames it
// into place, so an interrupted download never leaves a partial jar.
func writeAtomic(target string, body io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return perrors.NewArtifactError(target, "create temp file", err)
	}
	tmpName := tmp.Name()

	_, copyErr := io.Copy(tmp, body)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		if copyErr != nil {
			return perrors.NewFetchError(target, "read response body", copyErr)
		}
		return perrors.NewArtifactError(target, "close temp file", closeErr)
	}

	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return perrors.NewArtifactError(target, "move download into place", err)
	}
	return nil
}
