package editions

import (
	"fmt"
	"strings"

	perrors "github.com/schmitthub/plugin-editions/internal/errors"
)

// Template declares an edition: its display metadata and the plugin keys
// every resolved bundle must contain.
type Template struct {
	Key               string
	Name              string
	TextDescription   string
	HomeURL           string
	LicenseRequestURL string
	Plugins           []string
}

func (t Template) Validate() error {
	key := strings.TrimSpace(t.Key)
	if key == "" {
		return perrors.NewConfigError("editions", "edition without a key", nil)
	}

	required := []struct {
		field string
		value string
	}{
		{"name", t.Name},
		{"textDescription", t.TextDescription},
		{"homeUrl", t.HomeURL},
		{"requestLicenseUrl", t.LicenseRequestURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return perrors.NewConfigError(key, fmt.Sprintf("edition %q is missing %s", key, r.field), nil)
		}
	}

	for _, plugin := range t.Plugins {
		if strings.TrimSpace(plugin) == "" {
			return perrors.NewConfigError(key, fmt.Sprintf("edition %q lists an empty plugin key", key), nil)
		}
	}

	return nil
}
