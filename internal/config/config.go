package config

import (
	"os"

	"gopkg.in/yaml.v3"

	perrors "github.com/schmitthub/plugin-editions/internal/errors"
)

type FileConfig struct {
	Catalog            string `yaml:"catalog"`
	Editions           string `yaml:"editions"`
	JarsDir            string `yaml:"jars_dir"`
	OutputDir          string `yaml:"output"`
	DownloadBaseURL    string `yaml:"download_base_url"`
	MinPlatformVersion string `yaml:"min_platform_version"`
	Cleanup            *bool  `yaml:"cleanup"`
	Fetch              *bool  `yaml:"fetch"`
	Debug              *bool  `yaml:"debug"`
}

func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, perrors.NewConfigError(path, "read config", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return FileConfig{}, perrors.NewConfigError(path, "parse config YAML", err)
	}

	return cfg, nil
}

func FromString(s string) (FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal([]byte(s), &cfg); err != nil {
		return FileConfig{}, perrors.NewConfigError("config", "parse config YAML", err)
	}
	return cfg, nil
}
