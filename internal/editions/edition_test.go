package editions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schmitthub/plugin-editions/internal/versions"
)

func enterpriseTemplate(plugins ...string) Template {
	return Template{
		Key:               "enterprise",
		Name:              "Enterprise Edition",
		TextDescription:   "Governance & COBOL",
		HomeURL:           "https://example.com/enterprise",
		LicenseRequestURL: "https://example.com/license",
		Plugins:           plugins,
	}
}

func TestNewDeduplicatesJarsKeepingOrder(t *testing.T) {
	e := New(enterpriseTemplate(), versions.MustParse("6.7"), []string{"b.jar", "a.jar", "b.jar", "c.jar", "a.jar"})

	assert.Equal(t, []string{"b.jar", "a.jar", "c.jar"}, e.Jars())
}

func TestEditionAccessors(t *testing.T) {
	e := New(enterpriseTemplate(), versions.MustParse("6.7"), []string{"cobol-1.1.jar"})

	assert.Equal(t, "enterprise", e.Key())
	assert.Equal(t, "Enterprise Edition", e.Name())
	assert.Equal(t, "Governance & COBOL", e.TextDescription())
	assert.Equal(t, "https://example.com/enterprise", e.HomeURL())
	assert.Equal(t, "https://example.com/license", e.LicenseRequestURL())
	assert.Equal(t, "6.7", e.PlatformVersion().String())
	assert.True(t, e.HasZip())
	assert.Equal(t, "enterprise-edition-6.7.zip", e.ZipFileName())
}

func TestEditionJarsIsACopy(t *testing.T) {
	e := New(enterpriseTemplate(), versions.MustParse("6.7"), []string{"cobol-1.1.jar"})

	jars := e.Jars()
	jars[0] = "tampered.jar"

	assert.Equal(t, []string{"cobol-1.1.jar"}, e.Jars())
}

func TestEditionWithoutJars(t *testing.T) {
	e := New(enterpriseTemplate(), versions.MustParse("7.0"), nil)

	assert.False(t, e.HasZip())
	assert.Empty(t, e.ZipFileName())
	assert.Empty(t, e.DownloadURL("https://downloads.example.com/editions"))
	assert.Empty(t, e.Jars())
}

func TestDownloadURLJoinsWithOneSlash(t *testing.T) {
	e := New(enterpriseTemplate(), versions.MustParse("7.0"), []string{"cobol-1.1.jar"})

	tests := []struct {
		base string
		want string
	}{
		{"https://dl.example.com/editions", "https://dl.example.com/editions/enterprise-edition-7.0.zip"},
		{"https://dl.example.com/editions/", "https://dl.example.com/editions/enterprise-edition-7.0.zip"},
		{"https://dl.example.com/editions//", "https://dl.example.com/editions/enterprise-edition-7.0.zip"},
		{"", "enterprise-edition-7.0.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, e.DownloadURL(tt.base))
		})
	}
}

func TestTemplateValidate(t *testing.T) {
	assert.NoError(t, enterpriseTemplate("cobol").Validate())
	assert.NoError(t, enterpriseTemplate().Validate())

	missingName := enterpriseTemplate()
	missingName.Name = ""
	err := missingName.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "enterprise")
		assert.Contains(t, err.Error(), "name")
	}

	missingKey := enterpriseTemplate()
	missingKey.Key = " "
	assert.Error(t, missingKey.Validate())

	blankPlugin := enterpriseTemplate("cobol", "")
	assert.Error(t, blankPlugin.Validate())
}
