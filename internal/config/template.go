package config

func DefaultTemplate() string {
	return `# plugin-editions configuration
#
# Precedence: flags > environment variables > config file > defaults
# Environment prefix: PLUGIN_EDITIONS_

# Platform releases and plugin releases with their compatibility sets
catalog: ./catalog.yaml

# Edition templates, resolved in the order they are declared
editions: ./editions.yaml

# Directory holding every plugin jar an edition can reference
jars_dir: ./jars

# Output root for generated artifacts (must already exist):
# - <output>/editions.json
# - <output>/edition-<key>.html
# - <output>/<key>-edition-<platform>.zip
output: ./editions-out

# Base URL the zips are published under (joined with exactly one slash)
download_base_url: https://downloads.example.com/editions

# Oldest platform version shown on the HTML pages
min_platform_version: "6.6"

# Remove edition artifacts in <output> that this run did not produce
cleanup: false

# Download missing jars into jars_dir before generating
fetch: false

# Enable debug logging
debug: false
`
}

// ExampleCatalog is a starter catalog.yaml with two platform lines and one
// plugin whose releases cover both.
func ExampleCatalog() string {
	return `# Platform releases, newest patch per major.minor line is used.
# At most one release may be flagged lts.
platform:
  releases:
    - version: "6.7"
      date: "2017-11-08"
      lts: true
    - version: "7.0"
      date: "2018-01-15"

# Plugin releases list the exact platform versions they support.
# filename defaults to the last segment of downloadUrl.
plugins:
  - key: cobol
    name: COBOL
    releases:
      - version: "1.1"
        platforms: ["6.7", "7.0"]
        downloadUrl: https://repo.example.com/cobol/cobol-1.1.jar
`
}

// ExampleEditions is a starter editions.yaml referencing the example catalog.
func ExampleEditions() string {
	return `# Every listed plugin must resolve for a platform line,
# otherwise no edition is built for that line.
editions:
  - key: enterprise
    name: Enterprise Edition
    textDescription: Legacy language analysis
    homeUrl: https://example.com/enterprise
    requestLicenseUrl: https://example.com/enterprise/license
    plugins: [cobol]
`
}
