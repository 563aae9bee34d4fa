// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical plugin identifier used for filesystem paths and CLI branding.
	App = "anisan-sources"

	// Version is the current plugin semantic version string.
	Version = "0.1.0"

	// PluginVersion is the host plugin contract revision this module implements.
	PluginVersion = 1

	// UserAgent is the default HTTP User-Agent string used for requests to upstream catalogs.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)
